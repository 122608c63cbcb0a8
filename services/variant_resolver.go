package services

import (
	"strings"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// ResolveVariant picks the variant id for a size/color selection.
//
// A variant matches when it has no options, or when any one of its options
// matches on either axis (size or color), so a variant matching only the
// color is accepted even if the size differs.
// Falls back to the first variant; ok is false only when there are none.
func ResolveVariant(p models.Product, size, color string) (string, bool) {
	if len(p.Variants) == 0 {
		return "", false
	}

	size = strings.ToLower(size)
	color = strings.ToLower(color)

	for _, v := range p.Variants {
		if len(v.SelectedOptions) == 0 {
			return v.ID, true
		}
		for _, opt := range v.SelectedOptions {
			value := strings.ToLower(opt.Value)
			if isSizeOption(opt.Name) && value == size {
				return v.ID, true
			}
			if isColorOption(opt.Name) && value == color {
				return v.ID, true
			}
		}
	}

	return p.Variants[0].ID, true
}
