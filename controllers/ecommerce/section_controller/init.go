package section_controller

import (
	"context"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// SectionResolver resolves a storefront section to its products.
type SectionResolver interface {
	ProductsForSection(ctx context.Context, sectionID string) ([]models.Product, bool)
}

var sections SectionResolver

func InitSectionController(r SectionResolver) {
	sections = r
}
