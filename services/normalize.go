package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexPrice decodes the price shapes seen across catalog sources:
// "49.99", 49.99, {"amount": "49.99"} and null. Unparseable or negative
// values decode to 0 with Set false; decoding never fails.
type FlexPrice struct {
	Value float64
	Set   bool
}

func (p *FlexPrice) UnmarshalJSON(b []byte) error {
	*p = FlexPrice{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		p.Value, p.Set = parseAmount(s)
	case '{':
		var obj struct {
			Amount json.RawMessage `json:"amount"`
		}
		if err := json.Unmarshal(b, &obj); err != nil || obj.Amount == nil {
			return nil
		}
		return p.UnmarshalJSON(obj.Amount)
	default:
		p.Value, p.Set = parseAmount(string(b))
	}
	return nil
}

// Ptr returns the price as an optional field: nil unless set and positive.
func (p FlexPrice) Ptr() *float64 {
	if !p.Set || p.Value <= 0 {
		return nil
	}
	v := p.Value
	return &v
}

func parseAmount(s string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	if d.IsNegative() {
		return 0, false
	}
	return d.Round(2).InexactFloat64(), true
}

// dedupe keeps the first occurrence of each non-empty value, falling back to def.
func dedupe(values []string, def string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return []string{def}
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

func splitTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// isSizeOption and isColorOption classify a product option by name, so
// "Shoe Size" or "Band Colour" land on the same axis as "Size" and "Color".
func isSizeOption(name string) bool {
	return strings.Contains(strings.ToLower(name), "size")
}

func isColorOption(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "color") || strings.Contains(n, "colour")
}
