package catalog

// Product represents one sellable catalog item. The whole collection is
// declared once in data.go and treated as immutable for the process
// lifetime; there is no per-request product state.
// JSON tags follow the camelCase convention used by the frontend.
type Product struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	LatinName      string    `json:"latinName,omitempty"`
	Category       string    `json:"category"`
	CategorySlug   string    `json:"categorySlug"`
	Description    string    `json:"description"`
	Image          string    `json:"image"`
	Tags           []string  `json:"tags"`
	Origin         string    `json:"origin"`
	Type           string    `json:"type"`
	Caliber        string    `json:"caliber,omitempty"`
	Usage          []string  `json:"usage"`
	Formats        []string  `json:"formats"`
	Variants       []Variant `json:"variants,omitempty"`
	Note           string    `json:"note,omitempty"`
	IsBestSeller   bool      `json:"isBestSeller,omitempty"`
	PriceIndicatif string    `json:"priceIndicatif,omitempty"`
}

// Variant is a sparse kind/value attribute record (size, caliber,
// preparation, pieces, type, grade). Either field may be empty; an empty
// record is a valid "no distinguishing variant" state, not a data error.
type Variant struct {
	Kind  string `json:"kind,omitempty"`
	Value string `json:"value,omitempty"`
}

// Label derives the display badge for a variant from whichever fields are
// present. Empty records yield an empty label.
func (v Variant) Label() string {
	if v.Value != "" {
		return v.Value
	}
	return v.Kind
}

// VariantLabels returns the non-empty badge labels for the product's
// variants, in declaration order. Variants whose derived label is empty are
// skipped so they never render as an empty badge.
func (p Product) VariantLabels() []string {
	if len(p.Variants) == 0 {
		return nil
	}
	labels := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		if l := v.Label(); l != "" {
			labels = append(labels, l)
		}
	}
	if len(labels) == 0 {
		return nil
	}
	return labels
}
