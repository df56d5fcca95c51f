package catalog

import "github.com/tafcseafood/catalog-backend/internal/i18n"

// TranslatedProduct is a locale-specific, read-only view of a Product. It
// is derived on every request and never stored.
type TranslatedProduct Product

// TranslatedCategory is a locale-specific, read-only view of a Category.
type TranslatedCategory Category

// MergeProduct applies the bundle's translation for the product's slug on
// top of the base values, field by field. A nil bundle or a missing entry
// returns the base product unchanged — that is the required fallback path,
// not an error. The derived category display name comes from the bundle's
// category entry, but only for products that have a translation entry
// themselves; an untranslated product keeps all of its base values,
// category included. The function is pure and total.
func MergeProduct(p Product, bundle *i18n.Bundle) TranslatedProduct {
	out := TranslatedProduct(p)

	t, ok := bundle.Product(p.Slug)
	if !ok {
		return out
	}

	if ct, ok := bundle.Category(p.CategorySlug); ok && ct.Name != "" {
		out.Category = ct.Name
	}
	if t.Name != "" {
		out.Name = t.Name
	}
	if t.Description != "" {
		out.Description = t.Description
	}
	if len(t.Tags) > 0 {
		out.Tags = t.Tags
	}
	if t.Origin != "" {
		out.Origin = t.Origin
	}
	if t.Type != "" {
		out.Type = t.Type
	}
	if len(t.Usage) > 0 {
		out.Usage = t.Usage
	}
	if len(t.Formats) > 0 {
		out.Formats = t.Formats
	}
	return out
}

// MergeProducts translates every product in order. The transform is stable:
// output order equals input order.
func MergeProducts(products []Product, bundle *i18n.Bundle) []TranslatedProduct {
	out := make([]TranslatedProduct, len(products))
	for i, p := range products {
		out[i] = MergeProduct(p, bundle)
	}
	return out
}

// MergeCategory applies the bundle's category translation with per-field
// fallback to the base values.
func MergeCategory(c Category, bundle *i18n.Bundle) TranslatedCategory {
	out := TranslatedCategory(c)
	if t, ok := bundle.Category(c.Slug); ok {
		if t.Name != "" {
			out.Name = t.Name
		}
		if t.Description != "" {
			out.Description = t.Description
		}
	}
	return out
}

// MergeCategories translates every category, preserving declaration order.
func MergeCategories(categories []Category, bundle *i18n.Bundle) []TranslatedCategory {
	out := make([]TranslatedCategory, len(categories))
	for i, c := range categories {
		out[i] = MergeCategory(c, bundle)
	}
	return out
}
