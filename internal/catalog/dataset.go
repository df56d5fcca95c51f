package catalog

import "fmt"

// Dataset bundles the immutable product and category collections. It is
// injected explicitly into the repository and the query pipeline rather
// than read from ambient package state, so the pipeline stays testable
// with small fixture datasets.
type Dataset struct {
	Products   []Product
	Categories []Category
}

// Default returns the built-in catalog. Callers get fresh slice headers
// over the shared backing arrays; the records themselves are never
// mutated.
func Default() Dataset {
	return Dataset{Products: seedProducts, Categories: seedCategories}
}

// Validate enforces the dataset invariants: product ids and slugs are
// unique, category slugs are unique, and every product references an
// existing category.
func (d Dataset) Validate() error {
	catSlugs := make(map[string]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if c.Slug == "" {
			return fmt.Errorf("category %q has empty slug", c.Name)
		}
		if _, dup := catSlugs[c.Slug]; dup {
			return fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		catSlugs[c.Slug] = struct{}{}
	}

	ids := make(map[string]struct{}, len(d.Products))
	slugs := make(map[string]struct{}, len(d.Products))
	for _, p := range d.Products {
		if p.ID == "" || p.Slug == "" {
			return fmt.Errorf("product %q has empty id or slug", p.Name)
		}
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		if _, dup := slugs[p.Slug]; dup {
			return fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		ids[p.ID] = struct{}{}
		slugs[p.Slug] = struct{}{}
		if _, ok := catSlugs[p.CategorySlug]; !ok {
			return fmt.Errorf("product %q references unknown category %q", p.Slug, p.CategorySlug)
		}
	}
	return nil
}

// CategoryBySlug returns the category with the given slug.
func (d Dataset) CategoryBySlug(slug string) (Category, bool) {
	for _, c := range d.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}
