package catalog

import (
	"github.com/tafcseafood/catalog-backend/internal/i18n"
)

// Service composes the repository, the translation bundles and the query
// pipeline into the read operations the HTTP layer exposes.
type Service struct {
	repo    Repository
	bundles map[string]*i18n.Bundle
}

func NewService(repo Repository, bundles map[string]*i18n.Bundle) *Service {
	return &Service{repo: repo, bundles: bundles}
}

// bundle returns the translation bundle for a normalized locale code. The
// base locale has no bundle; nil means "use base values" everywhere
// downstream.
func (s *Service) bundle(locale string) *i18n.Bundle {
	return s.bundles[i18n.Normalize(locale)]
}

// ListResult is the catalog listing for one query. Exactly one of Items
// (flat filtered/sorted view) and Groups (default grouped view) is set.
type ListResult struct {
	Query      QueryState          `json:"query"`
	Total      int                 `json:"total"`
	CountLabel string              `json:"countLabel"`
	Items      []TranslatedProduct `json:"items,omitempty"`
	Groups     []Group             `json:"groups,omitempty"`
}

// List runs the full pipeline: translate for the locale, filter, then
// either sort (when a filter is active) or group by category (default
// view). Zero matches is a valid result, not an error.
func (s *Service) List(locale string, q QueryState) ListResult {
	locale = i18n.Normalize(locale)
	bundle := s.bundles[locale]
	products := MergeProducts(s.repo.List(), bundle)

	if !q.HasActiveFilters() {
		categories := MergeCategories(s.repo.Categories(), bundle)
		groups := GroupByCategory(categories, products)
		total := 0
		for _, g := range groups {
			total += len(g.Items)
		}
		return ListResult{
			Query:      q,
			Total:      total,
			CountLabel: CountLabel(total, bundle),
			Groups:     groups,
		}
	}

	items := Filter(products, q)
	Sort(items, q.Sort, locale)
	return ListResult{
		Query:      q,
		Total:      len(items),
		CountLabel: CountLabel(len(items), bundle),
		Items:      items,
	}
}

// maxRelated caps the related-products strip on the detail view.
const maxRelated = 3

// ProductDetail is the detail view of one product: the product itself plus
// up to three other products from the same category.
type ProductDetail struct {
	TranslatedProduct
	Related []TranslatedProduct `json:"related,omitempty"`
}

// BySlug returns the locale view of a single product with its related
// products (same category, the product itself excluded, dataset order).
func (s *Service) BySlug(locale, slug string) (ProductDetail, error) {
	p, err := s.repo.BySlug(slug)
	if err != nil {
		return ProductDetail{}, err
	}
	bundle := s.bundle(locale)

	related := make([]Product, 0, maxRelated)
	for _, r := range s.repo.ByCategory(p.CategorySlug) {
		if r.ID == p.ID {
			continue
		}
		related = append(related, r)
		if len(related) == maxRelated {
			break
		}
	}

	return ProductDetail{
		TranslatedProduct: MergeProduct(p, bundle),
		Related:           MergeProducts(related, bundle),
	}, nil
}

// BestSellers returns the locale view of the best-seller strip, in dataset
// order.
func (s *Service) BestSellers(locale string) []TranslatedProduct {
	return MergeProducts(s.repo.BestSellers(), s.bundle(locale))
}

// CategorySummary is a category tile with its live product count.
type CategorySummary struct {
	TranslatedCategory
	ProductCount int    `json:"productCount"`
	CountLabel   string `json:"countLabel"`
}

// Categories returns every category in declaration order with a live count
// of its products, recomputed from the dataset on every call.
func (s *Service) Categories(locale string) []CategorySummary {
	bundle := s.bundle(locale)
	counts := make(map[string]int)
	for _, p := range s.repo.List() {
		counts[p.CategorySlug]++
	}

	categories := MergeCategories(s.repo.Categories(), bundle)
	out := make([]CategorySummary, len(categories))
	for i, c := range categories {
		n := counts[c.Slug]
		out[i] = CategorySummary{
			TranslatedCategory: c,
			ProductCount:       n,
			CountLabel:         CountLabel(n, bundle),
		}
	}
	return out
}
