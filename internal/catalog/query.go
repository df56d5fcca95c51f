package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tafcseafood/catalog-backend/internal/i18n"
)

// AllCategories is the sentinel category filter meaning "no category
// filter".
const AllCategories = "all"

// SortKey selects the comparator for the flat (filtered) view.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
)

// ParseSortKey maps a raw query value to a SortKey, defaulting to name.
func ParseSortKey(raw string) SortKey {
	if SortKey(raw) == SortByCategory {
		return SortByCategory
	}
	return SortByName
}

// QueryState is the transient catalog view state: free-text search, a
// category slug (or the "all" sentinel) and the sort key. The zero value
// is not valid; use NewQueryState.
type QueryState struct {
	Search   string  `json:"search"`
	Category string  `json:"category"`
	Sort     SortKey `json:"sort"`
}

// NewQueryState returns the default (unfiltered) state.
func NewQueryState() QueryState {
	return QueryState{Category: AllCategories, Sort: SortByName}
}

// Reset restores the default state. Calling it twice has the same effect
// as calling it once.
func (q *QueryState) Reset() {
	q.Search = ""
	q.Category = AllCategories
	q.Sort = SortByName
}

// HasActiveFilters reports whether the user narrowed the list. When false
// the grouped-by-category view applies instead of the flat sorted list.
func (q QueryState) HasActiveFilters() bool {
	if strings.TrimSpace(q.Search) != "" {
		return true
	}
	return q.Category != "" && q.Category != AllCategories
}

// Filter applies the category filter then the search filter. Both are
// independent predicates over the same list, so application order does not
// change the result set. Category matching is exact and case-sensitive
// (slugs are controlled, lowercase-kebab); an unknown slug simply yields
// zero matches. Search is a case-insensitive substring OR-match over name,
// category, description, origin and latin name.
func Filter(products []TranslatedProduct, q QueryState) []TranslatedProduct {
	out := make([]TranslatedProduct, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if q.Category != "" && q.Category != AllCategories && p.CategorySlug != q.Category {
			continue
		}
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p TranslatedProduct, query string) bool {
	for _, field := range []string{p.Name, p.Category, p.Description, p.Origin} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	if p.LatinName != "" && strings.Contains(strings.ToLower(p.LatinName), query) {
		return true
	}
	return false
}

// Sort orders products in place by the given key, ascending, using a
// locale-aware comparator for the locale's language.
func Sort(products []TranslatedProduct, key SortKey, locale string) {
	col := collatorFor(locale)
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i].Name, products[j].Name
		if key == SortByCategory {
			a, b = products[i].Category, products[j].Category
		}
		return col.CompareString(a, b) < 0
	})
}

func collatorFor(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	return collate.New(tag)
}

// Group is one section of the default (unfiltered) catalog view.
type Group struct {
	Category TranslatedCategory  `json:"category"`
	Items    []TranslatedProduct `json:"items"`
}

// GroupByCategory produces one group per category, in category declaration
// order, each carrying the products whose categorySlug matches. Groups
// with zero products are omitted entirely.
func GroupByCategory(categories []TranslatedCategory, products []TranslatedProduct) []Group {
	groups := make([]Group, 0, len(categories))
	for _, c := range categories {
		var items []TranslatedProduct
		for _, p := range products {
			if p.CategorySlug == c.Slug {
				items = append(items, p)
			}
		}
		if len(items) == 0 {
			continue
		}
		groups = append(groups, Group{Category: c, Items: items})
	}
	return groups
}

// CountLabel formats a live result count with the locale's unit word, e.g.
// "12 produits". It must be recomputed whenever the result set changes.
func CountLabel(n int, bundle *i18n.Bundle) string {
	return fmt.Sprintf("%d %s", n, bundle.UIString("productsCount", "produits"))
}
