package catalog

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository is the read-only access seam over the catalog. The catalog is
// compiled in and never mutated at runtime, so there are no write
// operations.
type Repository interface {
	List() []Product
	Categories() []Category
	BySlug(slug string) (Product, error)
	ByCategory(categorySlug string) []Product
	BestSellers() []Product
}

// InMemoryRepository serves the static dataset. Reads hand out copies so
// callers can never mutate the backing storage.
type InMemoryRepository struct {
	mu         sync.RWMutex
	products   []Product
	categories []Category
	bySlug     map[string]int
}

// NewInMemoryRepository validates the dataset and indexes it by slug.
func NewInMemoryRepository(ds Dataset) (*InMemoryRepository, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	r := &InMemoryRepository{
		products:   ds.Products,
		categories: ds.Categories,
		bySlug:     make(map[string]int, len(ds.Products)),
	}
	for i, p := range ds.Products {
		r.bySlug[p.Slug] = i
	}
	return r, nil
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *InMemoryRepository) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

func (r *InMemoryRepository) BySlug(slug string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.bySlug[slug]; ok {
		return r.products[i], nil
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ByCategory(categorySlug string) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.products {
		if p.CategorySlug == categorySlug {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryRepository) BestSellers() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.products {
		if p.IsBestSeller {
			out = append(out, p)
		}
	}
	return out
}
