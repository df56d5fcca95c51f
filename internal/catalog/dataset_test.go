package catalog

import "testing"

func TestDefaultDataset_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in dataset invalid: %v", err)
	}
}

func TestValidate_RejectsBrokenDatasets(t *testing.T) {
	cases := []struct {
		name string
		ds   Dataset
	}{
		{
			"duplicate product slug",
			Dataset{
				Categories: []Category{{Slug: "c", Name: "C"}},
				Products: []Product{
					{ID: "1", Slug: "p", CategorySlug: "c"},
					{ID: "2", Slug: "p", CategorySlug: "c"},
				},
			},
		},
		{
			"duplicate product id",
			Dataset{
				Categories: []Category{{Slug: "c", Name: "C"}},
				Products: []Product{
					{ID: "1", Slug: "a", CategorySlug: "c"},
					{ID: "1", Slug: "b", CategorySlug: "c"},
				},
			},
		},
		{
			"unknown category reference",
			Dataset{
				Categories: []Category{{Slug: "c", Name: "C"}},
				Products:   []Product{{ID: "1", Slug: "a", CategorySlug: "nope"}},
			},
		},
		{
			"duplicate category slug",
			Dataset{
				Categories: []Category{{Slug: "c", Name: "C"}, {Slug: "c", Name: "C2"}},
			},
		},
	}
	for _, c := range cases {
		if err := c.ds.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}

func TestVariantLabels_SkipsEmptyRecords(t *testing.T) {
	p := Product{Variants: []Variant{
		{Kind: "size", Value: "G"},
		{},
		{Kind: "preparation"},
		{Kind: "caliber", Value: "10/20"},
	}}
	got := p.VariantLabels()
	want := []string{"G", "preparation", "10/20"}
	if len(got) != len(want) {
		t.Fatalf("labels: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d: got %q want %q", i, got[i], want[i])
		}
	}

	if labels := (Product{Variants: []Variant{{}, {}}}).VariantLabels(); labels != nil {
		t.Fatalf("all-empty variants must yield no labels, got %v", labels)
	}
}

func TestRepository_Lookups(t *testing.T) {
	repo, err := NewInMemoryRepository(Default())
	if err != nil {
		t.Fatalf("repository: %v", err)
	}

	p, err := repo.BySlug("dorade")
	if err != nil || p.Name != "Dorade" {
		t.Fatalf("BySlug: %v %v", p, err)
	}
	if _, err := repo.BySlug("nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, p := range repo.ByCategory("saumon-thon") {
		if p.CategorySlug != "saumon-thon" {
			t.Fatalf("wrong category leaked: %+v", p)
		}
	}

	best := repo.BestSellers()
	if len(best) == 0 {
		t.Fatal("expected at least one best seller")
	}
	for _, p := range best {
		if !p.IsBestSeller {
			t.Fatalf("non best-seller returned: %+v", p)
		}
	}
}

func TestRepository_ListReturnsCopy(t *testing.T) {
	repo, err := NewInMemoryRepository(Default())
	if err != nil {
		t.Fatalf("repository: %v", err)
	}
	first := repo.List()
	first[0].Name = "mutated"
	second := repo.List()
	if second[0].Name == "mutated" {
		t.Fatal("List must hand out copies")
	}
}
