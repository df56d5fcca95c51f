package catalog

// Category represents one grouping of products. Declaration order in
// data.go fixes the display order of the default grouped catalog view.
// Product counts are not stored here; they are computed live from the
// dataset so the figure can never drift.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
