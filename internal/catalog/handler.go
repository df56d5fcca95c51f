package catalog

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tafcseafood/catalog-backend/internal/i18n"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// best-sellers must be registered before the :slug param route so the
	// literal path is not swallowed by the wildcard
	app.Get("/api/v1/products/best-sellers", h.getBestSellers)
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/:slug", h.getProduct)
	app.Get("/api/v1/categories", h.getCategories)
	app.Get("/api/v1/locales", h.getLocales)
}

// queryStateFromRequest is the server-side analog of the original site's
// URL parameter sync: q, category and sort params seed the QueryState.
func queryStateFromRequest(c *fiber.Ctx) QueryState {
	q := NewQueryState()
	q.Search = c.Query("q")
	if cat := c.Query("category"); cat != "" {
		q.Category = cat
	}
	q.Sort = ParseSortKey(c.Query("sort"))
	return q
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))
	result := h.service.List(locale, queryStateFromRequest(c))
	return c.JSON(result)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))
	p, err := h.service.BySlug(locale, c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) getBestSellers(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))
	return c.JSON(h.service.BestSellers(locale))
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))
	return c.JSON(h.service.Categories(locale))
}

func (h *Handler) getLocales(c *fiber.Ctx) error {
	return c.JSON(i18n.Locales())
}
