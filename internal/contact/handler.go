package contact

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/contact", h.submit)
}

// submit maps the contact error taxonomy to HTTP statuses: malformed or
// invalid payloads are user-correctable (400 with field messages), missing
// provider credentials are operator-only (500, generic message), provider
// or transport failures are 502 with the underlying error logged, never
// shown.
func (h *Handler) submit(c *fiber.Ctx) error {
	m := new(Message)
	if err := c.BodyParser(m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if ves := validateMessage(m); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "validation failed",
			"details": ves,
		})
	}

	reference, err := h.service.Submit(c.Context(), *m)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			log.Printf("[contact] ref=%s mailer not configured", reference)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "server misconfigured",
			})
		}
		log.Printf("[contact] ref=%s send failed: %v", reference, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success":   false,
			"error":     "message could not be sent",
			"reference": reference,
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Message envoyé avec succès",
		"reference": reference,
	})
}
