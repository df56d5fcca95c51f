package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/tafcseafood/catalog-backend/internal/catalog"
	"github.com/tafcseafood/catalog-backend/internal/config"
	"github.com/tafcseafood/catalog-backend/internal/contact"
	"github.com/tafcseafood/catalog-backend/internal/i18n"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	repo, err := catalog.NewInMemoryRepository(catalog.Default())
	if err != nil {
		log.Fatalf("invalid catalog dataset: %v", err)
	}

	bundles, err := i18n.Load()
	if err != nil {
		log.Fatalf("invalid translation bundles: %v", err)
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(requestid.New())
	app.Use(logger.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	catalogHandler := catalog.NewHandler(catalog.NewService(repo, bundles))
	catalogHandler.RegisterPublicRoutes(app)

	mailer := contact.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom, cfg.MailTo)
	contactHandler := contact.NewHandler(contact.NewService(mailer))
	contactHandler.RegisterPublicRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
