package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/profileshield/backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	verifyHandler *handlers.VerifyHandler,
	reportHandler *handlers.ReportHandler,
	historyHandler *handlers.HistoryHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Verification lifecycle
	api.Post("/verify", verifyHandler.Verify)
	api.Post("/verify-linkedin", verifyHandler.VerifyLinkedIn)
	api.Post("/report", reportHandler.Create)
	api.Put("/report-confirm/:report_id", reportHandler.Confirm)

	// Read-only views
	api.Get("/history", historyHandler.List)
	api.Get("/stats", statsHandler.Today)
}
