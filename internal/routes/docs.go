package routes

import (
	"github.com/ErkinAl/MuvTimeBack/internal/config"
	"github.com/gofiber/fiber/v2"
)

type docEndpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var docsCatalog = []docEndpoint{
	{Method: "GET", Path: "/health", Description: "Process liveness"},
	{Method: "GET", Path: "/api/test", Description: "API ping with server timestamp"},
	{Method: "GET", Path: "/api/test/health", Description: "Service health and version"},
	{Method: "GET", Path: "/api/test/db-test", Description: "Round-trip store connectivity check"},
	{Method: "GET", Path: "/api/v1/stats/:userId", Description: "Current stats and level progress"},
	{Method: "POST", Path: "/api/v1/stats/:userId/update", Description: "Apply a completed exercise session"},
	{Method: "GET", Path: "/api/v1/stats/:userId/sessions", Description: "10 most recent sessions, newest first"},
	{Method: "POST", Path: "/api/v1/stats/:userId/reset", Description: "Zero all stats, keep history"},
	{Method: "POST", Path: "/api/v1/stats/:userId/initialize", Description: "First-launch profile and stats provisioning"},
}

// RegisterDocs mounts the endpoint catalog. It only exists when docs are
// explicitly enabled and the app runs in a development environment.
func RegisterDocs(app *fiber.App, cfg *config.Config) {
	if !cfg.DocsEnabled() {
		return
	}

	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":      "MuvTime API",
			"endpoints": docsCatalog,
		})
	})
}
