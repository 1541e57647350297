package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/yourorg/accountsvc/internal/debug"
	"github.com/yourorg/accountsvc/internal/handlers"
)

// Register wires the HTTP surface onto the app.
func Register(app *fiber.App, authHandler *handlers.AuthHandler, healthHandler *handlers.HealthHandler) {
	app.Get("/health", healthHandler.Health)

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/searchuser", authHandler.SearchUser)

	// WebSocket feed for the debug dashboard (clients connect only when the
	// dashboard is in use; the hub drops messages otherwise).
	app.Use("/ws/debug", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/debug", websocket.New(func(c *websocket.Conn) {
		debug.HandleWebSocketFiber(c)
	}))
}
