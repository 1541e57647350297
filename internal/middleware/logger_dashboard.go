package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yourorg/accountsvc/internal/debug"
)

// DashboardLogger forwards request logs to the debug dashboard in real time.
func DashboardLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)

		level := "info"
		status := c.Response().StatusCode()
		if status >= 500 {
			level = "error"
		} else if status >= 400 {
			level = "warn"
		}

		message := fmt.Sprintf("%s %s", c.Method(), c.Path())

		metadata := map[string]interface{}{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"ip":          c.IP(),
		}

		// The hub decides whether anyone is listening.
		debug.SendLog("backend", level, message, metadata)

		return err
	}
}
