package handlers

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/accountsvc/internal/store"
)

// HealthResponse reports the state of the service and its dependencies.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version,omitempty"`
}

// HealthHandler pings the user store on demand.
type HealthHandler struct {
	store *store.Client
}

func NewHealthHandler(st *store.Client) *HealthHandler {
	return &HealthHandler{store: st}
}

// Health handles GET /health. The store is checked with a short timeout; a
// store that stops answering turns the service degraded (503), it does not
// crash it.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	services := make(map[string]string)
	overall := "healthy"

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		services["database"] = "unhealthy: " + err.Error()
		overall = "degraded"
	} else {
		services["database"] = "healthy"
	}

	statusCode := fiber.StatusOK
	if overall == "degraded" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
		Services:  services,
		Version:   os.Getenv("APP_VERSION"),
	})
}
