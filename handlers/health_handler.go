package handlers

import (
	"context"
	"time"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports 503 when MongoDB does not answer a ping.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
			Code:  apperror.CodeInternalError,
			Error: "database unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
