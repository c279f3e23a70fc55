package handlers

import (
	"context"
	"strings"
	"time"

	"leave-tracking/models"
	"leave-tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LeaveBalanceHandler struct {
	balances *service.LeaveBalanceService
	logger   *zap.Logger
}

func NewLeaveBalanceHandler(balances *service.LeaveBalanceService, logger *zap.Logger) *LeaveBalanceHandler {
	return &LeaveBalanceHandler{balances: balances, logger: logger.Named("http.balance")}
}

// GetLeaveBalances godoc
// @Summary List my leave balances
// @Description Returns the caller's EL, SL and CL balances. Zero balances are created on the first read.
// @Tags Leave Balances
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LeaveBalanceListResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /leave-balances [get]
func (h *LeaveBalanceHandler) GetLeaveBalances(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	balances, err := h.balances.List(ctx, claims.UserID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(models.LeaveBalanceListResponse{Data: balances})
}

// UpdateLeaveBalance godoc
// @Summary Set one of my leave balances
// @Tags Leave Balances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leaveType path string true "Leave type (EL, SL or CL)"
// @Param request body models.LeaveBalanceUpdatePayload true "New balance"
// @Success 200 {object} models.LeaveBalanceResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /leave-balances/{leaveType} [put]
func (h *LeaveBalanceHandler) UpdateLeaveBalance(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var payload models.LeaveBalanceUpdatePayload
	if err := parseBody(c, &payload); err != nil {
		return writeError(c, h.logger, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	leaveType := models.LeaveType(strings.ToUpper(c.Params("leaveType")))
	balance, err := h.balances.Set(ctx, claims.UserID, leaveType, *payload.Balance)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(models.LeaveBalanceResponse{Message: "Leave balance updated", Data: *balance})
}

// ResetLeaveBalances godoc
// @Summary Reset my leave balances
// @Description Deletes the caller's balances. The next read starts again from zero.
// @Tags Leave Balances
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LeaveBalanceListResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /leave-balances/reset [post]
func (h *LeaveBalanceHandler) ResetLeaveBalances(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if err := h.balances.Reset(ctx, claims.UserID); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(models.LeaveBalanceListResponse{Data: []models.LeaveBalance{}})
}
