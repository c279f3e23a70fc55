package handlers

import (
	"errors"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"
	"leave-tracking/pkg/qrpass"
	"leave-tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type LeaveRequestHandler struct {
	leaves *service.LeaveApprovalService
	logger *zap.Logger
}

func NewLeaveRequestHandler(leaves *service.LeaveApprovalService, logger *zap.Logger) *LeaveRequestHandler {
	return &LeaveRequestHandler{leaves: leaves, logger: logger.Named("http.leave")}
}

// CreateLeaveRequest godoc
// @Summary Submit a leave request
// @Description Creates a pending leave request routed to the caller's manager, or to the caller when no manager is assigned.
// @Tags Leave Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LeaveRequestCreatePayload true "Leave request"
// @Success 201 {object} models.LeaveRequestResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leave-requests [post]
func (h *LeaveRequestHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return writeError(c, h.logger, apperror.Validation("invalid request body"))
	}

	req, err := h.leaves.Submit(c.UserContext(), claims.UserID, payload)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.LeaveRequestResponse{
		Message: "Leave request submitted successfully",
		Data:    *req,
	})
}

// GetMyLeaveRequests godoc
// @Summary List my leave requests
// @Tags Leave Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LeaveRequestListResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /leave-requests/mine [get]
func (h *LeaveRequestHandler) GetMyLeaveRequests(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	requests, err := h.leaves.MyRequests(c.UserContext(), claims.UserID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(models.LeaveRequestListResponse{Data: requests, Total: len(requests)})
}

// GetPendingLeaveRequests godoc
// @Summary List pending approvals
// @Description Pending requests assigned to the caller, newest first. Admins may pass manager_id to read another manager's queue.
// @Tags Leave Requests
// @Produce json
// @Security BearerAuth
// @Param manager_id query string false "Manager ID (admin only)"
// @Success 200 {object} models.LeaveRequestListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /leave-requests/pending [get]
func (h *LeaveRequestHandler) GetPendingLeaveRequests(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	managerID := claims.UserID
	if raw := c.Query("manager_id"); raw != "" {
		if managerID, err = parseObjectID(raw, "manager_id"); err != nil {
			return writeError(c, h.logger, err)
		}
	}

	requests, err := h.leaves.PendingForManager(c.UserContext(), managerID, claims.UserID, claims.IsAdmin())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(models.LeaveRequestListResponse{Data: requests, Total: len(requests)})
}

// GetLeaveRequest godoc
// @Summary Get a leave request
// @Tags Leave Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 200 {object} models.LeaveRequest
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leave-requests/{id} [get]
func (h *LeaveRequestHandler) GetLeaveRequest(c *fiber.Ctx) error {
	req, err := h.lookup(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(req)
}

// ApproveLeaveRequest godoc
// @Summary Approve a leave request
// @Description Only the manager the request was routed to can approve it, and only while it is pending.
// @Tags Leave Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 200 {object} models.LeaveRequestResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /leave-requests/{id}/approve [put]
func (h *LeaveRequestHandler) ApproveLeaveRequest(c *fiber.Ctx) error {
	return h.decide(c, "Leave request approved successfully", func(id, acting primitive.ObjectID) (*models.LeaveRequest, error) {
		return h.leaves.Approve(c.UserContext(), id, acting)
	})
}

// RejectLeaveRequest godoc
// @Summary Reject a leave request
// @Tags Leave Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Param request body models.LeaveRequestRejectPayload true "Rejection reason"
// @Success 200 {object} models.LeaveRequestResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /leave-requests/{id}/reject [put]
func (h *LeaveRequestHandler) RejectLeaveRequest(c *fiber.Ctx) error {
	var payload models.LeaveRequestRejectPayload
	if err := parseBody(c, &payload); err != nil {
		return writeError(c, h.logger, err)
	}
	return h.decide(c, "Leave request rejected successfully", func(id, acting primitive.ObjectID) (*models.LeaveRequest, error) {
		return h.leaves.Reject(c.UserContext(), id, acting, payload.Reason)
	})
}

// CancelLeaveRequest godoc
// @Summary Cancel my pending leave request
// @Tags Leave Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 200 {object} models.LeaveRequestResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /leave-requests/{id}/cancel [put]
func (h *LeaveRequestHandler) CancelLeaveRequest(c *fiber.Ctx) error {
	return h.decide(c, "Leave request cancelled successfully", func(id, acting primitive.ObjectID) (*models.LeaveRequest, error) {
		return h.leaves.Cancel(c.UserContext(), id, acting)
	})
}

// GetLeavePass godoc
// @Summary Download the QR leave pass
// @Description PNG QR code for an approved leave request.
// @Tags Leave Requests
// @Produce png
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Param size query int false "Image size in pixels (128-1024, default 256)"
// @Success 200 {file} binary
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /leave-requests/{id}/pass [get]
func (h *LeaveRequestHandler) GetLeavePass(c *fiber.Ctx) error {
	req, err := h.lookup(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	size := int(queryInt64(c, "size", 256))
	size = max(128, min(size, 1024))

	png, err := qrpass.PNG(req, size)
	if errors.Is(err, qrpass.ErrNotApproved) {
		return writeError(c, h.logger, apperror.InvalidState("leave request is %s, not approved", req.Status))
	}
	if err != nil {
		return writeError(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="leave-pass-`+req.ID.Hex()+`.png"`)
	return c.Send(png)
}

func (h *LeaveRequestHandler) lookup(c *fiber.Ctx) (*models.LeaveRequest, error) {
	claims, err := currentUser(c)
	if err != nil {
		return nil, err
	}
	id, err := parseObjectID(c.Params("id"), "leave request id")
	if err != nil {
		return nil, err
	}
	return h.leaves.Get(c.UserContext(), id, claims.UserID, claims.IsAdmin())
}

func (h *LeaveRequestHandler) decide(c *fiber.Ctx, message string, apply func(id, acting primitive.ObjectID) (*models.LeaveRequest, error)) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	id, err := parseObjectID(c.Params("id"), "leave request id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	req, err := apply(id, claims.UserID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(models.LeaveRequestResponse{Message: message, Data: *req})
}
