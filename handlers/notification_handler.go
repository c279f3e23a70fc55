package handlers

import (
	"leave-tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	inbox  *service.NotificationInbox
	logger *zap.Logger
}

func NewNotificationHandler(inbox *service.NotificationInbox, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{inbox: inbox, logger: logger.Named("http.notification")}
}

// GetNotifications godoc
// @Summary List my notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 20, max 100)"
// @Param unread_only query bool false "Only unread notifications"
// @Success 200 {object} models.NotificationPage
// @Failure 401 {object} models.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	page, err := h.inbox.List(c.UserContext(), claims.UserID,
		queryInt64(c, "page", 1),
		queryInt64(c, "limit", service.DefaultInboxLimit),
		c.QueryBool("unread_only", false),
	)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(page)
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.Notification
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	id, err := parseObjectID(c.Params("id"), "notification id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	n, err := h.inbox.MarkRead(c.UserContext(), id, claims.UserID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(n)
}

// MarkAllNotificationsRead godoc
// @Summary Mark all my notifications as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,modified=int}
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	modified, err := h.inbox.MarkAllRead(c.UserContext(), claims.UserID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{
		"message":  "All notifications marked as read",
		"modified": modified,
	})
}
