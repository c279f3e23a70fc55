package handlers

import (
	"context"
	"time"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"
	"leave-tracking/repository"
	"leave-tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserHandler struct {
	directory repository.UserDirectory
	admin     *service.UserAdminService
	logger    *zap.Logger
}

func NewUserHandler(directory repository.UserDirectory, admin *service.UserAdminService, logger *zap.Logger) *UserHandler {
	return &UserHandler{directory: directory, admin: admin, logger: logger.Named("http.user")}
}

// GetMe godoc
// @Summary Get my profile
// @Description Returns the caller's directory record, including the manager leave requests are routed to.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	user, err := h.directory.GetUser(ctx, claims.UserID)
	if err != nil {
		return writeError(c, h.logger, apperror.Internal(err))
	}
	if user == nil {
		return writeError(c, h.logger, apperror.NotFound("user not found"))
	}
	return c.JSON(user)
}

// GetAllUsers godoc
// @Summary List users
// @Description Paged user directory (admin only).
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 20, max 100)"
// @Param search query string false "Search by name or email"
// @Param role query string false "Filter by role"
// @Success 200 {object} object{data=[]models.User,total=int,page=int,limit=int}
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	page := queryInt64(c, "page", 1)
	limit := queryInt64(c, "limit", 20)

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	users, total, err := h.admin.ListUsers(ctx, c.Query("role"), c.Query("search"), page, limit)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{
		"data":  users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// AssignManager godoc
// @Summary Assign or clear a user's manager
// @Description Sets the manager new leave requests of the user are routed to. An empty manager_id clears the assignment.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.AssignManagerPayload true "Manager assignment"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id}/manager [put]
func (h *UserHandler) AssignManager(c *fiber.Ctx) error {
	userID, err := parseObjectID(c.Params("id"), "user id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var payload models.AssignManagerPayload
	if err := parseBody(c, &payload); err != nil {
		return writeError(c, h.logger, err)
	}

	var managerID *primitive.ObjectID
	if payload.ManagerID != "" {
		id, err := parseObjectID(payload.ManagerID, "manager_id")
		if err != nil {
			return writeError(c, h.logger, err)
		}
		managerID = &id
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	user, err := h.admin.AssignManager(ctx, userID, managerID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(user)
}

// ChangeRole godoc
// @Summary Change a user's role
// @Description Moves the user to a new role and records the change in the audit log. Admins cannot change their own role.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.ChangeRolePayload true "New role and reason"
// @Success 200 {object} models.RoleChangeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c *fiber.Ctx) error {
	claims, err := currentUser(c)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	userID, err := parseObjectID(c.Params("id"), "user id")
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var payload models.ChangeRolePayload
	if err := parseBody(c, &payload); err != nil {
		return writeError(c, h.logger, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	actor := service.RoleChangeActor{ID: claims.UserID, Email: claims.Email, IPAddress: c.IP()}
	user, change, err := h.admin.ChangeRole(ctx, userID, payload.Role, payload.Reason, actor)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(models.RoleChangeResponse{
		Message: "Role updated successfully",
		User:    *user,
		Change:  *change,
	})
}

// GetRoleChangeLogs godoc
// @Summary List role change audit logs
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 20, max 100)"
// @Param user_id query string false "Only changes made to this user"
// @Success 200 {object} models.RoleChangeLogPage
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/role-change-logs [get]
func (h *UserHandler) GetRoleChangeLogs(c *fiber.Ctx) error {
	var userID *primitive.ObjectID
	if raw := c.Query("user_id"); raw != "" {
		id, err := parseObjectID(raw, "user_id")
		if err != nil {
			return writeError(c, h.logger, err)
		}
		userID = &id
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	page, err := h.admin.RoleChanges(ctx, userID, queryInt64(c, "page", 1), queryInt64(c, "limit", 20))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(page)
}
