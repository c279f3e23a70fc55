package router

import (
	"leave-tracking/config/middleware"
	"leave-tracking/handlers"
	"leave-tracking/models"

	_ "leave-tracking/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Leave        *handlers.LeaveRequestHandler
	Notification *handlers.NotificationHandler
	Balance      *handlers.LeaveBalanceHandler
	User         *handlers.UserHandler
	Health       *handlers.HealthHandler
}

func SetupRoutes(app *fiber.App, h Handlers, tokens middleware.TokenValidator, logger *zap.Logger) {
	logger.Info("registering routes")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Leave Tracking API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/health", h.Health.Health)
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1", middleware.AuthMiddleware(tokens))
	managers := middleware.RequireRole(models.RoleManager, models.RoleAdmin)

	leave := api.Group("/leave-requests")
	leave.Post("/", h.Leave.CreateLeaveRequest)
	leave.Get("/mine", h.Leave.GetMyLeaveRequests)
	leave.Get("/pending", managers, h.Leave.GetPendingLeaveRequests)
	leave.Get("/:id", h.Leave.GetLeaveRequest)
	leave.Get("/:id/pass", h.Leave.GetLeavePass)
	leave.Put("/:id/approve", managers, h.Leave.ApproveLeaveRequest)
	leave.Put("/:id/reject", managers, h.Leave.RejectLeaveRequest)
	leave.Put("/:id/cancel", h.Leave.CancelLeaveRequest)

	notifications := api.Group("/notifications")
	notifications.Get("/", h.Notification.GetNotifications)
	notifications.Put("/read-all", h.Notification.MarkAllNotificationsRead)
	notifications.Put("/:id/read", h.Notification.MarkNotificationRead)

	balances := api.Group("/leave-balances")
	balances.Get("/", h.Balance.GetLeaveBalances)
	balances.Post("/reset", h.Balance.ResetLeaveBalances)
	balances.Put("/:leaveType", h.Balance.UpdateLeaveBalance)

	api.Get("/users/me", h.User.GetMe)

	admin := api.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.Get("/users", h.User.GetAllUsers)
	admin.Put("/users/:id/manager", h.User.AssignManager)
	admin.Put("/users/:id/role", h.User.ChangeRole)
	admin.Get("/role-change-logs", h.User.GetRoleChangeLogs)

	logger.Info("routes registered")
}
