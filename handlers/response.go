package handlers

import (
	"strconv"

	"leave-tracking/config/middleware"
	"leave-tracking/models"
	"leave-tracking/pkg/apperror"
	util "leave-tracking/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// writeError renders err as models.ErrorResponse. Anything that is not an
// *apperror.AppError is logged and reported as an internal error.
func writeError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	appErr := apperror.From(err)
	if appErr.HTTPStatus >= fiber.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
	}
	return c.Status(appErr.HTTPStatus).JSON(models.ErrorResponse{
		Code:    appErr.Code,
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}

func currentUser(c *fiber.Ctx) (*models.Claims, error) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}
	return claims, nil
}

func parseObjectID(raw, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperror.Validation("invalid %s", name)
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.Validation("invalid request body")
	}
	if errs := util.ValidateStruct(out); errs != nil {
		return apperror.Validation("%s", errs[0].Msg).WithDetails(errs)
	}
	return nil
}

func queryInt64(c *fiber.Ctx, key string, fallback int64) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
