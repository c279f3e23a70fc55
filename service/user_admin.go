package service

import (
	"context"
	"regexp"
	"strings"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserStore interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateManager(ctx context.Context, id primitive.ObjectID, managerID *primitive.ObjectID) (bool, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, from, to string) (bool, error)
	ListUsers(ctx context.Context, filter bson.M, page, limit int64) ([]models.User, int64, error)
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context, id primitive.ObjectID) error
}

// RoleChangeActor is the admin performing a role change.
type RoleChangeActor struct {
	ID        primitive.ObjectID
	Email     string
	IPAddress string
}

type UserAdminService struct {
	users  UserStore
	audit  repository.RoleChangeLogRepository
	cache  CacheInvalidator
	clock  Clock
	logger *zap.Logger
}

// NewUserAdminService accepts a nil cache when no directory cache is in use.
func NewUserAdminService(users UserStore, audit repository.RoleChangeLogRepository, cache CacheInvalidator, clock Clock, logger *zap.Logger) *UserAdminService {
	if clock == nil {
		clock = SystemClock
	}
	return &UserAdminService{users: users, audit: audit, cache: cache, clock: clock, logger: logger.Named("user.admin")}
}

// AssignManager sets the user's manager, or clears it when managerID is nil.
// Requests already submitted keep the manager they were routed to.
func (s *UserAdminService) AssignManager(ctx context.Context, userID primitive.ObjectID, managerID *primitive.ObjectID) (*models.User, error) {
	if managerID != nil {
		if *managerID == userID {
			return nil, apperror.Validation("a user cannot be assigned as their own manager")
		}
		manager, err := s.users.GetUser(ctx, *managerID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if manager == nil {
			return nil, apperror.NotFound("manager %s not found", managerID.Hex())
		}
		if manager.Role != models.RoleManager && manager.Role != models.RoleAdmin {
			return nil, apperror.Validation("user %s cannot manage other users", managerID.Hex())
		}
	}

	found, err := s.users.UpdateManager(ctx, userID, managerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !found {
		return nil, apperror.NotFound("user %s not found", userID.Hex())
	}

	s.invalidate(ctx, userID)

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user %s not found", userID.Hex())
	}
	s.logger.Info("manager assignment updated",
		zap.String("user_id", userID.Hex()),
		zap.String("manager_id", user.EffectiveManagerID().Hex()),
	)
	return user, nil
}

// ChangeRole moves a user to role and records who did it and why. The role
// update only applies if the user still holds the role read here, and it is
// reverted when the audit entry cannot be written.
func (s *UserAdminService) ChangeRole(ctx context.Context, userID primitive.ObjectID, role, reason string, actor RoleChangeActor) (*models.User, *models.RoleChangeLog, error) {
	if !models.ValidRole(role) {
		return nil, nil, apperror.Validation("invalid role %q", role)
	}
	if userID == actor.ID {
		return nil, nil, apperror.Validation("admins cannot change their own role")
	}
	if reason = strings.TrimSpace(reason); reason == "" {
		reason = models.DefaultRoleChangeReason
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, nil, apperror.NotFound("user %s not found", userID.Hex())
	}
	oldRole := user.Role
	if oldRole == role {
		return nil, nil, apperror.Validation("user already has role %s", role)
	}

	updated, err := s.users.UpdateRole(ctx, userID, oldRole, role)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if !updated {
		return nil, nil, apperror.InvalidState("role of user %s changed concurrently", userID.Hex())
	}

	entry := &models.RoleChangeLog{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		UserEmail:      user.Email,
		UserName:       user.Name,
		OldRole:        oldRole,
		NewRole:        role,
		ChangedBy:      actor.ID,
		ChangedByEmail: actor.Email,
		Reason:         reason,
		IPAddress:      actor.IPAddress,
		Timestamp:      s.clock.Now().UTC(),
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Error("failed to write role change audit log", zap.String("user_id", userID.Hex()), zap.Error(err))
		if _, revertErr := s.users.UpdateRole(ctx, userID, role, oldRole); revertErr != nil {
			s.logger.Error("failed to revert unaudited role change",
				zap.String("user_id", userID.Hex()),
				zap.String("role", role),
				zap.Error(revertErr),
			)
		}
		return nil, nil, apperror.Internal(err)
	}
	s.invalidate(ctx, userID)

	s.logger.Info("user role changed",
		zap.String("user_id", userID.Hex()),
		zap.String("old_role", oldRole),
		zap.String("new_role", role),
		zap.String("changed_by", actor.ID.Hex()),
		zap.String("reason", reason),
	)
	user.Role = role
	return user, entry, nil
}

// RoleChanges pages the audit trail newest first, optionally for one user.
func (s *UserAdminService) RoleChanges(ctx context.Context, userID *primitive.ObjectID, page, limit int64) (*models.RoleChangeLogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	logs, total, err := s.audit.List(ctx, userID, page, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &models.RoleChangeLogPage{Logs: logs, Total: total, Page: page, Limit: limit}, nil
}

func (s *UserAdminService) invalidate(ctx context.Context, userID primitive.ObjectID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate cached user", zap.String("user_id", userID.Hex()), zap.Error(err))
	}
}

// ListUsers pages through the directory, optionally filtered by role and a
// case-insensitive name or email search.
func (s *UserAdminService) ListUsers(ctx context.Context, role, search string, page, limit int64) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{{"name": pattern}, {"email": pattern}}
	}
	users, total, err := s.users.ListUsers(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return users, total, nil
}
