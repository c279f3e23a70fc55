package service

import (
	"context"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// LeaveBalanceService keeps each user's own EL, SL and CL allowances.
// Balances are informational and are not debited by approvals.
type LeaveBalanceService struct {
	balances repository.LeaveBalanceRepository
	clock    Clock
	logger   *zap.Logger
}

func NewLeaveBalanceService(balances repository.LeaveBalanceRepository, clock Clock, logger *zap.Logger) *LeaveBalanceService {
	if clock == nil {
		clock = SystemClock
	}
	return &LeaveBalanceService{balances: balances, clock: clock, logger: logger.Named("leave.balance")}
}

// List returns the user's balances. A user with none gets a zero balance for
// every leave type, created on this first read.
func (s *LeaveBalanceService) List(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveBalance, error) {
	balances, err := s.balances.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(balances) > 0 {
		return balances, nil
	}

	now := s.clock.Now().UTC()
	balances = make([]models.LeaveBalance, 0, len(models.LeaveTypes))
	for _, leaveType := range models.LeaveTypes {
		b, err := s.balances.EnsureBalance(ctx, userID, leaveType, leaveType.Label(), now)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		balances = append(balances, *b)
	}
	s.logger.Info("initialised leave balances", zap.String("user_id", userID.Hex()))
	return balances, nil
}

func (s *LeaveBalanceService) Set(ctx context.Context, userID primitive.ObjectID, leaveType models.LeaveType, balance float64) (*models.LeaveBalance, error) {
	if !leaveType.Valid() {
		return nil, apperror.Validation("unknown leave type %q", leaveType)
	}
	if balance < 0 {
		return nil, apperror.Validation("leave balance cannot be negative")
	}

	updated, err := s.balances.SetBalance(ctx, userID, leaveType, balance, leaveType.Label(), s.clock.Now().UTC())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	s.logger.Info("leave balance updated",
		zap.String("user_id", userID.Hex()),
		zap.String("leave_type", string(leaveType)),
		zap.Float64("balance", balance),
	)
	return updated, nil
}

// Reset deletes every balance of the user. The next List recreates zeros.
func (s *LeaveBalanceService) Reset(ctx context.Context, userID primitive.ObjectID) error {
	n, err := s.balances.DeleteByUser(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	s.logger.Info("leave balances reset", zap.String("user_id", userID.Hex()), zap.Int64("deleted", n))
	return nil
}
