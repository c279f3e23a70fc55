// Package service holds the leave approval workflow and the components that
// react to its committed transitions.
package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"
	util "leave-tracking/pkg/utils"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// LifecycleHook receives every committed transition. Implementations must
// not fail the caller; they run after the store write has succeeded.
type LifecycleHook interface {
	Submitted(ctx context.Context, req *models.LeaveRequest, requester *models.User)
	Approved(ctx context.Context, req *models.LeaveRequest)
	Rejected(ctx context.Context, req *models.LeaveRequest)
	Cancelled(ctx context.Context, req *models.LeaveRequest)
}

type LeaveApprovalService struct {
	requests repository.LeaveRequestRepository
	users    repository.UserDirectory
	hook     LifecycleHook
	clock    Clock
	logger   *zap.Logger
}

func NewLeaveApprovalService(
	requests repository.LeaveRequestRepository,
	users repository.UserDirectory,
	hook LifecycleHook,
	clock Clock,
	logger *zap.Logger,
) *LeaveApprovalService {
	if hook == nil {
		hook = noopHook{}
	}
	if clock == nil {
		clock = SystemClock
	}
	return &LeaveApprovalService{
		requests: requests,
		users:    users,
		hook:     hook,
		clock:    clock,
		logger:   logger.Named("leave.approval"),
	}
}

// Submit creates a pending request routed to the requester's manager, or to
// the requester itself when no manager is assigned.
func (s *LeaveApprovalService) Submit(ctx context.Context, requesterID primitive.ObjectID, input models.LeaveRequestCreatePayload) (*models.LeaveRequest, error) {
	if errs := util.ValidateStruct(input); errs != nil {
		return nil, apperror.Validation("%s", errs[0].Msg).WithDetails(errs)
	}
	if input.FromDate > input.ToDate {
		return nil, apperror.Validation("from_date must be on or before to_date")
	}

	requester, err := s.users.GetUser(ctx, requesterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if requester == nil {
		return nil, apperror.NotFound("user %s not found", requesterID.Hex())
	}

	now := s.clock.Now().UTC()
	req := &models.LeaveRequest{
		ID:          primitive.NewObjectID(),
		RequesterID: requester.ID,
		ManagerID:   requester.EffectiveManagerID(),
		LeaveType:   models.LeaveType(input.LeaveType),
		FromDate:    input.FromDate,
		ToDate:      input.ToDate,
		Days:        input.Days,
		Destination: strings.TrimSpace(input.Destination),
		Status:      models.LeaveStatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, apperror.From(err)
	}

	s.logger.Info("leave request submitted",
		zap.String("request_id", req.ID.Hex()),
		zap.String("requester_id", req.RequesterID.Hex()),
		zap.String("manager_id", req.ManagerID.Hex()),
		zap.String("leave_type", string(req.LeaveType)),
		zap.Int("days", req.Days),
	)
	s.hook.Submitted(context.WithoutCancel(ctx), req, requester)
	return req, nil
}

func (s *LeaveApprovalService) Approve(ctx context.Context, requestID, actingUserID primitive.ObjectID) (*models.LeaveRequest, error) {
	now := s.clock.Now().UTC()
	updated, err := s.transition(ctx, requestID, actingUserID, approveRule, models.StatusUpdate{
		Status:    models.LeaveStatusApproved,
		DecidedBy: &actingUserID,
		DecidedAt: &now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.hook.Approved(context.WithoutCancel(ctx), updated)
	return updated, nil
}

func (s *LeaveApprovalService) Reject(ctx context.Context, requestID, actingUserID primitive.ObjectID, reason string) (*models.LeaveRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.Validation("a rejection reason is required")
	}

	now := s.clock.Now().UTC()
	updated, err := s.transition(ctx, requestID, actingUserID, rejectRule, models.StatusUpdate{
		Status:          models.LeaveStatusRejected,
		DecidedBy:       &actingUserID,
		DecidedAt:       &now,
		RejectionReason: &reason,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}
	s.hook.Rejected(context.WithoutCancel(ctx), updated)
	return updated, nil
}

// Cancel withdraws a pending request. Only its requester may do so.
func (s *LeaveApprovalService) Cancel(ctx context.Context, requestID, actingUserID primitive.ObjectID) (*models.LeaveRequest, error) {
	updated, err := s.transition(ctx, requestID, actingUserID, cancelRule, models.StatusUpdate{
		Status:    models.LeaveStatusCancelled,
		UpdatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.hook.Cancelled(context.WithoutCancel(ctx), updated)
	return updated, nil
}

// transitionRule names who may perform a transition and how refusals read.
type transitionRule struct {
	action     string
	authorized func(req *models.LeaveRequest, actingUserID primitive.ObjectID) bool
	forbidden  string
	// decision marks approve and reject, where a requester acting on their
	// own request is worth a warning.
	decision bool
}

var (
	approveRule = transitionRule{
		action:     "approve",
		authorized: isAssignedManager,
		forbidden:  "only the assigned manager can approve this leave request",
		decision:   true,
	}
	rejectRule = transitionRule{
		action:     "reject",
		authorized: isAssignedManager,
		forbidden:  "only the assigned manager can reject this leave request",
		decision:   true,
	}
	cancelRule = transitionRule{
		action:     "cancel",
		authorized: isRequester,
		forbidden:  "only the requester can cancel this leave request",
	}
)

func isAssignedManager(req *models.LeaveRequest, actingUserID primitive.ObjectID) bool {
	return req.ManagerID == actingUserID
}

func isRequester(req *models.LeaveRequest, actingUserID primitive.ObjectID) bool {
	return req.RequesterID == actingUserID
}

// transition checks existence, then authorization, then state, and finally
// applies update through the store's compare-and-swap.
func (s *LeaveApprovalService) transition(
	ctx context.Context,
	requestID, actingUserID primitive.ObjectID,
	rule transitionRule,
	update models.StatusUpdate,
) (*models.LeaveRequest, error) {
	fields := []zap.Field{
		zap.String("action", rule.action),
		zap.String("request_id", requestID.Hex()),
		zap.String("acting_user_id", actingUserID.Hex()),
	}

	req, err := s.load(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !rule.authorized(req, actingUserID) {
		s.logger.Warn("unauthorized leave transition attempt", fields...)
		return nil, apperror.Forbidden("%s", rule.forbidden)
	}
	if req.Status != models.LeaveStatusPending {
		return nil, alreadyDecided(req.Status)
	}
	if rule.decision && req.RequesterID == actingUserID {
		s.logger.Warn("requester is deciding their own leave request", fields...)
	}

	updated, err := s.requests.UpdateStatus(ctx, requestID, update)
	switch {
	case errors.Is(err, repository.ErrNotPending):
		s.logger.Info("lost leave transition race", append(fields, zap.String("status", string(updated.Status)))...)
		return nil, alreadyDecided(updated.Status)
	case err != nil:
		s.logger.Error("failed to update leave request status", append(fields, zap.Error(err))...)
		return nil, apperror.Internal(err)
	case updated == nil:
		return nil, apperror.NotFound("leave request %s not found", requestID.Hex())
	}

	s.logger.Info("leave request "+string(updated.Status), fields...)
	return updated, nil
}

func alreadyDecided(status models.LeaveStatus) *apperror.AppError {
	return apperror.InvalidState("leave request is already %s", status)
}

func (s *LeaveApprovalService) load(ctx context.Context, requestID primitive.ObjectID) (*models.LeaveRequest, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if req == nil {
		return nil, apperror.NotFound("leave request %s not found", requestID.Hex())
	}
	return req, nil
}

// Get is readable by the requester, the assigned manager and admins.
func (s *LeaveApprovalService) Get(ctx context.Context, requestID, actingUserID primitive.ObjectID, isAdmin bool) (*models.LeaveRequest, error) {
	req, err := s.load(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && req.RequesterID != actingUserID && req.ManagerID != actingUserID {
		return nil, apperror.Forbidden("you cannot view this leave request")
	}
	return req, nil
}

func (s *LeaveApprovalService) MyRequests(ctx context.Context, requesterID primitive.ObjectID) ([]models.LeaveRequest, error) {
	requests, err := s.requests.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	newestFirst(requests)
	return requests, nil
}

// PendingForManager lists the manager's pending queue, newest first. Admins
// may read any manager's queue.
func (s *LeaveApprovalService) PendingForManager(ctx context.Context, managerID, actingUserID primitive.ObjectID, isAdmin bool) ([]models.LeaveRequest, error) {
	if managerID != actingUserID && !isAdmin {
		return nil, apperror.Forbidden("you can only list your own pending approvals")
	}
	requests, err := s.requests.FindPendingByManager(ctx, managerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	newestFirst(requests)
	return requests, nil
}

func newestFirst(requests []models.LeaveRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].SubmittedAt.After(requests[j].SubmittedAt)
	})
}

type noopHook struct{}

func (noopHook) Submitted(context.Context, *models.LeaveRequest, *models.User) {}
func (noopHook) Approved(context.Context, *models.LeaveRequest)                {}
func (noopHook) Rejected(context.Context, *models.LeaveRequest)                {}
func (noopHook) Cancelled(context.Context, *models.LeaveRequest)               {}
