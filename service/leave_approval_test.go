package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"leave-tracking/messaging"
	"leave-tracking/models"
	"leave-tracking/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLeaveApproval_EndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req, err := f.engine.Submit(ctx, f.employee.ID, validInput())
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusPending, req.Status)
	assert.Equal(t, f.manager.ID, req.ManagerID)
	assert.Nil(t, req.DecidedBy)

	require.Len(t, f.notifications.All(), 2)
	assert.Len(t, f.notificationsFor(f.manager.ID, models.NotificationLeaveSubmitted), 1)
	assert.Len(t, f.notificationsFor(f.employee.ID, models.NotificationLeaveSubmitted), 1)

	f.clock.Advance(time.Hour)
	approved, err := f.engine.Approve(ctx, req.ID, f.manager.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, approved.Status)
	require.NotNil(t, approved.DecidedBy)
	assert.Equal(t, f.manager.ID, *approved.DecidedBy)
	require.NotNil(t, approved.DecidedAt)
	assert.True(t, approved.DecidedAt.Equal(f.clock.Now()))

	require.Len(t, f.notifications.All(), 3)
	got := f.notificationsFor(f.employee.ID, models.NotificationLeaveApproved)
	require.Len(t, got, 1)
	assert.Equal(t, req.ID, got[0].RelatedRequestID)
	assert.Equal(t, "Meera Manager", got[0].Payload.DecidedByName)

	_, err = f.engine.Approve(ctx, req.ID, f.manager.ID)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	assert.EqualError(t, err, "leave request is already approved")

	assert.Equal(t, []string{messaging.EventLeaveSubmitted, messaging.EventLeaveApproved}, f.events.Types())
}

func TestLeaveApproval_ConcurrentDecisionsHaveOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		req := f.submit(t, f.employee)

		var (
			wg                    sync.WaitGroup
			start                 = make(chan struct{})
			approved, rejected    *models.LeaveRequest
			approveErr, rejectErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			approved, approveErr = f.engine.Approve(ctx, req.ID, f.manager.ID)
		}()
		go func() {
			defer wg.Done()
			<-start
			rejected, rejectErr = f.engine.Reject(ctx, req.ID, f.manager.ID, "team offsite")
		}()
		close(start)
		wg.Wait()

		stored, err := f.requests.FindByID(ctx, req.ID)
		require.NoError(t, err)

		if approveErr == nil {
			require.ErrorIs(t, rejectErr, apperror.ErrInvalidState)
			assert.Nil(t, rejected)
			assert.Equal(t, models.LeaveStatusApproved, approved.Status)
			assert.Equal(t, models.LeaveStatusApproved, stored.Status)
			assert.Nil(t, stored.RejectionReason)
		} else {
			require.ErrorIs(t, approveErr, apperror.ErrInvalidState)
			require.NoError(t, rejectErr)
			assert.Equal(t, models.LeaveStatusRejected, stored.Status)
			require.NotNil(t, stored.RejectionReason)
			assert.Equal(t, "team offsite", *stored.RejectionReason)
		}
	}
}

func TestLeaveApproval_TerminalStatesAreFinal(t *testing.T) {
	ctx := context.Background()
	finishers := map[models.LeaveStatus]func(f *fixture, id primitive.ObjectID) error{
		models.LeaveStatusApproved: func(f *fixture, id primitive.ObjectID) error {
			_, err := f.engine.Approve(ctx, id, f.manager.ID)
			return err
		},
		models.LeaveStatusRejected: func(f *fixture, id primitive.ObjectID) error {
			_, err := f.engine.Reject(ctx, id, f.manager.ID, "coverage gap")
			return err
		},
		models.LeaveStatusCancelled: func(f *fixture, id primitive.ObjectID) error {
			_, err := f.engine.Cancel(ctx, id, f.employee.ID)
			return err
		},
	}

	for status, finish := range finishers {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			req := f.submit(t, f.employee)
			require.NoError(t, finish(f, req.ID))

			before, err := f.requests.FindByID(ctx, req.ID)
			require.NoError(t, err)

			_, err = f.engine.Approve(ctx, req.ID, f.manager.ID)
			assert.ErrorIs(t, err, apperror.ErrInvalidState)
			_, err = f.engine.Reject(ctx, req.ID, f.manager.ID, "late")
			assert.ErrorIs(t, err, apperror.ErrInvalidState)
			_, err = f.engine.Cancel(ctx, req.ID, f.employee.ID)
			assert.ErrorIs(t, err, apperror.ErrInvalidState)

			after, err := f.requests.FindByID(ctx, req.ID)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestLeaveApproval_OnlyAssignedManagerDecides(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	outsider := f.admin.ID

	pending := f.submit(t, f.employee)
	decided := f.submit(t, f.employee)
	_, err := f.engine.Approve(ctx, decided.ID, f.manager.ID)
	require.NoError(t, err)

	for _, req := range []*models.LeaveRequest{pending, decided} {
		before, err := f.requests.FindByID(ctx, req.ID)
		require.NoError(t, err)

		_, err = f.engine.Approve(ctx, req.ID, outsider)
		assert.ErrorIs(t, err, apperror.ErrForbidden)
		_, err = f.engine.Reject(ctx, req.ID, outsider, "not mine to decide")
		assert.ErrorIs(t, err, apperror.ErrForbidden)
		_, err = f.engine.Approve(ctx, req.ID, f.employee.ID)
		assert.ErrorIs(t, err, apperror.ErrForbidden)

		after, err := f.requests.FindByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	}
}

func TestLeaveApproval_RejectRequiresReason(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.submit(t, f.employee)

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := f.engine.Reject(ctx, req.ID, f.manager.ID, reason)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput, "reason %q", reason)
	}

	stored, err := f.requests.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusPending, stored.Status)

	rejected, err := f.engine.Reject(ctx, req.ID, f.manager.ID, "  peak season  ")
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRejected, rejected.Status)
	assert.Equal(t, "peak season", *rejected.RejectionReason)

	got := f.notificationsFor(f.employee.ID, models.NotificationLeaveRejected)
	require.Len(t, got, 1)
	assert.Equal(t, "peak season", got[0].Payload.RejectionReason)
	assert.Contains(t, got[0].Message, "peak season")
}

func TestLeaveApproval_RejectValidatesReasonBeforeLookup(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Reject(context.Background(), primitive.NewObjectID(), f.manager.ID, " ")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestLeaveApproval_UnknownRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	missing := primitive.NewObjectID()

	_, err := f.engine.Approve(ctx, missing, f.manager.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = f.engine.Reject(ctx, missing, f.manager.ID, "reason")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = f.engine.Get(ctx, missing, f.manager.ID, true)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLeaveApproval_SubmitNotifications(t *testing.T) {
	t.Run("distinct manager gets notified too", func(t *testing.T) {
		f := newFixture(t)
		f.submit(t, f.employee)
		assert.Len(t, f.notifications.All(), 2)
	})

	t.Run("self-managed requester gets a single notification", func(t *testing.T) {
		f := newFixture(t)
		req := f.submit(t, f.loner)
		assert.Equal(t, f.loner.ID, req.ManagerID)

		all := f.notifications.All()
		require.Len(t, all, 1)
		assert.Equal(t, f.loner.ID, all[0].RecipientID)
		assert.Equal(t, models.NotificationLeaveSubmitted, all[0].Type)
	})

	t.Run("approval notifies only the requester", func(t *testing.T) {
		f := newFixture(t)
		req := f.submit(t, f.employee)
		before := len(f.notifications.All())

		_, err := f.engine.Approve(context.Background(), req.ID, f.manager.ID)
		require.NoError(t, err)

		all := f.notifications.All()
		require.Len(t, all, before+1)
		last := all[len(all)-1]
		assert.Equal(t, f.employee.ID, last.RecipientID)
		assert.Equal(t, models.NotificationLeaveApproved, last.Type)
	})
}

func TestLeaveApproval_SelfManagedRequesterMayDecide(t *testing.T) {
	f := newFixture(t)
	req := f.submit(t, f.loner)

	approved, err := f.engine.Approve(context.Background(), req.ID, f.loner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, approved.Status)
}

func TestLeaveApproval_SubmitValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(p *models.LeaveRequestCreatePayload)
	}{
		{"unknown leave type", func(p *models.LeaveRequestCreatePayload) { p.LeaveType = "XL" }},
		{"zero days", func(p *models.LeaveRequestCreatePayload) { p.Days = 0 }},
		{"negative days", func(p *models.LeaveRequestCreatePayload) { p.Days = -2 }},
		{"from after to", func(p *models.LeaveRequestCreatePayload) { p.FromDate = "2025-06-04" }},
		{"malformed date", func(p *models.LeaveRequestCreatePayload) { p.ToDate = "03/06/2025" }},
		{"missing date", func(p *models.LeaveRequestCreatePayload) { p.FromDate = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := f.engine.Submit(ctx, f.employee.ID, input)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.notifications.All())

	_, err := f.engine.Submit(ctx, primitive.NewObjectID(), validInput())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLeaveApproval_PendingForManagerNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var submitted []primitive.ObjectID
	for i := 0; i < 3; i++ {
		submitted = append(submitted, f.submit(t, f.employee).ID)
		f.clock.Advance(time.Minute)
	}
	decided := f.submit(t, f.employee)
	_, err := f.engine.Approve(ctx, decided.ID, f.manager.ID)
	require.NoError(t, err)

	got, err := f.engine.PendingForManager(ctx, f.manager.ID, f.manager.ID, false)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, submitted[2], got[0].ID)
	assert.Equal(t, submitted[1], got[1].ID)
	assert.Equal(t, submitted[0], got[2].ID)

	_, err = f.engine.PendingForManager(ctx, f.manager.ID, f.employee.ID, false)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	asAdmin, err := f.engine.PendingForManager(ctx, f.manager.ID, f.admin.ID, true)
	require.NoError(t, err)
	assert.Len(t, asAdmin, 3)
}

func TestLeaveApproval_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.submit(t, f.employee)
	before := len(f.notifications.All())

	_, err := f.engine.Cancel(ctx, req.ID, f.manager.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	cancelled, err := f.engine.Cancel(ctx, req.ID, f.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusCancelled, cancelled.Status)
	assert.Nil(t, cancelled.DecidedBy)

	assert.Len(t, f.notifications.All(), before)
	assert.Contains(t, f.events.Types(), messaging.EventLeaveCancelled)

	pending, err := f.engine.PendingForManager(ctx, f.manager.ID, f.manager.ID, false)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestLeaveApproval_GetAndMyRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first := f.submit(t, f.employee)
	f.clock.Advance(time.Minute)
	second := f.submit(t, f.employee)

	for _, viewer := range []primitive.ObjectID{f.employee.ID, f.manager.ID} {
		got, err := f.engine.Get(ctx, first.ID, viewer, false)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
	}
	_, err := f.engine.Get(ctx, first.ID, f.loner.ID, false)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = f.engine.Get(ctx, first.ID, f.admin.ID, true)
	assert.NoError(t, err)

	mine, err := f.engine.MyRequests(ctx, f.employee.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)
}

func TestLeaveApproval_ForbiddenMessagesNameTheRule(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.submit(t, f.employee)

	_, err := f.engine.Approve(ctx, req.ID, f.loner.ID)
	assert.EqualError(t, err, "only the assigned manager can approve this leave request")
	_, err = f.engine.Reject(ctx, req.ID, f.loner.ID, "no")
	assert.EqualError(t, err, "only the assigned manager can reject this leave request")
	_, err = f.engine.Cancel(ctx, req.ID, f.manager.ID)
	assert.EqualError(t, err, "only the requester can cancel this leave request")
}
