package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"leave-tracking/messaging"
	"leave-tracking/models"
	"leave-tracking/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeNotificationWriter struct {
	createFn func(ctx context.Context, n *models.Notification) error
}

func (f *fakeNotificationWriter) Create(ctx context.Context, n *models.Notification) error {
	return f.createFn(ctx, n)
}

type failingPublisher struct{}

func (failingPublisher) PublishLeaveEvent(context.Context, messaging.LeaveEvent) error {
	return errors.New("broker unavailable")
}

func TestNotificationDispatcher_FailuresDoNotReachCaller(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	manager := models.User{ID: primitive.NewObjectID(), Name: "M", Role: models.RoleManager}
	employee := models.User{ID: primitive.NewObjectID(), Name: "E", Role: models.RoleEmployee, ManagerID: &manager.ID}
	users := memory.NewUserDirectory(manager, employee)

	writer := &fakeNotificationWriter{createFn: func(context.Context, *models.Notification) error {
		return errors.New("mongo write failed")
	}}
	clock := &stepClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	dispatcher := NewNotificationDispatcher(writer, users, failingPublisher{}, clock, logger)
	requests := memory.NewLeaveRequestStore()
	engine := NewLeaveApprovalService(requests, users, dispatcher, clock, logger)

	ctx := context.Background()
	req, err := engine.Submit(ctx, employee.ID, validInput())
	require.NoError(t, err)

	approved, err := engine.Approve(ctx, req.ID, manager.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, approved.Status)

	stored, err := requests.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, stored.Status)

	// two submit notifications plus one approval
	assert.Equal(t, 3, logs.FilterMessage("failed to create notification").Len())
	assert.Equal(t, 2, logs.FilterMessage("failed to publish leave event").Len())
}

func TestNotificationDispatcher_SubmittedPayload(t *testing.T) {
	var created []*models.Notification
	writer := &fakeNotificationWriter{createFn: func(_ context.Context, n *models.Notification) error {
		created = append(created, n)
		return nil
	}}
	clock := &stepClock{now: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)}
	d := NewNotificationDispatcher(writer, memory.NewUserDirectory(), nil, clock, zap.NewNop())

	requester := &models.User{ID: primitive.NewObjectID(), Name: "Kiran", Email: "kiran@example.com"}
	req := &models.LeaveRequest{
		ID:          primitive.NewObjectID(),
		RequesterID: requester.ID,
		ManagerID:   primitive.NewObjectID(),
		LeaveType:   models.LeaveTypeSick,
		FromDate:    "2025-03-04",
		ToDate:      "2025-03-05",
		Days:        2,
		Destination: "Home",
		Status:      models.LeaveStatusPending,
	}
	d.Submitted(context.Background(), req, requester)

	require.Len(t, created, 2)
	toManager, toRequester := created[0], created[1]
	assert.Equal(t, req.ManagerID, toManager.RecipientID)
	assert.Equal(t, requester.ID, toRequester.RecipientID)
	assert.Contains(t, toManager.Message, "Kiran requested 2 day(s)")
	assert.Equal(t, "kiran@example.com", toManager.Payload.RequesterEmail)
	assert.Equal(t, "Home", toManager.Payload.Destination)
	assert.False(t, toManager.IsRead)
	assert.True(t, clock.Now().Equal(toManager.CreatedAt))
}

type stallingPublisher struct{}

func (stallingPublisher) PublishLeaveEvent(ctx context.Context, _ messaging.LeaveEvent) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestNotificationDispatcher_PublishIsBounded(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	manager := models.User{ID: primitive.NewObjectID(), Name: "M", Role: models.RoleManager}
	employee := models.User{ID: primitive.NewObjectID(), Name: "E", Role: models.RoleEmployee, ManagerID: &manager.ID}
	users := memory.NewUserDirectory(manager, employee)

	dispatcher := NewNotificationDispatcher(memory.NewNotificationStore(), users, stallingPublisher{}, nil, zap.New(core)).
		WithPublishTimeout(20 * time.Millisecond)
	engine := NewLeaveApprovalService(memory.NewLeaveRequestStore(), users, dispatcher, nil, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := engine.Submit(context.Background(), employee.ID, validInput())
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("submit blocked on a stalled event publish")
	}
	entries := logs.FilterMessage("failed to publish leave event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, context.DeadlineExceeded.Error(), entries[0].ContextMap()["error"])
}

func TestNotificationDispatcher_WithPublishTimeoutIgnoresNonPositive(t *testing.T) {
	d := NewNotificationDispatcher(memory.NewNotificationStore(), memory.NewUserDirectory(), nil, nil, zap.NewNop())
	assert.Equal(t, DefaultPublishTimeout, d.WithPublishTimeout(0).publishTimeout)
	assert.Equal(t, time.Second, d.WithPublishTimeout(time.Second).publishTimeout)
}
