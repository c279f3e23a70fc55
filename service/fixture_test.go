package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"leave-tracking/messaging"
	"leave-tracking/models"
	"leave-tracking/repository/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []messaging.LeaveEvent
}

func (p *recordingPublisher) PublishLeaveEvent(_ context.Context, event messaging.LeaveEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType)
	}
	return out
}

type fixture struct {
	engine        *LeaveApprovalService
	requests      *memory.LeaveRequestStore
	notifications *memory.NotificationStore
	users         *memory.UserDirectory
	events        *recordingPublisher
	clock         *stepClock

	manager  models.User
	employee models.User
	loner    models.User
	admin    models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	manager := models.User{ID: primitive.NewObjectID(), Name: "Meera Manager", Email: "meera@example.com", Role: models.RoleManager}
	employee := models.User{ID: primitive.NewObjectID(), Name: "Ravi Requester", Email: "ravi@example.com", Role: models.RoleEmployee, ManagerID: &manager.ID}
	loner := models.User{ID: primitive.NewObjectID(), Name: "Lone Owner", Email: "owner@example.com", Role: models.RoleManager}
	admin := models.User{ID: primitive.NewObjectID(), Name: "Ada Admin", Email: "ada@example.com", Role: models.RoleAdmin}

	f := &fixture{
		requests:      memory.NewLeaveRequestStore(),
		notifications: memory.NewNotificationStore(),
		users:         memory.NewUserDirectory(manager, employee, loner, admin),
		events:        &recordingPublisher{},
		clock:         &stepClock{now: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)},
		manager:       manager,
		employee:      employee,
		loner:         loner,
		admin:         admin,
	}
	logger := zap.NewNop()
	dispatcher := NewNotificationDispatcher(f.notifications, f.users, f.events, f.clock, logger)
	f.engine = NewLeaveApprovalService(f.requests, f.users, dispatcher, f.clock, logger)
	return f
}

func validInput() models.LeaveRequestCreatePayload {
	return models.LeaveRequestCreatePayload{
		LeaveType: string(models.LeaveTypeEarned),
		FromDate:  "2025-06-01",
		ToDate:    "2025-06-03",
		Days:      3,
	}
}

func (f *fixture) submit(t *testing.T, requester models.User) *models.LeaveRequest {
	t.Helper()
	req, err := f.engine.Submit(context.Background(), requester.ID, validInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return req
}

func (f *fixture) notificationsFor(recipient primitive.ObjectID, kind models.NotificationType) []models.Notification {
	var out []models.Notification
	for _, n := range f.notifications.All() {
		if n.RecipientID == recipient && n.Type == kind {
			out = append(out, n)
		}
	}
	return out
}
