package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"leave-tracking/models"
	"leave-tracking/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func pending(manager primitive.ObjectID) *models.LeaveRequest {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	return &models.LeaveRequest{
		RequesterID: primitive.NewObjectID(),
		ManagerID:   manager,
		LeaveType:   models.LeaveTypeCasual,
		FromDate:    "2024-06-03",
		ToDate:      "2024-06-03",
		Days:        1,
		Status:      models.LeaveStatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
}

func TestLeaveRequestStore_UpdateStatusOnlyOnce(t *testing.T) {
	ctx := context.Background()
	store := NewLeaveRequestStore()
	req := pending(primitive.NewObjectID())
	require.NoError(t, store.Create(ctx, req))

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		notPend   int
		decisions = []models.LeaveStatus{models.LeaveStatusApproved, models.LeaveStatusRejected}
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.UpdateStatus(ctx, req.ID, models.StatusUpdate{Status: decisions[i%2]})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, repository.ErrNotPending):
				notPend++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, workers-1, notPend)

	got, err := store.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, got.Status.Terminal())
}

func TestLeaveRequestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewLeaveRequestStore()
	req := pending(primitive.NewObjectID())
	require.NoError(t, store.Create(ctx, req))

	reason := "busy quarter"
	updated, err := store.UpdateStatus(ctx, req.ID, models.StatusUpdate{
		Status:          models.LeaveStatusRejected,
		RejectionReason: &reason,
	})
	require.NoError(t, err)

	*updated.RejectionReason = "tampered"
	updated.Status = models.LeaveStatusApproved

	got, err := store.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRejected, got.Status)
	assert.Equal(t, "busy quarter", *got.RejectionReason)
}

func TestLeaveRequestStore_UnknownAndInvalid(t *testing.T) {
	ctx := context.Background()
	store := NewLeaveRequestStore()

	got, err := store.UpdateStatus(ctx, primitive.NewObjectID(), models.StatusUpdate{Status: models.LeaveStatusApproved})
	assert.NoError(t, err)
	assert.Nil(t, got)

	bad := pending(primitive.NewObjectID())
	bad.FromDate = "2024-06-05"
	assert.Error(t, store.Create(ctx, bad))
}

func TestLeaveRequestStore_FindPendingByManager(t *testing.T) {
	ctx := context.Background()
	store := NewLeaveRequestStore()
	manager := primitive.NewObjectID()

	a, b, other := pending(manager), pending(manager), pending(primitive.NewObjectID())
	for _, r := range []*models.LeaveRequest{a, b, other} {
		require.NoError(t, store.Create(ctx, r))
	}
	_, err := store.UpdateStatus(ctx, b.ID, models.StatusUpdate{Status: models.LeaveStatusApproved})
	require.NoError(t, err)

	got, err := store.FindPendingByManager(ctx, manager)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
}

func TestNotificationStore_Paging(t *testing.T) {
	ctx := context.Background()
	store := NewNotificationStore()
	recipient := primitive.NewObjectID()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Create(ctx, &models.Notification{
			RecipientID: recipient,
			Title:       "n",
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, store.Create(ctx, &models.Notification{RecipientID: primitive.NewObjectID()}))

	page, total, err := store.FindByRecipient(ctx, recipient, false, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.True(t, page[0].CreatedAt.After(page[1].CreatedAt))

	last, _, err := store.FindByRecipient(ctx, recipient, false, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	empty, _, err := store.FindByRecipient(ctx, recipient, false, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)

	marked, err := store.MarkRead(ctx, page[0].ID, recipient, base)
	require.NoError(t, err)
	require.NotNil(t, marked)
	assert.True(t, marked.IsRead)

	foreign, err := store.MarkRead(ctx, page[1].ID, primitive.NewObjectID(), base)
	assert.NoError(t, err)
	assert.Nil(t, foreign)

	unread, err := store.CountUnread(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(4), unread)

	modified, err := store.MarkAllRead(ctx, recipient, base)
	require.NoError(t, err)
	assert.Equal(t, int64(4), modified)

	unreadOnly, total, err := store.FindByRecipient(ctx, recipient, true, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, unreadOnly)
	assert.Equal(t, int64(0), total)
}

func TestLeaveBalanceStore_EnsureKeepsExisting(t *testing.T) {
	ctx := context.Background()
	store := NewLeaveBalanceStore()
	user := primitive.NewObjectID()
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	set, err := store.SetBalance(ctx, user, models.LeaveTypeSick, 6, "Sick Leave", at)
	require.NoError(t, err)

	ensured, err := store.EnsureBalance(ctx, user, models.LeaveTypeSick, "ignored", at.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, set.ID, ensured.ID)
	assert.Equal(t, 6.0, ensured.Balance)
	assert.Equal(t, "Sick Leave", ensured.Description)

	_, err = store.EnsureBalance(ctx, primitive.NewObjectID(), models.LeaveTypeSick, "Sick Leave", at)
	require.NoError(t, err)

	n, err := store.DeleteByUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	left, err := store.FindByUser(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestUserDirectory_UpdateRoleComparesCurrentRole(t *testing.T) {
	ctx := context.Background()
	u := models.User{ID: primitive.NewObjectID(), Role: models.RoleEmployee}
	dir := NewUserDirectory(u)

	ok, err := dir.UpdateRole(ctx, u.ID, models.RoleManager, models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dir.UpdateRole(ctx, u.ID, models.RoleEmployee, models.RoleManager)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := dir.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, got.Role)
}
