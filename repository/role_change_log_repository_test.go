package repository

import (
	"context"
	"testing"
	"time"

	"leave-tracking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRoleChangeLogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ctx := context.Background()

	mt.Run("create assigns an id", func(mt *mtest.T) {
		repo := NewRoleChangeLogRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		entry := &models.RoleChangeLog{UserID: primitive.NewObjectID(), OldRole: models.RoleEmployee, NewRole: models.RoleManager}
		require.NoError(mt, repo.Create(ctx, entry))
		assert.False(mt, entry.ID.IsZero())
	})

	mt.Run("list filters by user and returns total", func(mt *mtest.T) {
		repo := NewRoleChangeLogRepository(mt.Coll)
		user := primitive.NewObjectID()
		entry := models.RoleChangeLog{
			ID:        primitive.NewObjectID(),
			UserID:    user,
			OldRole:   models.RoleEmployee,
			NewRole:   models.RoleManager,
			Reason:    "team lead",
			Timestamp: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "leave.role_change_logs", mtest.FirstBatch, toDoc(mt.T, entry)),
			mtest.CreateCursorResponse(0, "leave.role_change_logs", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)

		got, total, err := repo.List(ctx, &user, 1, 20)
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, "team lead", got[0].Reason)
		assert.Equal(mt, int64(1), total)
	})
}
