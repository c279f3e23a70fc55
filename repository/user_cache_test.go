package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"leave-tracking/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type countingDirectory struct {
	users map[primitive.ObjectID]models.User
	calls int
	err   error
}

func (d *countingDirectory) GetUser(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	u, ok := d.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func TestCachedUserDirectory(t *testing.T) {
	ctx := context.Background()
	ttl := 10 * time.Minute
	user := models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ravi",
		Email: "ravi@example.com",
		Role:  models.RoleManager,
	}
	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	key := UserCacheKey(user.ID)

	t.Run("cache hit skips the directory", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &countingDirectory{}
		cache := NewCachedUserDirectory(next, db, ttl, zap.NewNop())

		mock.ExpectGet(key).SetVal(string(encoded))

		got, err := cache.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ravi", got.Name)
		assert.Equal(t, 0, next.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &countingDirectory{users: map[primitive.ObjectID]models.User{user.ID: user}}
		cache := NewCachedUserDirectory(next, db, ttl, zap.NewNop())

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, string(encoded), ttl).SetVal("OK")

		got, err := cache.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		assert.Equal(t, 1, next.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown users are not cached", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &countingDirectory{}
		cache := NewCachedUserDirectory(next, db, ttl, zap.NewNop())

		missing := primitive.NewObjectID()
		mock.ExpectGet(UserCacheKey(missing)).RedisNil()

		got, err := cache.GetUser(ctx, missing)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis outage falls through to the directory", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &countingDirectory{users: map[primitive.ObjectID]models.User{user.ID: user}}
		cache := NewCachedUserDirectory(next, db, ttl, zap.NewNop())

		mock.ExpectGet(key).SetErr(errors.New("connection refused"))
		mock.ExpectSet(key, string(encoded), ttl).SetErr(errors.New("connection refused"))

		got, err := cache.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, 1, next.calls)
	})

	t.Run("directory errors propagate", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		next := &countingDirectory{err: errors.New("mongo down")}
		cache := NewCachedUserDirectory(next, db, ttl, zap.NewNop())

		mock.ExpectGet(key).RedisNil()

		_, err := cache.GetUser(ctx, user.ID)
		assert.EqualError(t, err, "mongo down")
	})

	t.Run("invalidate deletes the key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := NewCachedUserDirectory(&countingDirectory{}, db, ttl, zap.NewNop())

		mock.ExpectDel(key).SetVal(1)

		assert.NoError(t, cache.Invalidate(ctx, user.ID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
