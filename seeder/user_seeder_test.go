package seeder

import (
	"context"
	"testing"

	"leave-tracking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type memoryUsers struct {
	byEmail map[string]*models.User
	creates int
}

func (m *memoryUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	m.creates++
	m.byEmail[user.Email] = user
	return nil
}

func TestSeedUsers(t *testing.T) {
	users := &memoryUsers{byEmail: map[string]*models.User{}}
	require.NoError(t, SeedUsers(context.Background(), users, zap.NewNop()))

	manager := users.byEmail["manager@leave.local"]
	require.NotNil(t, manager)
	assert.Equal(t, models.RoleManager, manager.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(manager.Password), []byte(DefaultPassword)))

	employee := users.byEmail["employee01@leave.local"]
	require.NotNil(t, employee)
	assert.Equal(t, manager.ID, employee.EffectiveManagerID())

	loner := users.byEmail["unassigned@leave.local"]
	require.NotNil(t, loner)
	assert.Equal(t, loner.ID, loner.EffectiveManagerID())

	created := users.creates
	require.NoError(t, SeedUsers(context.Background(), users, zap.NewNop()))
	assert.Equal(t, created, users.creates)
}
