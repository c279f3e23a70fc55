package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"leave-tracking/models"
	"leave-tracking/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserDirectory struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewUserDirectory(users ...models.User) *UserDirectory {
	d := &UserDirectory{users: make(map[primitive.ObjectID]models.User)}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

var _ repository.UserDirectory = (*UserDirectory)(nil)

func (d *UserDirectory) Put(u models.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[u.ID] = u
}

func (d *UserDirectory) GetUser(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (d *UserDirectory) UpdateManager(_ context.Context, id primitive.ObjectID, managerID *primitive.ObjectID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[id]
	if !ok {
		return false, nil
	}
	if managerID != nil {
		m := *managerID
		managerID = &m
	}
	u.ManagerID = managerID
	u.UpdatedAt = time.Now().UTC()
	d.users[id] = u
	return true, nil
}

func (d *UserDirectory) UpdateRole(_ context.Context, id primitive.ObjectID, from, to string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[id]
	if !ok || u.Role != from {
		return false, nil
	}
	u.Role = to
	u.UpdatedAt = time.Now().UTC()
	d.users[id] = u
	return true, nil
}

// ListUsers honours only the "role" key of filter.
func (d *UserDirectory) ListUsers(_ context.Context, filter bson.M, page, limit int64) ([]models.User, int64, error) {
	d.mu.RLock()
	matched := []models.User{}
	for _, u := range d.users {
		if role, ok := filter["role"]; ok && u.Role != role {
			continue
		}
		matched = append(matched, u)
	}
	d.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= total {
		return []models.User{}, total, nil
	}
	return matched[start:min(start+limit, total)], total, nil
}
