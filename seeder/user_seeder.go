package seeder

import (
	"context"
	"fmt"
	"time"

	"leave-tracking/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "Password123"

type UserWriter interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

var employeeNames = []string{
	"Budi Santoso", "Siti Rahayu", "Agus Pratama", "Dewi Lestari", "Joko Nugroho",
	"Rina Wulandari", "Andi Saputra", "Maya Handayani",
}

// SeedUsers creates an admin, a manager, employees reporting to that manager
// and one employee without a manager. Existing emails are skipped, so the
// seeder can be re-run.
func SeedUsers(ctx context.Context, users UserWriter, logger *zap.Logger) error {
	log := logger.Named("seeder")
	log.Info("seeding users")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	password := string(hashed)

	if _, err := ensureUser(ctx, users, log, &models.User{
		Name:     "Admin Utama",
		Email:    "admin@leave.local",
		Password: password,
		Role:     models.RoleAdmin,
		Position: "HR Administrator",
	}); err != nil {
		return err
	}

	manager, err := ensureUser(ctx, users, log, &models.User{
		Name:     "Hadi Setiawan",
		Email:    "manager@leave.local",
		Password: password,
		Role:     models.RoleManager,
		Position: "Engineering Manager",
	})
	if err != nil {
		return err
	}

	for i, name := range employeeNames {
		if _, err := ensureUser(ctx, users, log, &models.User{
			Name:      name,
			Email:     fmt.Sprintf("employee%02d@leave.local", i+1),
			Password:  password,
			Role:      models.RoleEmployee,
			Position:  "Software Engineer",
			ManagerID: &manager.ID,
		}); err != nil {
			return err
		}
	}

	if _, err := ensureUser(ctx, users, log, &models.User{
		Name:     "Kartika Dewi",
		Email:    "unassigned@leave.local",
		Password: password,
		Role:     models.RoleEmployee,
		Position: "Contractor",
	}); err != nil {
		return err
	}

	log.Info("seeding users finished")
	return nil
}

func ensureUser(ctx context.Context, users UserWriter, log *zap.Logger, user *models.User) (*models.User, error) {
	existing, err := users.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", user.Email, err)
	}
	if existing != nil {
		log.Info("user already exists, skipping", zap.String("email", user.Email))
		return existing, nil
	}

	user.ID = primitive.NewObjectID()
	if err := users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", user.Email, err)
	}
	log.Info("user created", zap.String("email", user.Email), zap.String("role", user.Role))
	return user, nil
}
