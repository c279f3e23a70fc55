package paseto

import (
	"fmt"
	"time"

	"leave-tracking/models"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Maker struct {
	paseto       *paseto.V2
	symmetricKey []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewPasetoMaker(symmetricKey []byte, ttl time.Duration) (*Maker, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("paseto key must be exactly 32 bytes, got %d", len(symmetricKey))
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Maker{
		paseto:       paseto.NewV2(),
		symmetricKey: symmetricKey,
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := m.now()

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: now.Add(m.ttl),
		NotBefore:  now,
		Subject:    user.ID.Hex(),
	}
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return m.paseto.Encrypt(m.symmetricKey, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(paseto.ValidAt(m.now())); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(token.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject format: %w", err)
	}

	return &models.Claims{
		UserID: userID,
		Email:  token.Get("email"),
		Role:   token.Get("role"),
	}, nil
}
