package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryTokenCache mimics the Redis cache's JSON value semantics in memory.
type memoryTokenCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryTokenCache() *memoryTokenCache {
	return &memoryTokenCache{values: make(map[string][]byte)}
}

func (c *memoryTokenCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *memoryTokenCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.values[key]
	if !ok {
		return errors.New("key not found")
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryTokenCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

// stubUserRepo keeps users in memory, keyed by ID and email.
type stubUserRepo struct {
	byID map[uuid.UUID]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uuid.UUID]*models.User)}
}

func (r *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byID[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	r.byID[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func newTestAuthService() (*AuthService, *stubUserRepo) {
	userRepo := newStubUserRepo()
	jwtManager := auth.NewJWTManager("test-secret", 1, 30)
	return NewAuthService(userRepo, jwtManager, newMemoryTokenCache()), userRepo
}

func registerTestUser(t *testing.T, svc *AuthService) *AuthResponse {
	t.Helper()
	response, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Jun Park",
		Email:    "jun@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return response
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, _ := newTestAuthService()
	tokens := registerTestUser(t, svc)

	accessToken, err := svc.Refresh(context.Background(), &RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
}

func TestRefreshRejectedAfterLogout(t *testing.T) {
	svc, _ := newTestAuthService()
	tokens := registerTestUser(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, tokens.User.ID.String()))

	// The signature is still valid for 30 days, but the stored copy is gone.
	_, err := svc.Refresh(ctx, &RefreshRequest{RefreshToken: tokens.RefreshToken})
	assert.EqualError(t, err, "refresh token is revoked or expired")
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthService()
	tokens := registerTestUser(t, svc)

	_, err := svc.Refresh(context.Background(), &RefreshRequest{RefreshToken: tokens.AccessToken})
	assert.EqualError(t, err, "invalid token type: expected refresh token")
}

func TestRefreshRejectsForeignSignature(t *testing.T) {
	svc, _ := newTestAuthService()
	registerTestUser(t, svc)

	other := auth.NewJWTManager("other-secret", 1, 30)
	pair, err := other.GenerateTokenPair(uuid.NewString(), "Jun Park", "jun@example.com")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), &RefreshRequest{RefreshToken: pair.RefreshToken})
	assert.EqualError(t, err, "invalid refresh token")
}

func TestRefreshRotatedOnNewLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	first := registerTestUser(t, svc)
	ctx := context.Background()

	// A fresh login stores a new refresh token, invalidating the old one.
	second, err := svc.Login(ctx, &LoginRequest{Email: "jun@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, &RefreshRequest{RefreshToken: first.RefreshToken})
	assert.EqualError(t, err, "refresh token is revoked or expired")

	_, err = svc.Refresh(ctx, &RefreshRequest{RefreshToken: second.RefreshToken})
	assert.NoError(t, err)
}

func TestRefreshRejectsInactiveAccount(t *testing.T) {
	svc, userRepo := newTestAuthService()
	tokens := registerTestUser(t, svc)
	ctx := context.Background()

	user := userRepo.byID[tokens.User.ID]
	user.Status = "suspended"

	_, err := svc.Refresh(ctx, &RefreshRequest{RefreshToken: tokens.RefreshToken})
	assert.EqualError(t, err, "account is not active")
}
