package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/repositories"
	"golang-coffee-backend/pkg/auth"
	"golang-coffee-backend/pkg/cache"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenCache is the slice of the Redis cache the auth flow needs for
// storing refresh tokens. *cache.RedisCache satisfies it; tests use an
// in-memory implementation.
type TokenCache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

var _ TokenCache = (*cache.RedisCache)(nil)

type AuthService struct {
	userRepo   repositories.UserRepository
	jwtManager *auth.JWTManager
	cache      TokenCache
}

func NewAuthService(userRepo repositories.UserRepository, jwtManager *auth.JWTManager, cache TokenCache) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		cache:      cache,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Contact  string `json:"contact"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	User         models.User `json:"user"`
}

func (s *AuthService) storeRefreshToken(ctx context.Context, userID, refreshToken string) error {
	key := fmt.Sprintf("refresh_token:%s", userID)
	return s.cache.Set(ctx, key, refreshToken, time.Hour*24*30)
}

func (s *AuthService) invalidateRefreshToken(ctx context.Context, userID string) error {
	key := fmt.Sprintf("refresh_token:%s", userID)
	return s.cache.Delete(ctx, key)
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	existingUser, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Contact:      req.Contact,
		PasswordHash: string(hashedPassword),
		Status:       "active",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if user.Status != "active" {
		return nil, errors.New("account is not active")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*AuthResponse, error) {
	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID.String(), user.Name, user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, user.ID.String(), tokenPair.RefreshToken); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		User:         *user,
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The token must
// match the copy stored at login; logout deletes that copy, so a logged-out
// token is rejected even though its signature is still valid.
func (s *AuthService) Refresh(ctx context.Context, req *RefreshRequest) (string, error) {
	claims, err := s.jwtManager.ValidateToken(req.RefreshToken)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}
	if claims.TokenType != auth.RefreshToken {
		return "", errors.New("invalid token type: expected refresh token")
	}

	var stored string
	key := fmt.Sprintf("refresh_token:%s", claims.UserID)
	if err := s.cache.Get(ctx, key, &stored); err != nil || stored != req.RefreshToken {
		return "", errors.New("refresh token is revoked or expired")
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}
	if user.Status != "active" {
		return "", errors.New("account is not active")
	}

	return s.jwtManager.RefreshAccessToken(req.RefreshToken)
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.invalidateRefreshToken(ctx, userID)
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	return s.userRepo.GetByID(ctx, id)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Contact != "" {
		user.Contact = req.Contact
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
