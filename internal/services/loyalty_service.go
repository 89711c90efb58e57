package services

import (
	"context"
	"errors"
	"time"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/repositories"

	"github.com/google/uuid"
)

// LoyaltyService manages the stamp card: one stamp per placed order, a
// free drink at the reward goal.
type LoyaltyService struct {
	loyaltyRepo repositories.LoyaltyRepository
	rewardGoal  int
}

func NewLoyaltyService(loyaltyRepo repositories.LoyaltyRepository, rewardGoal int) *LoyaltyService {
	return &LoyaltyService{
		loyaltyRepo: loyaltyRepo,
		rewardGoal:  rewardGoal,
	}
}

type LoyaltyProgressResponse struct {
	Stamps       int    `json:"stamps"`
	RewardGoal   int    `json:"reward_goal"`
	StampsToGoal int    `json:"stamps_to_goal"`
	RewardEarned bool   `json:"reward_earned"`
	Tier         string `json:"tier"`
}

func (s *LoyaltyService) getOrCreateCard(ctx context.Context, userID uuid.UUID) (*models.LoyaltyCard, error) {
	card, err := s.loyaltyRepo.GetByUserID(ctx, userID)
	if err == nil {
		return card, nil
	}

	card = &models.LoyaltyCard{
		UserID:     userID,
		Stamps:     0,
		RewardGoal: s.rewardGoal,
		Tier:       "Regular",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := s.loyaltyRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// AwardStamp adds one stamp for a placed order. The count holds at the
// reward goal until the free drink is claimed.
func (s *LoyaltyService) AwardStamp(ctx context.Context, userID uuid.UUID) error {
	card, err := s.getOrCreateCard(ctx, userID)
	if err != nil {
		return err
	}

	if card.Stamps < card.RewardGoal {
		card.Stamps++
	}
	card.UpdatedAt = time.Now()

	return s.loyaltyRepo.Update(ctx, card)
}

// GetProgress returns the stamp-card state for the loyalty screen.
func (s *LoyaltyService) GetProgress(ctx context.Context, userID string) (*LoyaltyProgressResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	card, err := s.getOrCreateCard(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return &LoyaltyProgressResponse{
		Stamps:       card.Stamps,
		RewardGoal:   card.RewardGoal,
		StampsToGoal: card.RewardGoal - card.Stamps,
		RewardEarned: card.Stamps >= card.RewardGoal,
		Tier:         card.Tier,
	}, nil
}

// ClaimReward redeems a full card for a free drink and starts a new card.
// Claiming a reward upgrades the member to V.I.P.
func (s *LoyaltyService) ClaimReward(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	card, err := s.getOrCreateCard(ctx, userUUID)
	if err != nil {
		return err
	}

	if card.Stamps < card.RewardGoal {
		return errors.New("reward goal not reached yet")
	}

	card.Stamps = 0
	card.Tier = "V.I.P."
	card.UpdatedAt = time.Now()
	return s.loyaltyRepo.Update(ctx, card)
}
