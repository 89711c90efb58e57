package services

import (
	"context"
	"errors"
	"testing"

	"golang-coffee-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoyaltyRepo struct {
	cards map[uuid.UUID]*models.LoyaltyCard
}

func newStubLoyaltyRepo() *stubLoyaltyRepo {
	return &stubLoyaltyRepo{cards: make(map[uuid.UUID]*models.LoyaltyCard)}
}

func (r *stubLoyaltyRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.LoyaltyCard, error) {
	card, ok := r.cards[userID]
	if !ok {
		return nil, errors.New("card not found")
	}
	return card, nil
}

func (r *stubLoyaltyRepo) Create(ctx context.Context, card *models.LoyaltyCard) error {
	r.cards[card.UserID] = card
	return nil
}

func (r *stubLoyaltyRepo) Update(ctx context.Context, card *models.LoyaltyCard) error {
	r.cards[card.UserID] = card
	return nil
}

func TestAwardStampCreatesCardAndIncrements(t *testing.T) {
	svc := NewLoyaltyService(newStubLoyaltyRepo(), 10)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, svc.AwardStamp(ctx, userID))
	require.NoError(t, svc.AwardStamp(ctx, userID))

	progress, err := svc.GetProgress(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Stamps)
	assert.Equal(t, 10, progress.RewardGoal)
	assert.Equal(t, 8, progress.StampsToGoal)
	assert.False(t, progress.RewardEarned)
	assert.Equal(t, "Regular", progress.Tier)
}

func TestAwardStampHoldsAtGoal(t *testing.T) {
	svc := NewLoyaltyService(newStubLoyaltyRepo(), 10)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 13; i++ {
		require.NoError(t, svc.AwardStamp(ctx, userID))
	}

	progress, err := svc.GetProgress(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 10, progress.Stamps)
	assert.True(t, progress.RewardEarned)
}

func TestClaimRewardBeforeGoal(t *testing.T) {
	svc := NewLoyaltyService(newStubLoyaltyRepo(), 10)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, svc.AwardStamp(ctx, userID))

	err := svc.ClaimReward(ctx, userID.String())
	assert.EqualError(t, err, "reward goal not reached yet")
}

func TestClaimRewardResetsCardAndUpgradesTier(t *testing.T) {
	svc := NewLoyaltyService(newStubLoyaltyRepo(), 10)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 10; i++ {
		require.NoError(t, svc.AwardStamp(ctx, userID))
	}

	require.NoError(t, svc.ClaimReward(ctx, userID.String()))

	progress, err := svc.GetProgress(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Stamps)
	assert.False(t, progress.RewardEarned)
	assert.Equal(t, "V.I.P.", progress.Tier)

	// The next card accumulates from zero again.
	require.NoError(t, svc.AwardStamp(ctx, userID))
	progress, err = svc.GetProgress(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Stamps)
	assert.Equal(t, "V.I.P.", progress.Tier)
}
