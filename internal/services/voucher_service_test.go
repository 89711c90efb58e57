package services

import (
	"context"
	"errors"
	"testing"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVoucherRepo struct {
	vouchers []models.Voucher
	failing  bool
}

func (r *stubVoucherRepo) Create(ctx context.Context, voucher *models.Voucher) error {
	r.vouchers = append(r.vouchers, *voucher)
	return nil
}

func (r *stubVoucherRepo) GetByCode(ctx context.Context, code string) (*models.Voucher, error) {
	for i := range r.vouchers {
		if r.vouchers[i].Code == code {
			return &r.vouchers[i], nil
		}
	}
	return nil, errors.New("voucher not found")
}

func (r *stubVoucherRepo) GetActive(ctx context.Context) ([]models.Voucher, error) {
	if r.failing {
		return nil, errors.New("table unreachable")
	}
	var active []models.Voucher
	for _, voucher := range r.vouchers {
		if voucher.IsActive {
			active = append(active, voucher)
		}
	}
	return active, nil
}

func (r *stubVoucherRepo) Update(ctx context.Context, voucher *models.Voucher) error {
	for i := range r.vouchers {
		if r.vouchers[i].Code == voucher.Code {
			r.vouchers[i] = *voucher
			return nil
		}
	}
	return errors.New("voucher not found")
}

func TestVoucherSeedIsIdempotent(t *testing.T) {
	repo := &stubVoucherRepo{}
	svc := NewVoucherService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.Len(t, repo.vouchers, 3)

	require.NoError(t, svc.Seed(ctx))
	assert.Len(t, repo.vouchers, 3)
}

func TestVoucherCatalogFromTable(t *testing.T) {
	repo := &stubVoucherRepo{}
	svc := NewVoucherService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	catalog := svc.Catalog(ctx)

	rule, ok := catalog.Lookup("kopi20")
	require.True(t, ok)
	assert.Equal(t, pricing.RulePercentOfSubtotal, rule.Type)
	assert.Equal(t, 0.20, rule.Value)

	rule, ok = catalog.Lookup("FREEDEL")
	require.True(t, ok)
	assert.Equal(t, pricing.RuleFixedAmount, rule.Type)
	assert.Equal(t, 50.0, rule.Value)
}

func TestVoucherCatalogExcludesInactive(t *testing.T) {
	repo := &stubVoucherRepo{}
	svc := NewVoucherService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	retired, err := repo.GetByCode(ctx, "KOPI100")
	require.NoError(t, err)
	retired.IsActive = false
	require.NoError(t, repo.Update(ctx, retired))

	catalog := svc.Catalog(ctx)
	_, ok := catalog.Lookup("KOPI100")
	assert.False(t, ok)
	_, ok = catalog.Lookup("KOPI20")
	assert.True(t, ok)
}

func TestVoucherCatalogFallsBackWhenUnreachable(t *testing.T) {
	svc := NewVoucherService(&stubVoucherRepo{failing: true})

	catalog := svc.Catalog(context.Background())

	rule, ok := catalog.Lookup("KOPI100")
	require.True(t, ok)
	assert.Equal(t, pricing.RuleFixedAmount, rule.Type)
	assert.Equal(t, 100.0, rule.Value)
}
