package services

import (
	"context"
	"errors"
	"testing"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubProductRepo serves a fixed menu keyed by product ID.
type stubProductRepo struct {
	products map[int]models.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: map[int]models.Product{
		1: {ProductID: 1, Name: "Dalgona Crunch", Price: 130, IsAvailable: true},
		2: {ProductID: 2, Name: "Hallyu Cold Brew", Price: 100, IsAvailable: true},
		4: {ProductID: 4, Name: "Busan Dark Mocha", Price: 95, IsAvailable: false},
	}}
}

func (r *stubProductRepo) Create(ctx context.Context, product *models.Product) error { return nil }

func (r *stubProductRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return nil, errors.New("not implemented")
}

func (r *stubProductRepo) GetByProductID(ctx context.Context, productID int) (*models.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, errors.New("product not found")
	}
	return &product, nil
}

func (r *stubProductRepo) GetAll(ctx context.Context, category string, limit, offset int) ([]models.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) GetFeatured(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Search(ctx context.Context, query string, limit, offset int) ([]models.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Update(ctx context.Context, product *models.Product) error { return nil }

func (r *stubProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

func newTestCartService() *CartService {
	return NewCartService(
		NewMemorySessionStore(),
		newStubProductRepo(),
		pricing.NewEngine(pricing.DefaultDeliveryFee),
		pricing.DefaultCatalog(),
	)
}

func TestCartServiceAddAndBreakdown(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)
	resp, err := svc.AddItem(ctx, userID, 2)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 360.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 50.0, resp.Breakdown.FulfillmentFee)
	assert.Equal(t, 410.0, resp.Breakdown.Total)
}

func TestCartServiceAddUnknownProduct(t *testing.T) {
	svc := newTestCartService()

	_, err := svc.AddItem(context.Background(), "user-1", 999)
	assert.EqualError(t, err, "product not found")
}

func TestCartServiceAddUnavailableProduct(t *testing.T) {
	svc := newTestCartService()

	_, err := svc.AddItem(context.Background(), "user-1", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestCartServiceUpdateQuantityRemovesAtZero(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(ctx, userID, 1, -1)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Breakdown.Subtotal)

	// A further decrement on the vanished item changes nothing.
	resp, err = svc.UpdateQuantity(ctx, userID, 1, -1)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCartServiceSessionPersistsAcrossCalls(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)

	resp, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Dalgona Crunch", resp.Items[0].Name)

	// Another user's cart is independent.
	other, err := svc.GetCart(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartServiceVoucherLifecycle(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)

	resp, err := svc.ApplyVoucher(ctx, userID, "kopi100")
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountVoucher, resp.Discount.Kind)
	assert.Equal(t, "KOPI100", resp.Discount.VoucherCode)
	assert.Equal(t, 100.0, resp.Breakdown.DiscountAmount)

	resp, err = svc.RemoveVoucher(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountNone, resp.Discount.Kind)
	assert.Equal(t, 0.0, resp.Breakdown.DiscountAmount)
}

func TestCartServiceInvalidVoucherKeepsState(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)
	_, err = svc.ApplyVoucher(ctx, userID, "KOPI100")
	require.NoError(t, err)

	_, err = svc.ApplyVoucher(ctx, userID, "NOPE")
	assert.ErrorIs(t, err, pricing.ErrInvalidVoucher)

	resp, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "KOPI100", resp.Discount.VoucherCode)
}

func TestCartServiceSeniorVoucherConflict(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)

	resp, err := svc.SetSeniorDiscount(ctx, userID, true)
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountSenior, resp.Discount.Kind)

	_, err = svc.ApplyVoucher(ctx, userID, "KOPI100")
	assert.ErrorIs(t, err, pricing.ErrConflictingDiscount)

	resp, err = svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountSenior, resp.Discount.Kind)
}

func TestCartServiceSeniorReplacesVoucher(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)
	_, err = svc.ApplyVoucher(ctx, userID, "FREEDEL")
	require.NoError(t, err)

	resp, err := svc.SetSeniorDiscount(ctx, userID, true)
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountSenior, resp.Discount.Kind)
	assert.Empty(t, resp.Discount.VoucherCode)

	resp, err = svc.SetSeniorDiscount(ctx, userID, false)
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountNone, resp.Discount.Kind)
}

func TestCartServiceDisableSeniorLeavesVoucherAlone(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)
	_, err = svc.ApplyVoucher(ctx, userID, "KOPI20")
	require.NoError(t, err)

	resp, err := svc.SetSeniorDiscount(ctx, userID, false)
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountVoucher, resp.Discount.Kind)
	assert.Equal(t, "KOPI20", resp.Discount.VoucherCode)
}

func TestCartServiceClearKeepsDiscountAndMode(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)
	_, err = svc.SetFulfillmentMode(ctx, userID, pricing.ModePickup)
	require.NoError(t, err)
	_, err = svc.ApplyVoucher(ctx, userID, "KOPI100")
	require.NoError(t, err)

	resp, err := svc.ClearCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, pricing.ModePickup, resp.Mode)
	assert.Equal(t, "KOPI100", resp.Discount.VoucherCode)
	// Discount clamps to the empty subtotal.
	assert.Equal(t, 0.0, resp.Breakdown.DiscountAmount)
	assert.Equal(t, 0.0, resp.Breakdown.Total)
}

func TestCartServiceModeSwitchKeepsDiscount(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 2)
	require.NoError(t, err)
	_, err = svc.SetSeniorDiscount(ctx, userID, true)
	require.NoError(t, err)

	resp, err := svc.SetFulfillmentMode(ctx, userID, pricing.ModePickup)
	require.NoError(t, err)
	assert.Equal(t, pricing.DiscountSenior, resp.Discount.Kind)
	assert.Equal(t, 0.0, resp.Breakdown.FulfillmentFee)
	assert.Equal(t, 80.0, resp.Breakdown.Total)
}

func TestCartServiceResetAfterOrder(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	userID := "user-1"

	_, err := svc.AddItem(ctx, userID, 1)
	require.NoError(t, err)
	_, err = svc.ApplyVoucher(ctx, userID, "KOPI100")
	require.NoError(t, err)

	require.NoError(t, svc.ResetAfterOrder(ctx, userID))

	resp, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, pricing.DiscountNone, resp.Discount.Kind)
}
