package services

import (
	"context"
	"time"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/pricing"
	"golang-coffee-backend/internal/repositories"
)

// VoucherService owns the promo-code table. Vouchers are static business
// rules seeded at startup; the pricing engine works off an in-memory
// catalog snapshot so breakdown computation stays pure.
type VoucherService struct {
	voucherRepo repositories.VoucherRepository
}

func NewVoucherService(voucherRepo repositories.VoucherRepository) *VoucherService {
	return &VoucherService{voucherRepo: voucherRepo}
}

var referenceVouchers = []models.Voucher{
	{Code: "KOPI100", Description: "₱100.00 off your order", DiscountType: string(pricing.RuleFixedAmount), DiscountValue: 100.00, IsActive: true},
	{Code: "FREEDEL", Description: "₱50.00 off, covers the delivery fee", DiscountType: string(pricing.RuleFixedAmount), DiscountValue: 50.00, IsActive: true},
	{Code: "KOPI20", Description: "20% off your subtotal", DiscountType: string(pricing.RulePercentOfSubtotal), DiscountValue: 0.20, IsActive: true},
}

// Seed inserts the reference voucher set, skipping codes that already
// exist.
func (s *VoucherService) Seed(ctx context.Context) error {
	for _, voucher := range referenceVouchers {
		if _, err := s.voucherRepo.GetByCode(ctx, voucher.Code); err == nil {
			continue
		}
		voucher.CreatedAt = time.Now()
		if err := s.voucherRepo.Create(ctx, &voucher); err != nil {
			return err
		}
	}
	return nil
}

// Catalog loads the active vouchers into a pricing catalog. Falls back to
// the built-in reference set when the table is unreachable.
func (s *VoucherService) Catalog(ctx context.Context) pricing.Catalog {
	vouchers, err := s.voucherRepo.GetActive(ctx)
	if err != nil || len(vouchers) == 0 {
		return pricing.DefaultCatalog()
	}

	rules := make([]pricing.VoucherRule, 0, len(vouchers))
	for _, voucher := range vouchers {
		rules = append(rules, pricing.VoucherRule{
			Code:  voucher.Code,
			Type:  pricing.VoucherRuleType(voucher.DiscountType),
			Value: voucher.DiscountValue,
		})
	}
	return pricing.NewCatalog(rules...)
}

// ListActive returns the active vouchers for display.
func (s *VoucherService) ListActive(ctx context.Context) ([]models.Voucher, error) {
	return s.voucherRepo.GetActive(ctx)
}
