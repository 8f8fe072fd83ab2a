package application

import (
	"github.com/commerce-platform/order-processor/internal/config"
	"github.com/commerce-platform/order-processor/internal/domain"
)

// Regional tax rates. Any region other than us-west-2 falls back to the
// default rate; there is no unknown-region error.
const (
	regionUSWest2  = "us-west-2"
	taxRateUSWest2 = 0.08
	taxRateDefault = 0.10
)

// PricingService computes subtotal, tax and discount from an immutable
// configuration snapshot. All methods are pure.
type PricingService struct {
	config config.AppConfig
}

// NewPricingService creates a PricingService
func NewPricingService(cfg config.AppConfig) *PricingService {
	return &PricingService{config: cfg}
}

// CalculateSubtotal returns the order subtotal in exact double precision
func (s *PricingService) CalculateSubtotal(order *domain.Order) float64 {
	return order.Subtotal()
}

// CalculateTax returns the tax on the full subtotal for the configured region
func (s *PricingService) CalculateTax(subtotal float64) float64 {
	taxRate := taxRateDefault
	if s.config.Region == regionUSWest2 {
		taxRate = taxRateUSWest2
	}
	return subtotal * taxRate
}

// CalculateDiscount returns the loyalty discount for the order: zero when
// discounts are disabled or the subtotal is below the configured threshold,
// otherwise subtotal times the customer's tier rate.
func (s *PricingService) CalculateDiscount(order *domain.Order, customer *domain.Customer) float64 {
	if !s.config.Features.EnableDiscounts {
		return 0.0
	}

	subtotal := s.CalculateSubtotal(order)
	if subtotal < s.config.Features.DiscountThreshold {
		return 0.0
	}

	return subtotal * customer.LoyaltyTier.DiscountRate()
}
