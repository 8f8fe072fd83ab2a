package application

import (
	"context"
	"fmt"

	"github.com/commerce-platform/order-processor/internal/config"
	"github.com/commerce-platform/order-processor/internal/domain"
	"github.com/commerce-platform/order-processor/pkg/errors"
	"github.com/commerce-platform/order-processor/pkg/logging"
	"github.com/commerce-platform/order-processor/pkg/metrics"
)

// OrderService orchestrates the order pipeline: validation, inventory
// reservation, pricing, loyalty points, result assembly.
type OrderService struct {
	config    config.AppConfig
	logger    *logging.Logger
	inventory *InventoryService
	pricing   *PricingService
	metrics   *metrics.Metrics
}

// NewOrderService creates an OrderService
func NewOrderService(
	cfg config.AppConfig,
	logger *logging.Logger,
	inventory *InventoryService,
	pricing *PricingService,
	m *metrics.Metrics,
) *OrderService {
	return &OrderService{
		config:    cfg,
		logger:    logger,
		inventory: inventory,
		pricing:   pricing,
		metrics:   m,
	}
}

// ProcessOrder runs an order through the pipeline and returns the formatted
// result, or a ValidationError when the order is rejected up front. A
// validation failure leaves inventory untouched; once the inventory pass
// starts, its reservations and warnings stand regardless of later stages.
func (s *OrderService) ProcessOrder(ctx context.Context, order *domain.Order, customer *domain.Customer) (string, error) {
	if err := s.validateOrder(order); err != nil {
		s.metrics.RecordOrderRejected()
		return "", err
	}
	s.logger.Debug("Order validated", "orderId", order.OrderID)

	for _, item := range order.Items {
		stock := s.inventory.GetStock(item.SKU)
		if stock < item.Quantity {
			s.logger.Warn("Low stock",
				"sku", item.SKU,
				"available", stock,
				"requested", item.Quantity,
			)
			s.metrics.RecordStockShortfall(item.SKU)
		}
		s.inventory.Reserve(item.SKU, item.Quantity)
	}

	// Tax and discount both derive from the same subtotal, not from each
	// other; tax is never computed on the discounted amount.
	subtotal := s.pricing.CalculateSubtotal(order)
	tax := s.pricing.CalculateTax(subtotal)
	discount := s.pricing.CalculateDiscount(order, customer)

	loyaltyPoints := 0
	if s.config.Features.EnableLoyaltyPoints {
		loyaltyPoints = int(subtotal * 10)
	}
	finalTotal := subtotal + tax - discount

	result := fmt.Sprintf(
		"Processed - Subtotal: $%.2f, Tax: $%.2f, Discount: $%.2f, Points: %d, Final: $%.2f",
		subtotal, tax, discount, loyaltyPoints, finalTotal,
	)
	s.logger.Info(result)
	s.metrics.RecordOrderProcessed()

	return result, nil
}

func (s *OrderService) validateOrder(order *domain.Order) error {
	if order.OrderID == "" {
		return errors.ErrValidation("Order ID is required")
	}
	if order.CustomerName == "" {
		return errors.ErrValidation("Customer name is required")
	}
	if len(order.Items) == 0 {
		return errors.ErrValidation("Order must have at least one item")
	}
	if len(order.Items) > s.config.Features.MaxOrderItems {
		return errors.ErrValidationf("Order exceeds max items (%d)", s.config.Features.MaxOrderItems)
	}
	return nil
}
