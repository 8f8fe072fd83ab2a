package application

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerce-platform/order-processor/internal/config"
	"github.com/commerce-platform/order-processor/internal/domain"
	apperrors "github.com/commerce-platform/order-processor/pkg/errors"
	"github.com/commerce-platform/order-processor/pkg/metrics"
)

func newTestOrderService(cfg config.AppConfig, initialStock map[string]int, buf *bytes.Buffer) (*OrderService, *InventoryService, *metrics.Metrics) {
	logger := newTestLogger(buf)
	m := newTestMetrics()
	inventory := NewInventoryService(initialStock, logger, m)
	pricing := NewPricingService(cfg)
	return NewOrderService(cfg, logger, inventory, pricing, m), inventory, m
}

func TestProcessOrderValidation(t *testing.T) {
	tests := []struct {
		name          string
		order         *domain.Order
		maxOrderItems int
		expectedMsg   string
	}{
		{
			name: "Empty order ID",
			order: &domain.Order{
				OrderID:      "",
				CustomerName: "Alice",
				Items:        []domain.OrderItem{{SKU: "SKU-100", Quantity: 1, UnitPrice: 9.99}},
			},
			maxOrderItems: 100,
			expectedMsg:   "Order ID is required",
		},
		{
			name: "Empty customer name",
			order: &domain.Order{
				OrderID:      "ORD-001",
				CustomerName: "",
				Items:        []domain.OrderItem{{SKU: "SKU-100", Quantity: 1, UnitPrice: 9.99}},
			},
			maxOrderItems: 100,
			expectedMsg:   "Customer name is required",
		},
		{
			name: "Empty item list",
			order: &domain.Order{
				OrderID:      "ORD-001",
				CustomerName: "Alice",
				Items:        nil,
			},
			maxOrderItems: 100,
			expectedMsg:   "Order must have at least one item",
		},
		{
			name: "Too many items names the configured maximum",
			order: &domain.Order{
				OrderID:      "ORD-001",
				CustomerName: "Alice",
				Items: []domain.OrderItem{
					{SKU: "SKU-100", Quantity: 1, UnitPrice: 9.99},
					{SKU: "SKU-101", Quantity: 1, UnitPrice: 9.99},
					{SKU: "SKU-102", Quantity: 1, UnitPrice: 9.99},
				},
			},
			maxOrderItems: 2,
			expectedMsg:   "Order exceeds max items (2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig()
			cfg.Features.MaxOrderItems = tt.maxOrderItems

			var buf bytes.Buffer
			service, inventory, m := newTestOrderService(cfg, map[string]int{"SKU-100": 10}, &buf)

			result, err := service.ProcessOrder(context.Background(), tt.order, createTestCustomer(domain.TierGold))

			require.Error(t, err)
			assert.Empty(t, result)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.expectedMsg, err.Error())

			// Validation failure performs no inventory mutation and no logging
			assert.Equal(t, 10, inventory.GetStock("SKU-100"))
			assert.Empty(t, buf.String())

			assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures))
		})
	}
}

func TestProcessOrderEndToEnd(t *testing.T) {
	// Below the discount threshold: qty 2 @ 19.99 + qty 1 @ 49.99 = 89.97,
	// tax 7.1976, points floor(899.7) = 899, final 97.1676.
	var buf bytes.Buffer
	service, inventory, m := newTestOrderService(createTestConfig(), map[string]int{
		"SKU-100": 10,
		"SKU-101": 5,
	}, &buf)

	order := createTestOrder(
		domain.OrderItem{SKU: "SKU-100", Name: "Widget", Quantity: 2, UnitPrice: 19.99},
		domain.OrderItem{SKU: "SKU-101", Name: "Gadget", Quantity: 1, UnitPrice: 49.99},
	)

	result, err := service.ProcessOrder(context.Background(), order, createTestCustomer(domain.TierGold))

	require.NoError(t, err)
	assert.Equal(t, "Processed - Subtotal: $89.97, Tax: $7.20, Discount: $0.00, Points: 899, Final: $97.17", result)

	assert.Equal(t, 8, inventory.GetStock("SKU-100"))
	assert.Equal(t, 4, inventory.GetStock("SKU-101"))

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] Order validated orderId=ORD-001")
	assert.Contains(t, out, "[INFO] "+result)
	assert.NotContains(t, out, "[WARN]", "no shortfall expected")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersProcessed.WithLabelValues("test", "success")))
}

func TestProcessOrderDiscountApplied(t *testing.T) {
	// Above the threshold: 3 @ 50.00 = 150.00, Gold 10% discount.
	var buf bytes.Buffer
	service, _, _ := newTestOrderService(createTestConfig(), map[string]int{"SKU-100": 10}, &buf)

	order := createTestOrder(domain.OrderItem{SKU: "SKU-100", Name: "Widget", Quantity: 3, UnitPrice: 50.0})

	result, err := service.ProcessOrder(context.Background(), order, createTestCustomer(domain.TierGold))

	require.NoError(t, err)
	assert.Equal(t, "Processed - Subtotal: $150.00, Tax: $12.00, Discount: $15.00, Points: 1500, Final: $147.00", result)
}

func TestProcessOrderLoyaltyPointsDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.Features.EnableLoyaltyPoints = false

	var buf bytes.Buffer
	service, _, _ := newTestOrderService(cfg, map[string]int{"SKU-100": 10}, &buf)

	order := createTestOrder(domain.OrderItem{SKU: "SKU-100", Quantity: 1, UnitPrice: 10.0})

	result, err := service.ProcessOrder(context.Background(), order, createTestCustomer(domain.TierBronze))

	require.NoError(t, err)
	assert.Contains(t, result, "Points: 0,")
}

func TestProcessOrderStockShortfall(t *testing.T) {
	// Requesting more than available warns, then still reserves down to zero.
	var buf bytes.Buffer
	service, inventory, m := newTestOrderService(createTestConfig(), map[string]int{"SKU-102": 2}, &buf)

	order := createTestOrder(domain.OrderItem{SKU: "SKU-102", Name: "Gizmo", Quantity: 3, UnitPrice: 29.99})

	_, err := service.ProcessOrder(context.Background(), order, createTestCustomer(domain.TierGold))

	require.NoError(t, err)
	assert.Equal(t, 0, inventory.GetStock("SKU-102"))

	out := buf.String()
	assert.Contains(t, out, "[WARN] Low stock sku=SKU-102 available=2 requested=3")

	// The warning precedes the reservation debug line
	warnIdx := bytes.Index(buf.Bytes(), []byte("[WARN]"))
	debugIdx := bytes.Index(buf.Bytes(), []byte("[DEBUG] Reserved stock"))
	assert.Less(t, warnIdx, debugIdx)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StockShortfalls.WithLabelValues("test", "SKU-102")))
}

func TestProcessOrderCumulativeDepletion(t *testing.T) {
	// Two orders against the same inventory instance deplete cumulatively;
	// the first order's reservations are not rolled back.
	var buf bytes.Buffer
	service, inventory, _ := newTestOrderService(createTestConfig(), map[string]int{"SKU-100": 10}, &buf)

	customer := createTestCustomer(domain.TierGold)
	first := createTestOrder(domain.OrderItem{SKU: "SKU-100", Quantity: 6, UnitPrice: 19.99})

	_, err := service.ProcessOrder(context.Background(), first, customer)
	require.NoError(t, err)
	assert.Equal(t, 4, inventory.GetStock("SKU-100"))

	second := &domain.Order{
		OrderID:      "ORD-002",
		CustomerName: "Bob",
		Items:        []domain.OrderItem{{SKU: "SKU-100", Quantity: 6, UnitPrice: 19.99}},
	}

	_, err = service.ProcessOrder(context.Background(), second, customer)
	require.NoError(t, err)
	assert.Equal(t, 0, inventory.GetStock("SKU-100"), "second reservation subtracts from already-reduced stock")
	assert.Contains(t, buf.String(), "[WARN] Low stock sku=SKU-100 available=4 requested=6")
}
