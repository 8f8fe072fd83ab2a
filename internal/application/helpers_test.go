package application

import (
	"bytes"

	"github.com/commerce-platform/order-processor/internal/config"
	"github.com/commerce-platform/order-processor/internal/domain"
	"github.com/commerce-platform/order-processor/pkg/logging"
	"github.com/commerce-platform/order-processor/pkg/metrics"
)

// Test fixtures

func newTestLogger(buf *bytes.Buffer) *logging.Logger {
	return logging.New(&logging.Config{
		Level:       logging.LevelDebug,
		ServiceName: "test",
		Output:      buf,
	})
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(metrics.DefaultConfig("test"))
}

func createTestConfig() config.AppConfig {
	return config.AppConfig{
		Environment: "Development",
		Region:      "us-west-2",
		Features: config.FeatureFlags{
			EnableDiscounts:     true,
			EnableLoyaltyPoints: true,
			MaxOrderItems:       100,
			DiscountThreshold:   100.0,
		},
	}
}

func createTestCustomer(tier domain.LoyaltyTier) *domain.Customer {
	return &domain.Customer{
		ID:            "CUST-001",
		Name:          "Alice Johnson",
		Email:         "alice@example.com",
		LoyaltyTier:   tier,
		LoyaltyPoints: 5420,
		Address: domain.Address{
			Street:  "123 Main St",
			City:    "Seattle",
			State:   "WA",
			ZipCode: "98101",
			Country: "US",
		},
	}
}

func createTestOrder(items ...domain.OrderItem) *domain.Order {
	return &domain.Order{
		OrderID:      "ORD-001",
		CustomerName: "Alice",
		Items:        items,
	}
}
