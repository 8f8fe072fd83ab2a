package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/commerce-platform/order-processor/internal/application"
	"github.com/commerce-platform/order-processor/internal/config"
	"github.com/commerce-platform/order-processor/internal/domain"
	"github.com/commerce-platform/order-processor/internal/infrastructure/datastore"
	apperrors "github.com/commerce-platform/order-processor/pkg/errors"
	"github.com/commerce-platform/order-processor/pkg/logging"
	"github.com/commerce-platform/order-processor/pkg/metrics"
)

const serviceName = "order-processor"

func main() {
	logger := logging.New(logging.DefaultConfig(serviceName))
	logger.SetDefault()

	cfg := config.Default()
	m := metrics.New(metrics.DefaultConfig(serviceName))

	requestLogger := logger.WithRequestID(uuid.New().String())

	inventory := application.NewInventoryService(map[string]int{
		"SKU-100": 10,
		"SKU-101": 5,
		"SKU-102": 2,
	}, requestLogger, m)
	pricing := application.NewPricingService(cfg)
	orders := application.NewOrderService(cfg, requestLogger, inventory, pricing, m)

	customer := &domain.Customer{
		ID:            "CUST-001",
		Name:          "Alice Johnson",
		Email:         "alice@example.com",
		LoyaltyTier:   domain.TierGold,
		LoyaltyPoints: 5420,
		Address: domain.Address{
			Street:  "123 Main St",
			City:    "Seattle",
			State:   "WA",
			ZipCode: "98101",
			Country: "US",
		},
	}

	order1 := &domain.Order{
		OrderID:      "ORD-001",
		CustomerName: "Alice",
		Items: []domain.OrderItem{
			{SKU: "SKU-100", Name: "Widget", Quantity: 2, UnitPrice: 19.99},
			{SKU: "SKU-101", Name: "Gadget", Quantity: 1, UnitPrice: 49.99},
		},
	}

	order2 := &domain.Order{
		OrderID:      "ORD-002",
		CustomerName: "Bob",
		Items: []domain.OrderItem{
			{SKU: "SKU-100", Name: "Widget", Quantity: 5, UnitPrice: 19.99},
			{SKU: "SKU-102", Name: "Gizmo", Quantity: 3, UnitPrice: 29.99},
		},
	}

	ctx := context.Background()

	fmt.Println("Processing orders...")
	fmt.Println()

	for _, order := range []*domain.Order{order1, order2} {
		result, err := orders.ProcessOrder(ctx, order, customer)
		if err != nil {
			fmt.Printf("Order %s failed: %v\n\n", order.OrderID, err)
			continue
		}
		fmt.Printf("Order %s: %s\n\n", order.OrderID, result)
	}

	badOrder := &domain.Order{
		OrderID:      "ORD-003",
		CustomerName: "",
		Items:        nil,
	}

	if _, err := orders.ProcessOrder(ctx, badOrder, customer); err != nil {
		fmt.Printf("Validation failed: %v\n\n", err)
	}

	fmt.Println("Testing chained errors...")
	store := datastore.NewOrderStore(requestLogger)
	if _, err := store.QueryOrders(ctx); err != nil {
		fmt.Printf("Caught: %T - %v\n", err, err)
		if cause := apperrors.Cause(err); cause != nil {
			fmt.Printf("  Caused by: %v\n", cause)
		}
	}

	fmt.Println()
	fmt.Println("Done!")
}
