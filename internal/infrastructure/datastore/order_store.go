package datastore

import (
	"context"
	"fmt"

	"github.com/commerce-platform/order-processor/internal/domain"
	"github.com/commerce-platform/order-processor/pkg/errors"
	"github.com/commerce-platform/order-processor/pkg/logging"
	"github.com/commerce-platform/order-processor/pkg/resilience"
)

// Fixed demonstration values for the simulated backend failure
const (
	ordersTableError = "Failed to execute query on Orders table"
	dbHost           = "db-server"
	dbPort           = 5432
	refusedCode      = 10061
)

// OrderStore fronts the orders backend. The backend is unreachable by
// construction: every query fails with a DataAccessError whose cause is the
// underlying NetworkError, exercising one-level cause inspection.
type OrderStore struct {
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
}

// NewOrderStore creates an OrderStore
func NewOrderStore(logger *logging.Logger) *OrderStore {
	cfg := resilience.DefaultCircuitBreakerConfig("order-store")
	// Tripping disabled: the canned failure must keep surfacing on every
	// call instead of turning into an open-circuit error.
	cfg.FailureThreshold = 0
	cfg.FailureRatioThreshold = 0

	return &OrderStore{
		logger:  logger.WithComponent("order-store"),
		breaker: resilience.NewCircuitBreaker(cfg, logger),
	}
}

// QueryOrders queries the orders table through the circuit breaker. It
// always fails; there is no retry.
func (s *OrderStore) QueryOrders(ctx context.Context) ([]domain.Order, error) {
	result, err := s.breaker.Execute(ctx, func() (interface{}, error) {
		return nil, s.query()
	})
	if err != nil {
		s.logger.WithError(err).Error("Query failed", "table", "Orders")
		return nil, err
	}

	orders, _ := result.([]domain.Order)
	return orders, nil
}

func (s *OrderStore) query() error {
	cause := errors.NewNetworkError(
		fmt.Sprintf("Connection refused to %s:%d", dbHost, dbPort),
		refusedCode,
		dbHost,
		dbPort,
	)
	return errors.ErrDataAccess(ordersTableError, cause)
}
