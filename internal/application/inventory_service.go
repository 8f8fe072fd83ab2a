package application

import (
	"github.com/commerce-platform/order-processor/pkg/logging"
	"github.com/commerce-platform/order-processor/pkg/metrics"
)

// InventoryService owns the SKU-to-stock mapping. Reservations mutate it in
// place and accumulate across calls on the same instance; nothing rolls
// them back.
type InventoryService struct {
	stock   map[string]int
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewInventoryService creates an InventoryService seeded with initial stock
func NewInventoryService(initial map[string]int, logger *logging.Logger, m *metrics.Metrics) *InventoryService {
	stock := make(map[string]int, len(initial))
	for sku, qty := range initial {
		stock[sku] = qty
	}
	return &InventoryService{
		stock:   stock,
		logger:  logger,
		metrics: m,
	}
}

// GetStock returns the available quantity for a SKU. Unknown SKUs have
// zero stock; lookup never fails.
func (s *InventoryService) GetStock(sku string) int {
	return s.stock[sku]
}

// Reserve decrements stock for a SKU, flooring at zero. Over-reservation
// clamps rather than erroring: insufficient stock is surfaced upstream as a
// warning, never blocked here.
func (s *InventoryService) Reserve(sku string, quantity int) {
	current := s.GetStock(sku)
	remaining := current - quantity
	if remaining < 0 {
		remaining = 0
	}
	s.stock[sku] = remaining

	s.logger.Debug("Reserved stock",
		"sku", sku,
		"quantity", quantity,
		"remaining", remaining,
	)
	s.metrics.RecordStockReservation(sku)
}
