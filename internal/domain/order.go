package domain

// OrderItem represents an item in an order
type OrderItem struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order holds an ordered sequence of items. Item order is preserved as
// given by the caller; inventory reservation walks it front to back.
type Order struct {
	OrderID      string      `json:"orderId"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
}

// Subtotal returns the sum of quantity times unit price over all items,
// with no rounding.
func (o *Order) Subtotal() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// TotalItems returns the total number of units in the order
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
