package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDENTE"
	OrderStatusPaid      OrderStatus = "PAGO"
	OrderStatusShipped   OrderStatus = "ENVIADO"
	OrderStatusDelivered OrderStatus = "ENTREGUE"
	OrderStatusCancelled OrderStatus = "CANCELADO"
)

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Order struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	AddressID   string              `json:"address_id"`
	Items       []OrderItem         `json:"items,omitempty"`
	// Total is invalid when the backend did not report one.
	Total       decimal.NullDecimal `json:"total"`
	Status      OrderStatus         `json:"status"`
	Description string              `json:"description,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// OrderDraft is what the backend needs to assemble an order from the customer's persisted cart.
type OrderDraft struct {
	CustomerID     string
	AddressID      string
	CartID         string
	ShippingPrice  decimal.Decimal
	ShippingName   string
	Discount       decimal.Decimal
	CouponCode     string
	Description    string
	PlacedAt       time.Time
	IdempotencyKey string
}

// BackendCart mirrors the cart record the order API assembles orders from.
type BackendCart struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
}

func OrderItemsFromCart(cart *Cart) []OrderItem {
	items := make([]OrderItem, 0, len(cart.Items))

	for _, line := range cart.Items {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return items
}
