package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrExceedsStock    = errors.New("quantity exceeds available stock")
	ErrItemNotInCart   = errors.New("item not found in cart")
)

type CartLineItem struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"image_url,omitempty"`
	// MaxStock is the availability seen when the item was last added; it is re-checked before ordering.
	MaxStock int `json:"max_stock"`
}

func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an ordered collection of line items keyed by product id.
type Cart struct {
	Items []CartLineItem `json:"items"`
}

type CartTotals struct {
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// Add merges by product id: an existing line has its quantity incremented, otherwise a new line is appended.
// Price, name and stock ceiling are refreshed from item.
func (c *Cart) Add(item CartLineItem, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	idx := c.indexOf(item.ProductID)

	newQuantity := quantity
	if idx >= 0 {
		newQuantity += c.Items[idx].Quantity
	}

	if item.MaxStock > 0 && newQuantity > item.MaxStock {
		return ErrExceedsStock
	}

	item.Quantity = newQuantity

	if idx >= 0 {
		c.Items[idx] = item
		return nil
	}

	c.Items = append(c.Items, item)

	return nil
}

func (c *Cart) Remove(productID string) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}

	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// SetQuantity replaces the stored quantity. Rejected calls leave the cart untouched.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	idx := c.indexOf(productID)
	if idx < 0 {
		return ErrItemNotInCart
	}

	if ceiling := c.Items[idx].MaxStock; ceiling > 0 && quantity > ceiling {
		return ErrExceedsStock
	}

	c.Items[idx].Quantity = quantity

	return nil
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Find(productID string) (CartLineItem, bool) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return CartLineItem{}, false
	}

	return c.Items[idx], true
}

func (c *Cart) IsEmpty() bool {
	return c.Totals().TotalItems == 0
}

func (c *Cart) Totals() CartTotals {
	totals := CartTotals{Subtotal: decimal.Zero}

	for _, item := range c.Items {
		totals.TotalItems += item.Quantity
		totals.Subtotal = totals.Subtotal.Add(item.LineTotal())
	}

	return totals
}

// StockRequests lists what the cart asks for, in display order.
func (c *Cart) StockRequests() []StockRequest {
	requests := make([]StockRequest, 0, len(c.Items))

	for _, item := range c.Items {
		requests = append(requests, StockRequest{ProductID: item.ProductID, ProductName: item.Name, Quantity: item.Quantity})
	}

	return requests
}

// Signature identifies the cart contents independent of display order.
func (c *Cart) Signature() string {
	parts := make([]string, 0, len(c.Items))

	for _, item := range c.Items {
		parts = append(parts, fmt.Sprintf("%s:%d:%s", item.ProductID, item.Quantity, item.UnitPrice.String()))
	}

	sort.Strings(parts)

	return strings.Join(parts, ",")
}

func (c *Cart) indexOf(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type CartResponse struct {
	Items  []CartLineItem `json:"items"`
	Totals CartTotals     `json:"totals"`
}

func NewCartResponse(cart Cart) *CartResponse {
	items := cart.Items
	if items == nil {
		items = []CartLineItem{}
	}

	return &CartResponse{Items: items, Totals: cart.Totals()}
}
