package models

import "github.com/shopspring/decimal"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artist      string          `json:"artist,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	// Reserved is nil when the backend does not report reservations.
	Reserved   *int      `json:"reserved,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	CategoryID string    `json:"category_id,omitempty"`
	Category   *Category `json:"category,omitempty"`
}

// AvailableStock is stock minus reservations, never negative.
func (p *Product) AvailableStock() int {
	available := p.Stock
	if p.Reserved != nil {
		available -= *p.Reserved
	}

	return max(available, 0)
}

func (p *Product) LineItem() CartLineItem {
	return CartLineItem{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.Price,
		ImageURL:    p.ImageURL,
		MaxStock:    p.AvailableStock(),
	}
}

type ProductFilter struct {
	Name       string           `json:"name,omitempty"`
	CategoryID string           `json:"category_id,omitempty"`
	MinPrice   *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice   *decimal.Decimal `json:"max_price,omitempty"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Artist      string          `json:"artist,omitempty" validate:"omitempty,max=200"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url,omitempty" validate:"omitempty,url"`
	CategoryID  string          `json:"category_id" validate:"required"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Artist      *string          `json:"artist,omitempty" validate:"omitempty,max=200"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	CategoryID  *string          `json:"category_id,omitempty"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}
