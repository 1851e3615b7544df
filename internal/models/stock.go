package models

import "fmt"

type StockRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// StockVerdict is the outcome of checking one line item against backend availability.
type StockVerdict struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	AvailableStock    int    `json:"available_stock"`
	RequestedQuantity int    `json:"requested_quantity"`
	IsAvailable       bool   `json:"is_available"`
	NotFound          bool   `json:"not_found,omitempty"`
	Error             string `json:"error,omitempty"`
}

// ShortageLine is the user-facing description of a failed verdict.
func (v StockVerdict) ShortageLine() string {
	if v.NotFound {
		return fmt.Sprintf("%s — produto não encontrado", v.ProductName)
	}

	if v.Error != "" {
		return fmt.Sprintf("%s — %s", v.ProductName, v.Error)
	}

	return fmt.Sprintf("%s — disponível: %d", v.ProductName, v.AvailableStock)
}

type StockReport struct {
	Verdicts     []StockVerdict `json:"verdicts"`
	AllAvailable bool           `json:"all_available"`
}

func NewStockReport(verdicts []StockVerdict) *StockReport {
	return &StockReport{Verdicts: verdicts, AllAvailable: len(Shortages(verdicts)) == 0}
}

func Shortages(verdicts []StockVerdict) []StockVerdict {
	var short []StockVerdict

	for _, v := range verdicts {
		if !v.IsAvailable {
			short = append(short, v)
		}
	}

	return short
}
