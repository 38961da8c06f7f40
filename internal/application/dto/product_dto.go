package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// El stock inicial se expresa en pallets (como lo captura el operador);
// las piezas iniciales se derivan de pallets * pieces_per_package.
type CreateProductRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category,omitempty"`
	Pallets          decimal.Decimal `json:"pallets"`
	PiecesPerPackage int64           `json:"pieces_per_package"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category,omitempty"`
	PiecesPerPackage int64           `json:"pieces_per_package"`
	TotalPieces      int64           `json:"total_pieces"`
	Pallets          decimal.Decimal `json:"pallets"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
