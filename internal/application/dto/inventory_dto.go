package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/products/:id/movements.
// La cantidad puede venir en piezas o en pallets (unit = "pieces" | "pallets");
// los pallets se convierten a piezas enteras redondeando, igual que en la
// captura de piso.
type RegisterMovementRequest struct {
	Kind     string          `json:"kind"` // entry | exit
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"` // pieces (default) | pallets
}

// MovementResponse representación HTTP de un movimiento.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name,omitempty"`
	Kind           string    `json:"kind"`
	QuantityPieces int64     `json:"quantity_pieces"`
	UserID         string    `json:"user_id"`
	UserFullName   string    `json:"user_full_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
