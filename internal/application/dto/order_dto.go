package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	ProductID       string          `json:"product_id"`
	QuantityOrdered decimal.Decimal `json:"quantity_ordered"`
	MachineName     string          `json:"machine_name"`
	Notes           *string         `json:"notes,omitempty"`
}

// OrderResponse representación HTTP de una orden de producción.
type OrderResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	QuantityOrdered decimal.Decimal `json:"quantity_ordered"`
	MachineName     string          `json:"machine_name"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at"`
}
