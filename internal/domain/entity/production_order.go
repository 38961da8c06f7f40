package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de producción. Única transición válida: pending -> completed.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

// ProductionOrder es una orden de producción asignada a una máquina.
// CompletedAt se establece si y solo si Status es completed.
type ProductionOrder struct {
	ID              string
	ProductID       string
	QuantityOrdered decimal.Decimal // > 0
	MachineName     string
	Status          string
	Notes           *string
	UserID          string
	CreatedAt       time.Time
	CompletedAt     *time.Time

	// Campo de lectura (join); vacío al escribir.
	ProductName string
}
