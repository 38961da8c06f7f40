package dto

import "time"

// CreateMachineRequest body para POST /api/machines.
type CreateMachineRequest struct {
	Name     string `json:"name"`
	Cavities int64  `json:"cavities"`
}

// SetStatusRequest body para PUT /api/machines/:id/status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// AssignProductRequest body para PUT /api/machines/:id/product.
// ProductID null o vacío limpia la asignación (y pone quantity_ordered en 0).
type AssignProductRequest struct {
	ProductID       *string `json:"product_id"`
	QuantityOrdered int64   `json:"quantity_ordered"`
}

// UpdateMachineRequest body para PUT /api/machines/:id. Campos opcionales.
type UpdateMachineRequest struct {
	Cavities         *int64  `json:"cavities,omitempty"`
	Status           *string `json:"status,omitempty"`
	QuantityProduced *int64  `json:"quantity_produced,omitempty"`
}

// AddProductionRequest body para POST /api/machines/:id/production.
// OccurredAt vacío usa la hora actual.
type AddProductionRequest struct {
	Count      int64      `json:"count"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// ProductionTotalResponse total acumulado del bucket tras un registro.
type ProductionTotalResponse struct {
	MachineID       string    `json:"machine_id"`
	HourTimestamp   time.Time `json:"hour_timestamp"`
	ProductionCount int64     `json:"production_count"`
}

// MachineResponse representación HTTP de una máquina.
type MachineResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Cavities           int64   `json:"cavities"`
	Status             string  `json:"status"`
	CurrentProductID   *string `json:"current_product_id"`
	CurrentProductName string  `json:"current_product_name,omitempty"`
	QuantityOrdered    int64   `json:"quantity_ordered"`
	QuantityProduced   int64   `json:"quantity_produced"`
}
