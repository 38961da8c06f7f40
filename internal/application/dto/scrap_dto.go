package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordScrapRequest body para POST /api/scrap.
// RecordDate vacío usa la fecha actual.
type RecordScrapRequest struct {
	MachineName string          `json:"machine_name"`
	ProductID   *string         `json:"product_id,omitempty"`
	ScrapType   string          `json:"scrap_type"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	RecordDate  string          `json:"record_date,omitempty"` // YYYY-MM-DD
}

// UpdateScrapRequest body para PUT /api/scrap/:id. Corrección administrativa
// en sitio de los campos de la fila.
type UpdateScrapRequest struct {
	MachineName string          `json:"machine_name"`
	ProductID   *string         `json:"product_id,omitempty"`
	ScrapType   string          `json:"scrap_type"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
}

// ScrapRecordResponse representación HTTP de un registro de scrap.
type ScrapRecordResponse struct {
	ID          string          `json:"id"`
	MachineName string          `json:"machine_name"`
	ProductID   *string         `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	ScrapType   string          `json:"scrap_type"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	RecordDate  string          `json:"record_date"`
	UserID      string          `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MachineScrapSummary subtotales de scrap de una máquina en una fecha.
type MachineScrapSummary struct {
	MachineName string          `json:"machine_name"`
	Scrap       decimal.Decimal `json:"scrap"`
	Plasta      decimal.Decimal `json:"plasta"`
	Purga       decimal.Decimal `json:"purga"`
	Preforma    decimal.Decimal `json:"preforma"`
	Total       decimal.Decimal `json:"total"`
}

// ScrapSummaryResponse resumen diario de scrap agrupado por máquina.
type ScrapSummaryResponse struct {
	Date       string                `json:"date"`
	Machines   []MachineScrapSummary `json:"machines"`
	GrandTotal decimal.Decimal       `json:"grand_total"`
}
