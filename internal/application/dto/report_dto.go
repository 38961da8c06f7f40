package dto

import "github.com/shopspring/decimal"

// UpsertShiftCommentRequest body para PUT /api/shift-comments.
type UpsertShiftCommentRequest struct {
	CommentDate string `json:"comment_date"` // YYYY-MM-DD
	ShiftNumber int    `json:"shift_number"` // 1, 2 o 3
	Comments    string `json:"comments"`
}

// ShiftCommentResponse representación HTTP de un comentario de turno.
type ShiftCommentResponse struct {
	CommentDate string `json:"comment_date"`
	ShiftNumber int    `json:"shift_number"`
	Comments    string `json:"comments"`
}

// SaveProductionReportRequest body para POST/PUT de reportes de producción.
type SaveProductionReportRequest struct {
	ReportDate         string          `json:"report_date"` // YYYY-MM-DD
	ShiftNumber        int             `json:"shift_number"`
	MachineName        string          `json:"machine_name"`
	ProductName        *string         `json:"product_name,omitempty"`
	CycleTime          *string         `json:"cycle_time,omitempty"`
	ProductionGoal     decimal.Decimal `json:"production_goal"`
	ProductionAchieved decimal.Decimal `json:"production_achieved"`
	Notes              *string         `json:"notes,omitempty"`
}

// ProductionReportResponse representación HTTP de un reporte de turno.
type ProductionReportResponse struct {
	ID                 string          `json:"id"`
	ReportDate         string          `json:"report_date"`
	ShiftNumber        int             `json:"shift_number"`
	MachineName        string          `json:"machine_name"`
	ProductName        *string         `json:"product_name"`
	CycleTime          *string         `json:"cycle_time"`
	ProductionGoal     decimal.Decimal `json:"production_goal"`
	ProductionAchieved decimal.Decimal `json:"production_achieved"`
	Notes              *string         `json:"notes"`
}
