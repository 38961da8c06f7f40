package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionReport es la fila del reporte de producción de una máquina en un
// turno y fecha dados. Lo captura el supervisor al cierre de turno; se edita
// en sitio y puede eliminarse.
type ProductionReport struct {
	ID                 string
	ReportDate         time.Time // fecha (día)
	ShiftNumber        int       // 1, 2 o 3
	MachineName        string
	ProductName        *string
	CycleTime          *string
	ProductionGoal     decimal.Decimal
	ProductionAchieved decimal.Decimal
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
