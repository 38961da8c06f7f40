package repository

import (
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ProductionReportRepository puerto de persistencia para reportes de turno.
type ProductionReportRepository interface {
	Create(report *entity.ProductionReport) error
	GetByID(id string) (*entity.ProductionReport, error)
	Update(report *entity.ProductionReport) error
	Delete(id string) error
	// ListForShift devuelve los reportes de (fecha, turno) ordenados por máquina.
	ListForShift(date time.Time, shiftNumber int) ([]*entity.ProductionReport, error)
}
