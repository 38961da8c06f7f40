package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// ProductionReportUseCase reportes de cierre de turno por máquina. Se editan
// en sitio y pueden eliminarse: son captura de supervisión, no bitácora.
type ProductionReportUseCase struct {
	repo repository.ProductionReportRepository
}

// NewProductionReportUseCase construye el caso de uso.
func NewProductionReportUseCase(repo repository.ProductionReportRepository) *ProductionReportUseCase {
	return &ProductionReportUseCase{repo: repo}
}

func (uc *ProductionReportUseCase) validate(in dto.SaveProductionReportRequest) (time.Time, error) {
	if in.MachineName == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	if in.ShiftNumber < 1 || in.ShiftNumber > 3 {
		return time.Time{}, domain.ErrInvalidInput
	}
	if in.ProductionGoal.IsNegative() || in.ProductionAchieved.IsNegative() {
		return time.Time{}, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.ReportDate)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return date, nil
}

// Create agrega la fila de reporte de una máquina para (fecha, turno).
func (uc *ProductionReportUseCase) Create(in dto.SaveProductionReportRequest) (*entity.ProductionReport, error) {
	date, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	report := &entity.ProductionReport{
		ID:                 uuid.New().String(),
		ReportDate:         date,
		ShiftNumber:        in.ShiftNumber,
		MachineName:        in.MachineName,
		ProductName:        in.ProductName,
		CycleTime:          in.CycleTime,
		ProductionGoal:     in.ProductionGoal,
		ProductionAchieved: in.ProductionAchieved,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Update sobreescribe una fila de reporte existente.
func (uc *ProductionReportUseCase) Update(id string, in dto.SaveProductionReportRequest) (*entity.ProductionReport, error) {
	date, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	report, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	report.ReportDate = date
	report.ShiftNumber = in.ShiftNumber
	report.MachineName = in.MachineName
	report.ProductName = in.ProductName
	report.CycleTime = in.CycleTime
	report.ProductionGoal = in.ProductionGoal
	report.ProductionAchieved = in.ProductionAchieved
	report.Notes = in.Notes
	report.UpdatedAt = time.Now()
	if err := uc.repo.Update(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Delete elimina la fila de reporte.
func (uc *ProductionReportUseCase) Delete(id string) error {
	report, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if report == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListForShift devuelve los reportes de (fecha, turno) ordenados por máquina.
func (uc *ProductionReportUseCase) ListForShift(date time.Time, shiftNumber int) ([]*entity.ProductionReport, error) {
	if shiftNumber < 1 || shiftNumber > 3 {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.ListForShift(date, shiftNumber)
}
