package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.ProductionReportRepository = (*ProductionReportRepo)(nil)

// ProductionReportRepo persistencia de reportes de turno.
type ProductionReportRepo struct {
	q Querier
}

func NewProductionReportRepository(q Querier) *ProductionReportRepo {
	return &ProductionReportRepo{q: q}
}

const reportColumns = `id, report_date, shift_number, machine_name, product_name, cycle_time, production_goal, production_achieved, notes, created_at, updated_at`

func (r *ProductionReportRepo) Create(report *entity.ProductionReport) error {
	query := `
		INSERT INTO production_reports (id, report_date, shift_number, machine_name, product_name, cycle_time, production_goal, production_achieved, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.ReportDate, report.ShiftNumber, report.MachineName,
		report.ProductName, report.CycleTime, report.ProductionGoal,
		report.ProductionAchieved, report.Notes, report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production report: %w", err)
	}
	return nil
}

func (r *ProductionReportRepo) GetByID(id string) (*entity.ProductionReport, error) {
	query := `SELECT ` + reportColumns + ` FROM production_reports WHERE id = $1`
	var rep entity.ProductionReport
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.ReportDate, &rep.ShiftNumber, &rep.MachineName,
		&rep.ProductName, &rep.CycleTime, &rep.ProductionGoal,
		&rep.ProductionAchieved, &rep.Notes, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production report: %w", err)
	}
	return &rep, nil
}

func (r *ProductionReportRepo) Update(report *entity.ProductionReport) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE production_reports
		 SET machine_name = $2, product_name = $3, cycle_time = $4,
		     production_goal = $5, production_achieved = $6, notes = $7, updated_at = $8
		 WHERE id = $1`,
		report.ID, report.MachineName, report.ProductName, report.CycleTime,
		report.ProductionGoal, report.ProductionAchieved, report.Notes, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production report: %w", err)
	}
	return nil
}

func (r *ProductionReportRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production report: %w", err)
	}
	return nil
}

func (r *ProductionReportRepo) ListForShift(date time.Time, shiftNumber int) ([]*entity.ProductionReport, error) {
	query := `SELECT ` + reportColumns + ` FROM production_reports
		WHERE report_date = $1 AND shift_number = $2
		ORDER BY machine_name`
	rows, err := r.q.Query(context.Background(), query, date, shiftNumber)
	if err != nil {
		return nil, fmt.Errorf("list production reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionReport
	for rows.Next() {
		var rep entity.ProductionReport
		if err := rows.Scan(&rep.ID, &rep.ReportDate, &rep.ShiftNumber, &rep.MachineName,
			&rep.ProductName, &rep.CycleTime, &rep.ProductionGoal,
			&rep.ProductionAchieved, &rep.Notes, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan production report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
