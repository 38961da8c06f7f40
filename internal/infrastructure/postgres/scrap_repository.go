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

var _ repository.ScrapRepository = (*ScrapRepo)(nil)

// ScrapRepo persistencia de registros de scrap.
type ScrapRepo struct {
	q Querier
}

func NewScrapRepository(q Querier) *ScrapRepo {
	return &ScrapRepo{q: q}
}

func (r *ScrapRepo) Create(record *entity.ScrapRecord) error {
	query := `
		INSERT INTO scrap_records (id, machine_name, product_id, scrap_type, quantity_kg, record_date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.MachineName, record.ProductID, record.ScrapType,
		record.QuantityKg, record.RecordDate, record.UserID, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scrap record: %w", err)
	}
	return nil
}

func (r *ScrapRepo) GetByID(id string) (*entity.ScrapRecord, error) {
	query := `
		SELECT s.id, s.machine_name, s.product_id, s.scrap_type, s.quantity_kg,
		       s.record_date, s.user_id, s.created_at, COALESCE(p.name, '')
		FROM scrap_records s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.id = $1`
	var rec entity.ScrapRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.MachineName, &rec.ProductID, &rec.ScrapType, &rec.QuantityKg,
		&rec.RecordDate, &rec.UserID, &rec.CreatedAt, &rec.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scrap record: %w", err)
	}
	return &rec, nil
}

// Update corrige la fila en sitio. La fecha y el autor original no cambian.
func (r *ScrapRepo) Update(record *entity.ScrapRecord) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE scrap_records
		 SET machine_name = $2, product_id = $3, scrap_type = $4, quantity_kg = $5
		 WHERE id = $1`,
		record.ID, record.MachineName, record.ProductID, record.ScrapType, record.QuantityKg,
	)
	if err != nil {
		return fmt.Errorf("update scrap record: %w", err)
	}
	return nil
}

func (r *ScrapRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM scrap_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scrap record: %w", err)
	}
	return nil
}

func (r *ScrapRepo) ListForDate(date time.Time) ([]*entity.ScrapRecord, error) {
	query := `
		SELECT s.id, s.machine_name, s.product_id, s.scrap_type, s.quantity_kg,
		       s.record_date, s.user_id, s.created_at, COALESCE(p.name, '')
		FROM scrap_records s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.record_date = $1
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list scrap records: %w", err)
	}
	defer rows.Close()
	var list []*entity.ScrapRecord
	for rows.Next() {
		var rec entity.ScrapRecord
		if err := rows.Scan(&rec.ID, &rec.MachineName, &rec.ProductID, &rec.ScrapType,
			&rec.QuantityKg, &rec.RecordDate, &rec.UserID, &rec.CreatedAt, &rec.ProductName); err != nil {
			return nil, fmt.Errorf("scan scrap record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
