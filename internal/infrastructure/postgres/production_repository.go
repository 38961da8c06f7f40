package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo conteo de producción por máquina y hora.
type ProductionRepo struct {
	q Querier
}

func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// AddToBucket suma count al bucket (machine_id, hour) en una sola sentencia
// atómica. El upsert con incremento evita lost updates entre registradores
// concurrentes sin bloqueo explícito. Devuelve el total acumulado del bucket.
func (r *ProductionRepo) AddToBucket(machineID string, hour time.Time, count int64) (int64, error) {
	query := `
		INSERT INTO machine_production (machine_id, hour_timestamp, production_count, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (machine_id, hour_timestamp)
		DO UPDATE SET production_count = machine_production.production_count + EXCLUDED.production_count,
		              updated_at = now()
		RETURNING production_count`
	var total int64
	err := r.q.QueryRow(context.Background(), query, machineID, hour, count).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("add production: %w", err)
	}
	return total, nil
}

// SumForHour devuelve el total del bucket. Suma en lugar de asumir fila
// única para tolerar datos previos a la restricción de unicidad.
func (r *ProductionRepo) SumForHour(machineID string, hour time.Time) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(production_count), 0)
		 FROM machine_production
		 WHERE machine_id = $1 AND hour_timestamp = $2`,
		machineID, hour,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum production: %w", err)
	}
	return total, nil
}

// ListSince devuelve los buckets desde una hora dada, agrupados por máquina
// y hora.
func (r *ProductionRepo) ListSince(since time.Time) ([]*entity.ProductionBucket, error) {
	query := `
		SELECT machine_id, hour_timestamp, SUM(production_count)
		FROM machine_production
		WHERE hour_timestamp >= $1
		GROUP BY machine_id, hour_timestamp
		ORDER BY hour_timestamp, machine_id`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("list production: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionBucket
	for rows.Next() {
		var b entity.ProductionBucket
		if err := rows.Scan(&b.MachineID, &b.HourTimestamp, &b.ProductionCount); err != nil {
			return nil, fmt.Errorf("scan production bucket: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
