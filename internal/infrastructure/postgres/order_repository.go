package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo persistencia de órdenes de producción.
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func (r *OrderRepo) Create(order *entity.ProductionOrder) error {
	query := `
		INSERT INTO production_orders (id, product_id, quantity_ordered, machine_name, status, notes, user_id, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.QuantityOrdered, order.MachineName,
		order.Status, order.Notes, order.UserID, order.CreatedAt, order.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.ProductionOrder, error) {
	query := `
		SELECT o.id, o.product_id, o.quantity_ordered, o.machine_name, o.status,
		       o.notes, o.user_id, o.created_at, o.completed_at, COALESCE(p.name, '')
		FROM production_orders o
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.id = $1`
	var o entity.ProductionOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProductID, &o.QuantityOrdered, &o.MachineName, &o.Status,
		&o.Notes, &o.UserID, &o.CreatedAt, &o.CompletedAt, &o.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepo) Complete(id string, completedAt time.Time) error {
	// Condicionada sobre el status para que dos completados concurrentes no
	// pisen completed_at: solo la primera escritura afecta la fila.
	tag, err := r.q.Exec(context.Background(),
		`UPDATE production_orders SET status = $2, completed_at = $3 WHERE id = $1 AND status = $4`,
		id, entity.OrderCompleted, completedAt, entity.OrderPending,
	)
	if err != nil {
		return fmt.Errorf("complete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) ListByStatus(status string) ([]*entity.ProductionOrder, error) {
	query := `
		SELECT o.id, o.product_id, o.quantity_ordered, o.machine_name, o.status,
		       o.notes, o.user_id, o.created_at, o.completed_at, COALESCE(p.name, '')
		FROM production_orders o
		LEFT JOIN products p ON p.id = o.product_id`
	args := []any{}
	if status != "" {
		query += ` WHERE o.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY o.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionOrder
	for rows.Next() {
		var o entity.ProductionOrder
		if err := rows.Scan(&o.ID, &o.ProductID, &o.QuantityOrdered, &o.MachineName,
			&o.Status, &o.Notes, &o.UserID, &o.CreatedAt, &o.CompletedAt, &o.ProductName); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
