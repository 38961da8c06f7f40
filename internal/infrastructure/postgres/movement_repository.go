package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persistencia de movimientos de inventario.
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el registro del movimiento. Se llama dentro de la misma
// transacción que actualiza las cantidades del producto.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO inventory_movements (id, product_id, user_id, kind, quantity_pieces, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.UserID, m.Kind, m.QuantityPieces, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos más recientes primero, con nombre de producto
// y de usuario resueltos por join. productID vacío lista todos.
func (r *MovementRepo) List(productID string, limit int) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.product_id, m.user_id, m.kind, m.quantity_pieces, m.created_at,
		       COALESCE(p.name, ''), COALESCE(u.full_name, '')
		FROM inventory_movements m
		LEFT JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.user_id
		WHERE $1 = '' OR m.product_id::text = $1
		ORDER BY m.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.UserID, &m.Kind, &m.QuantityPieces,
			&m.CreatedAt, &m.ProductName, &m.UserFullName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
