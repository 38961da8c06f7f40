package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo persistencia de máquinas de planta.
type MachineRepo struct {
	q Querier
}

func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

const machineSelect = `
	SELECT m.id, m.name, m.status, m.current_product_id, m.cavities,
	       m.quantity_ordered, m.quantity_produced, COALESCE(p.name, '')
	FROM machines m
	LEFT JOIN products p ON p.id = m.current_product_id`

func (r *MachineRepo) Create(m *entity.Machine) error {
	query := `
		INSERT INTO machines (id, name, status, current_product_id, cavities, quantity_ordered, quantity_produced)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Status, m.CurrentProductID, m.Cavities,
		m.QuantityOrdered, m.QuantityProduced,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

// GetByID devuelve nil si la máquina no existe.
func (r *MachineRepo) GetByID(id string) (*entity.Machine, error) {
	var m entity.Machine
	err := r.q.QueryRow(context.Background(), machineSelect+` WHERE m.id = $1`, id).Scan(
		&m.ID, &m.Name, &m.Status, &m.CurrentProductID, &m.Cavities,
		&m.QuantityOrdered, &m.QuantityProduced, &m.CurrentProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

func (r *MachineRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE machines SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update machine status: %w", err)
	}
	return nil
}

// UpdateAssignment cambia el producto asignado y la cantidad pedida en una
// sola escritura, y reinicia quantity_produced a cero.
func (r *MachineRepo) UpdateAssignment(id string, productID *string, quantityOrdered int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE machines
		 SET current_product_id = $2, quantity_ordered = $3, quantity_produced = 0, updated_at = now()
		 WHERE id = $1`,
		id, productID, quantityOrdered,
	)
	if err != nil {
		return fmt.Errorf("update machine assignment: %w", err)
	}
	return nil
}

func (r *MachineRepo) UpdateCavities(id string, cavities int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE machines SET cavities = $2, updated_at = now() WHERE id = $1`,
		id, cavities,
	)
	if err != nil {
		return fmt.Errorf("update machine cavities: %w", err)
	}
	return nil
}

func (r *MachineRepo) UpdateProduced(id string, quantityProduced int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE machines SET quantity_produced = $2, updated_at = now() WHERE id = $1`,
		id, quantityProduced,
	)
	if err != nil {
		return fmt.Errorf("update machine produced: %w", err)
	}
	return nil
}

func (r *MachineRepo) List() ([]*entity.Machine, error) {
	rows, err := r.q.Query(context.Background(), machineSelect+` ORDER BY m.name`)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.Status, &m.CurrentProductID, &m.Cavities,
			&m.QuantityOrdered, &m.QuantityProduced, &m.CurrentProductName); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
