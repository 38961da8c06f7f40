package repository

import "github.com/jhoicas/Planta-api/internal/domain/entity"

// MachineRepository puerto de persistencia para máquinas.
type MachineRepository interface {
	Create(machine *entity.Machine) error
	GetByID(id string) (*entity.Machine, error)
	UpdateStatus(id, status string) error
	// UpdateAssignment fija producto y cantidad ordenada y reinicia
	// quantity_produced a 0 en una sola escritura.
	UpdateAssignment(id string, productID *string, quantityOrdered int64) error
	UpdateCavities(id string, cavities int64) error
	UpdateProduced(id string, quantityProduced int64) error
	List() ([]*entity.Machine, error)
}
