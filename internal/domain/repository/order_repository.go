package repository

import (
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para órdenes de producción.
type OrderRepository interface {
	Create(order *entity.ProductionOrder) error
	GetByID(id string) (*entity.ProductionOrder, error)
	// Complete marca la orden como completada con la marca de tiempo dada.
	Complete(id string, completedAt time.Time) error
	Delete(id string) error
	// ListByStatus filtra por estado; status vacío lista todas. Orden de
	// inserción: created_at descendente.
	ListByStatus(status string) ([]*entity.ProductionOrder, error)
}
