package repository

import "github.com/jhoicas/Planta-api/internal/domain/entity"

// MovementRepository puerto de persistencia para movimientos de inventario.
// Solo inserción y lectura: los movimientos son inmutables (bitácora de
// auditoría).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve movimientos ordenados por created_at descendente.
	// productID vacío lista todos los productos.
	List(productID string, limit int) ([]*entity.Movement, error)
}
