package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// TotalPieces/Pallets solo se escriben vía UpdateQuantities dentro de la
// transacción del motor de movimientos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Devuelve nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	UpdateQuantities(id string, totalPieces int64, pallets decimal.Decimal) error
	List() ([]*entity.Product, error)
}
