package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado del inventario de planta.
// TotalPieces es la cantidad autoritativa; Pallets es derivado
// (TotalPieces / PiecesPerPackage, generalmente fraccionario) y solo lo
// muta el motor de movimientos.
type Product struct {
	ID               string
	Name             string
	Category         string
	PiecesPerPackage int64           // piezas por pallet, >= 1
	TotalPieces      int64           // piezas en existencia, >= 0
	Pallets          decimal.Decimal // derivado: TotalPieces / PiecesPerPackage
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PalletsFor calcula los pallets para un total de piezas dado.
func (p *Product) PalletsFor(totalPieces int64) decimal.Decimal {
	return decimal.NewFromInt(totalPieces).Div(decimal.NewFromInt(p.PiecesPerPackage))
}
