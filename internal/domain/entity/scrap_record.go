package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de scrap.
const (
	ScrapTypeScrap    = "SCRAP"
	ScrapTypePlasta   = "PLASTA"
	ScrapTypePurga    = "PURGA"
	ScrapTypePreforma = "PREFORMA"
)

// ScrapTypes lista los tipos válidos en el orden en que se reportan.
var ScrapTypes = []string{ScrapTypeScrap, ScrapTypePlasta, ScrapTypePurga, ScrapTypePreforma}

// ValidScrapType indica si s es un tipo de scrap válido.
func ValidScrapType(s string) bool {
	for _, t := range ScrapTypes {
		if s == t {
			return true
		}
	}
	return false
}

// ScrapRecord es un registro de material rechazado. A diferencia de los
// movimientos de inventario, admite corrección en sitio: editar sobreescribe
// los campos de la misma fila y borrar la elimina.
type ScrapRecord struct {
	ID          string
	MachineName string
	ProductID   *string
	ScrapType   string
	QuantityKg  decimal.Decimal // > 0
	RecordDate  time.Time       // fecha (día) del registro
	UserID      string
	CreatedAt   time.Time

	// Campo de lectura (join); vacío al escribir.
	ProductName string
}
