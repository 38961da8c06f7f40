package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementEntry = "entry" // entrada
	MovementExit  = "exit"  // salida
)

// Movement representa un movimiento de inventario (entrada o salida) registrado
// por un operador. Inmutable una vez escrito; CreatedAt define el orden total.
type Movement struct {
	ID             string
	ProductID      string
	UserID         string
	Kind           string // entry | exit
	QuantityPieces int64  // > 0
	CreatedAt      time.Time

	// Campos de lectura (join); vacíos al escribir.
	ProductName  string
	UserFullName string
}
