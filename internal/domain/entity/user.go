package entity

import "time"

// User es un operador o supervisor de planta. Su ID es el sello de autoría
// que se estampa en movimientos, scrap y órdenes.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
