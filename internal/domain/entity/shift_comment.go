package entity

import "time"

// ShiftComment son las observaciones de un turno concreto de un día.
// A lo sumo una fila por (CommentDate, ShiftNumber); se upserta.
type ShiftComment struct {
	ID          string
	CommentDate time.Time // fecha (día)
	ShiftNumber int       // 1, 2 o 3
	Comments    string
	UpdatedAt   time.Time
}
