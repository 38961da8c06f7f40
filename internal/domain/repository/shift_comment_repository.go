package repository

import (
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ShiftCommentRepository puerto de persistencia para comentarios de turno.
type ShiftCommentRepository interface {
	// Upsert inserta o reemplaza el comentario del (fecha, turno).
	Upsert(comment *entity.ShiftComment) error
	Get(date time.Time, shiftNumber int) (*entity.ShiftComment, error)
}
