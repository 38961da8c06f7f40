package repository

import (
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ScrapRepository puerto de persistencia para registros de scrap.
type ScrapRepository interface {
	Create(record *entity.ScrapRecord) error
	GetByID(id string) (*entity.ScrapRecord, error)
	// Update sobreescribe los campos corregibles de la fila (máquina, producto,
	// tipo y cantidad). No crea un nuevo registro.
	Update(record *entity.ScrapRecord) error
	Delete(id string) error
	// ListForDate devuelve los registros de una fecha, created_at descendente.
	ListForDate(date time.Time) ([]*entity.ScrapRecord, error)
}
