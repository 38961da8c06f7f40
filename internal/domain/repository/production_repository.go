package repository

import (
	"time"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ProductionRepository puerto de persistencia para los buckets horarios de
// producción por máquina.
type ProductionRepository interface {
	// AddToBucket acumula count sobre el bucket (machineID, hour) con una sola
	// escritura atómica insert-or-increment y devuelve el total resultante.
	// Nunca debe implementarse como lectura seguida de escritura: dos llamadas
	// concurrentes sobre el mismo bucket se perderían una a la otra.
	AddToBucket(machineID string, hour time.Time, count int64) (int64, error)
	// SumForHour suma las filas del bucket (machineID, hour). Sumar en lugar de
	// asumir unicidad hace la lectura defensiva ante filas duplicadas residuales.
	SumForHour(machineID string, hour time.Time) (int64, error)
	// ListSince devuelve los buckets con hour_timestamp >= desde (vista de planta).
	ListSince(since time.Time) ([]*entity.ProductionBucket, error)
}
