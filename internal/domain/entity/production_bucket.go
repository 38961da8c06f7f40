package entity

import "time"

// ProductionBucket es el contador de producción de una máquina en una hora
// concreta. Existe exactamente una fila por (MachineID, HourTimestamp); los
// registros del operador se acumulan sobre ella y nunca se decrementa.
type ProductionBucket struct {
	ID              string
	MachineID       string
	HourTimestamp   time.Time // truncado al inicio de la hora, UTC
	ProductionCount int64     // >= 0
}

// FloorHour trunca t al inicio de su hora en UTC. Es la clave de bucket usada
// por el tally de producción.
func FloorHour(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}
