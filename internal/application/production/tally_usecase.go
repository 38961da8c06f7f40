package production

import (
	"time"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// TallyUseCase acumula los conteos horarios de producción por máquina.
// El bucket es (machine_id, hora truncada); la escritura es un
// insert-or-increment atómico en el repositorio, nunca leer-y-escribir,
// para que dos registros concurrentes sobre la misma hora no se pierdan.
type TallyUseCase struct {
	prodRepo    repository.ProductionRepository
	machineRepo repository.MachineRepository
}

// NewTallyUseCase construye el caso de uso.
func NewTallyUseCase(prodRepo repository.ProductionRepository, machineRepo repository.MachineRepository) *TallyUseCase {
	return &TallyUseCase{prodRepo: prodRepo, machineRepo: machineRepo}
}

// AddProduction acumula count piezas en el bucket de la hora de occurredAt y
// devuelve el total del bucket tras la suma.
func (uc *TallyUseCase) AddProduction(machineID string, count int64, occurredAt time.Time) (*entity.ProductionBucket, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidInput
	}
	machine, err := uc.machineRepo.GetByID(machineID)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}

	hour := entity.FloorHour(occurredAt)
	total, err := uc.prodRepo.AddToBucket(machineID, hour, count)
	if err != nil {
		return nil, err
	}
	return &entity.ProductionBucket{
		MachineID:       machineID,
		HourTimestamp:   hour,
		ProductionCount: total,
	}, nil
}

// GetForMachine devuelve el total producido por la máquina en la hora de t.
func (uc *TallyUseCase) GetForMachine(machineID string, t time.Time) (int64, error) {
	machine, err := uc.machineRepo.GetByID(machineID)
	if err != nil {
		return 0, err
	}
	if machine == nil {
		return 0, domain.ErrNotFound
	}
	return uc.prodRepo.SumForHour(machineID, entity.FloorHour(t))
}

// TotalsSince devuelve los buckets desde la hora de t en adelante. Es la
// lectura de sondeo del mapa de planta (refresco periódico, solo lectura).
func (uc *TallyUseCase) TotalsSince(t time.Time) ([]*entity.ProductionBucket, error) {
	return uc.prodRepo.ListSince(entity.FloorHour(t))
}
