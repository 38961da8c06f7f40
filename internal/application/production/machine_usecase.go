package production

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// MachineUseCase administra las máquinas de planta: alta, estado y asignación
// de producto/orden. El grafo de estados es completo, cualquier transición es
// válida.
type MachineUseCase struct {
	machineRepo repository.MachineRepository
	productRepo repository.ProductRepository
}

// NewMachineUseCase construye el caso de uso.
func NewMachineUseCase(machineRepo repository.MachineRepository, productRepo repository.ProductRepository) *MachineUseCase {
	return &MachineUseCase{machineRepo: machineRepo, productRepo: productRepo}
}

// Create da de alta una máquina; arranca en estado producing.
func (uc *MachineUseCase) Create(in dto.CreateMachineRequest) (*entity.Machine, error) {
	if in.Name == "" || in.Cavities < 1 {
		return nil, domain.ErrInvalidInput
	}
	machine := &entity.Machine{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Cavities: in.Cavities,
		Status:   entity.StatusProducing,
	}
	if err := uc.machineRepo.Create(machine); err != nil {
		return nil, err
	}
	return machine, nil
}

// GetByID obtiene una máquina por ID.
func (uc *MachineUseCase) GetByID(id string) (*entity.Machine, error) {
	machine, err := uc.machineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrNotFound
	}
	return machine, nil
}

// SetStatus cambia el estado de la máquina. Siempre procede si la máquina
// existe: no hay transiciones prohibidas.
func (uc *MachineUseCase) SetStatus(id, status string) error {
	if !entity.ValidStatus(status) {
		return domain.ErrInvalidInput
	}
	machine, err := uc.machineRepo.GetByID(id)
	if err != nil {
		return err
	}
	if machine == nil {
		return domain.ErrNotFound
	}
	return uc.machineRepo.UpdateStatus(id, status)
}

// AssignProduct fija el producto y la cantidad ordenada de la máquina y
// reinicia quantity_produced a 0: una reasignación siempre reinicia el
// seguimiento de avance. ProductID nil limpia la asignación y pone la
// cantidad ordenada en 0.
func (uc *MachineUseCase) AssignProduct(id string, productID *string, quantityOrdered int64) error {
	if quantityOrdered < 0 {
		return domain.ErrInvalidInput
	}
	machine, err := uc.machineRepo.GetByID(id)
	if err != nil {
		return err
	}
	if machine == nil {
		return domain.ErrNotFound
	}
	if productID != nil && *productID != "" {
		product, err := uc.productRepo.GetByID(*productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
	} else {
		productID = nil
		quantityOrdered = 0
	}
	return uc.machineRepo.UpdateAssignment(id, productID, quantityOrdered)
}

// Update aplica cambios parciales: cavidades, estado y/o contador producido.
// El contador producido lo avanza el caller (progreso relativo a la orden);
// es independiente de los buckets horarios del tally.
func (uc *MachineUseCase) Update(id string, in dto.UpdateMachineRequest) error {
	machine, err := uc.machineRepo.GetByID(id)
	if err != nil {
		return err
	}
	if machine == nil {
		return domain.ErrNotFound
	}
	if in.Cavities != nil {
		if *in.Cavities < 1 {
			return domain.ErrInvalidInput
		}
		if err := uc.machineRepo.UpdateCavities(id, *in.Cavities); err != nil {
			return err
		}
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return domain.ErrInvalidInput
		}
		if err := uc.machineRepo.UpdateStatus(id, *in.Status); err != nil {
			return err
		}
	}
	if in.QuantityProduced != nil {
		if *in.QuantityProduced < 0 {
			return domain.ErrInvalidInput
		}
		if err := uc.machineRepo.UpdateProduced(id, *in.QuantityProduced); err != nil {
			return err
		}
	}
	return nil
}

// List devuelve las máquinas ordenadas por prefijo y sufijo numérico del
// nombre ("INY 3" antes que "INY 11").
func (uc *MachineUseCase) List() ([]*entity.Machine, error) {
	machines, err := uc.machineRepo.List()
	if err != nil {
		return nil, err
	}
	SortMachines(machines)
	return machines, nil
}

var machineNameRe = regexp.MustCompile(`^(\D+?)\s*(\d+)$`)

// SortMachines ordena por prefijo alfabético y después numéricamente por el
// sufijo, de modo que "ISBM 3" < "ISBM 10" e "INY" agrupa aparte de "ISBM".
func SortMachines(machines []*entity.Machine) {
	sort.SliceStable(machines, func(i, j int) bool {
		a, b := machines[i].Name, machines[j].Name
		am := machineNameRe.FindStringSubmatch(a)
		bm := machineNameRe.FindStringSubmatch(b)
		if am == nil || bm == nil {
			return a < b
		}
		if am[1] != bm[1] {
			return am[1] < bm[1]
		}
		an, _ := strconv.Atoi(am[2])
		bn, _ := strconv.Atoi(bm[2])
		return an < bn
	})
}
