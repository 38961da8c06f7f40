package scrap

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// UseCase administra la bitácora de scrap: registros inmutables en su
// semántica de producción, pero con corrección administrativa en sitio
// (editar sobreescribe, borrar elimina la fila). El resumen diario es una
// agregación pura recalculada en cada lectura, sin vista materializada.
type UseCase struct {
	scrapRepo   repository.ScrapRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(scrapRepo repository.ScrapRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{scrapRepo: scrapRepo, productRepo: productRepo}
}

// Record valida y persiste un nuevo registro de scrap.
func (uc *UseCase) Record(userID string, in dto.RecordScrapRequest) (*entity.ScrapRecord, error) {
	if in.MachineName == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidScrapType(in.ScrapType) {
		return nil, domain.ErrInvalidInput
	}
	if !in.QuantityKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	productID, err := uc.resolveProduct(in.ProductID)
	if err != nil {
		return nil, err
	}

	recordDate := time.Now()
	if in.RecordDate != "" {
		recordDate, err = time.Parse("2006-01-02", in.RecordDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	record := &entity.ScrapRecord{
		ID:          uuid.New().String(),
		MachineName: in.MachineName,
		ProductID:   productID,
		ScrapType:   in.ScrapType,
		QuantityKg:  in.QuantityKg,
		RecordDate:  truncateDate(recordDate),
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.scrapRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update sobreescribe los campos corregibles de un registro existente con un
// nuevo valor validado. Corrección administrativa: misma fila, no un nuevo
// append.
func (uc *UseCase) Update(id string, in dto.UpdateScrapRequest) (*entity.ScrapRecord, error) {
	if in.MachineName == "" || !entity.ValidScrapType(in.ScrapType) {
		return nil, domain.ErrInvalidInput
	}
	if !in.QuantityKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	record, err := uc.scrapRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	productID, err := uc.resolveProduct(in.ProductID)
	if err != nil {
		return nil, err
	}

	record.MachineName = in.MachineName
	record.ProductID = productID
	record.ScrapType = in.ScrapType
	record.QuantityKg = in.QuantityKg
	if err := uc.scrapRepo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete elimina la fila del registro.
func (uc *UseCase) Delete(id string) error {
	record, err := uc.scrapRepo.GetByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.scrapRepo.Delete(id)
}

// ListForDate devuelve los registros de la fecha, created_at descendente.
func (uc *UseCase) ListForDate(date time.Time) ([]*entity.ScrapRecord, error) {
	return uc.scrapRepo.ListForDate(truncateDate(date))
}

// Summarize agrupa los registros de la fecha por máquina acumulando
// subtotales por tipo y total por máquina. El gran total es la suma de
// quantity_kg de todas las filas de la fecha.
func (uc *UseCase) Summarize(date time.Time) (*dto.ScrapSummaryResponse, error) {
	records, err := uc.scrapRepo.ListForDate(truncateDate(date))
	if err != nil {
		return nil, err
	}

	byMachine := make(map[string]*dto.MachineScrapSummary)
	grandTotal := decimal.Zero
	for _, r := range records {
		s, ok := byMachine[r.MachineName]
		if !ok {
			s = &dto.MachineScrapSummary{
				MachineName: r.MachineName,
				Scrap:       decimal.Zero,
				Plasta:      decimal.Zero,
				Purga:       decimal.Zero,
				Preforma:    decimal.Zero,
				Total:       decimal.Zero,
			}
			byMachine[r.MachineName] = s
		}
		switch r.ScrapType {
		case entity.ScrapTypeScrap:
			s.Scrap = s.Scrap.Add(r.QuantityKg)
		case entity.ScrapTypePlasta:
			s.Plasta = s.Plasta.Add(r.QuantityKg)
		case entity.ScrapTypePurga:
			s.Purga = s.Purga.Add(r.QuantityKg)
		case entity.ScrapTypePreforma:
			s.Preforma = s.Preforma.Add(r.QuantityKg)
		}
		s.Total = s.Total.Add(r.QuantityKg)
		grandTotal = grandTotal.Add(r.QuantityKg)
	}

	machines := make([]dto.MachineScrapSummary, 0, len(byMachine))
	for _, s := range byMachine {
		machines = append(machines, *s)
	}
	sort.Slice(machines, func(i, j int) bool {
		return machines[i].MachineName < machines[j].MachineName
	})

	return &dto.ScrapSummaryResponse{
		Date:       truncateDate(date).Format("2006-01-02"),
		Machines:   machines,
		GrandTotal: grandTotal,
	}, nil
}

func (uc *UseCase) resolveProduct(productID *string) (*string, error) {
	if productID == nil || *productID == "" {
		return nil, nil
	}
	product, err := uc.productRepo.GetByID(*productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return productID, nil
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
