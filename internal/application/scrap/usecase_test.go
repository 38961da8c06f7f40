package scrap_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/scrap"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeScrapRepo struct {
	records map[string]*entity.ScrapRecord
}

func newFakeScrapRepo() *fakeScrapRepo {
	return &fakeScrapRepo{records: make(map[string]*entity.ScrapRecord)}
}

func (r *fakeScrapRepo) Create(rec *entity.ScrapRecord) error {
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *fakeScrapRepo) GetByID(id string) (*entity.ScrapRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeScrapRepo) Update(rec *entity.ScrapRecord) error {
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *fakeScrapRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

func (r *fakeScrapRepo) ListForDate(date time.Time) ([]*entity.ScrapRecord, error) {
	var out []*entity.ScrapRecord
	for _, rec := range r.records {
		if rec.RecordDate.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) UpdateQuantities(id string, totalPieces int64, pallets decimal.Decimal) error {
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }

func kg(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// ──────────────────────────────────────────────────────────────────────────────
// Registro y corrección
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_PersisteConFechaTruncada(t *testing.T) {
	uc := scrap.NewUseCase(newFakeScrapRepo(), newFakeProductRepo())

	rec, err := uc.Record("user-1", dto.RecordScrapRequest{
		MachineName: "ISBM 5",
		ScrapType:   entity.ScrapTypePlasta,
		QuantityKg:  kg(12.5),
		RecordDate:  "2026-08-29",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), rec.RecordDate)
	assert.Equal(t, "user-1", rec.UserID)
}

func TestRecord_TipoInvalido(t *testing.T) {
	uc := scrap.NewUseCase(newFakeScrapRepo(), newFakeProductRepo())

	_, err := uc.Record("user-1", dto.RecordScrapRequest{
		MachineName: "ISBM 5",
		ScrapType:   "MERMA",
		QuantityKg:  kg(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_CantidadNoPositiva(t *testing.T) {
	uc := scrap.NewUseCase(newFakeScrapRepo(), newFakeProductRepo())

	for _, q := range []decimal.Decimal{decimal.Zero, kg(-3)} {
		_, err := uc.Record("user-1", dto.RecordScrapRequest{
			MachineName: "ISBM 5",
			ScrapType:   entity.ScrapTypeScrap,
			QuantityKg:  q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRecord_ProductoInexistente(t *testing.T) {
	uc := scrap.NewUseCase(newFakeScrapRepo(), newFakeProductRepo())

	productID := "nope"
	_, err := uc.Record("user-1", dto.RecordScrapRequest{
		MachineName: "ISBM 5",
		ProductID:   &productID,
		ScrapType:   entity.ScrapTypeScrap,
		QuantityKg:  kg(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_SobreescribeEnSitio(t *testing.T) {
	repo := newFakeScrapRepo()
	uc := scrap.NewUseCase(repo, newFakeProductRepo())

	rec, err := uc.Record("user-1", dto.RecordScrapRequest{
		MachineName: "ISBM 5",
		ScrapType:   entity.ScrapTypeScrap,
		QuantityKg:  kg(10),
		RecordDate:  "2026-08-29",
	})
	require.NoError(t, err)

	updated, err := uc.Update(rec.ID, dto.UpdateScrapRequest{
		MachineName: "ISBM 6",
		ScrapType:   entity.ScrapTypePurga,
		QuantityKg:  kg(7.25),
	})
	require.NoError(t, err)

	assert.Equal(t, rec.ID, updated.ID, "misma fila, no un nuevo registro")
	assert.Equal(t, "ISBM 6", updated.MachineName)
	assert.Equal(t, entity.ScrapTypePurga, updated.ScrapType)
	assert.True(t, updated.QuantityKg.Equal(kg(7.25)))
	assert.Equal(t, rec.RecordDate, updated.RecordDate, "la fecha original no cambia")
	assert.Equal(t, "user-1", updated.UserID, "el autor original no cambia")
	assert.Len(t, repo.records, 1)
}

func TestDelete_EliminaLaFila(t *testing.T) {
	repo := newFakeScrapRepo()
	uc := scrap.NewUseCase(repo, newFakeProductRepo())

	rec, err := uc.Record("user-1", dto.RecordScrapRequest{
		MachineName: "ISBM 5",
		ScrapType:   entity.ScrapTypeScrap,
		QuantityKg:  kg(10),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(rec.ID))
	assert.Empty(t, repo.records)
	assert.ErrorIs(t, uc.Delete(rec.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen diario
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_AgrupaPorMaquinaYTipo(t *testing.T) {
	uc := scrap.NewUseCase(newFakeScrapRepo(), newFakeProductRepo())

	seed := []dto.RecordScrapRequest{
		{MachineName: "ISBM 5", ScrapType: entity.ScrapTypeScrap, QuantityKg: kg(10), RecordDate: "2026-08-29"},
		{MachineName: "ISBM 5", ScrapType: entity.ScrapTypeScrap, QuantityKg: kg(2.5), RecordDate: "2026-08-29"},
		{MachineName: "ISBM 5", ScrapType: entity.ScrapTypePlasta, QuantityKg: kg(4), RecordDate: "2026-08-29"},
		{MachineName: "INY 2", ScrapType: entity.ScrapTypePreforma, QuantityKg: kg(8), RecordDate: "2026-08-29"},
		// Otra fecha: no debe aparecer en el resumen del 29.
		{MachineName: "INY 2", ScrapType: entity.ScrapTypePurga, QuantityKg: kg(99), RecordDate: "2026-08-28"},
	}
	for _, in := range seed {
		_, err := uc.Record("user-1", in)
		require.NoError(t, err)
	}

	summary, err := uc.Summarize(time.Date(2026, 8, 29, 15, 4, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-29", summary.Date)
	require.Len(t, summary.Machines, 2)

	// Orden alfabético por máquina.
	iny := summary.Machines[0]
	isbm := summary.Machines[1]
	assert.Equal(t, "INY 2", iny.MachineName)
	assert.True(t, iny.Preforma.Equal(kg(8)))
	assert.True(t, iny.Total.Equal(kg(8)))

	assert.Equal(t, "ISBM 5", isbm.MachineName)
	assert.True(t, isbm.Scrap.Equal(kg(12.5)))
	assert.True(t, isbm.Plasta.Equal(kg(4)))
	assert.True(t, isbm.Purga.IsZero())
	assert.True(t, isbm.Total.Equal(kg(16.5)))

	assert.True(t, summary.GrandTotal.Equal(kg(24.5)), "grand total = %s", summary.GrandTotal)
}

func TestSummarize_FechaSinRegistros(t *testing.T) {
	uc := scrap.NewUseCase(newFakeScrapRepo(), newFakeProductRepo())

	summary, err := uc.Summarize(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, summary.Machines)
	assert.True(t, summary.GrandTotal.IsZero())
}
