package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

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

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func TestProductCreate_DerivaPiezasDePallets(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	// 2.5 pallets * 4000 piezas/pallet = 10000 piezas
	product, err := uc.Create(dto.CreateProductRequest{
		Name:             "Botella 500ml",
		Pallets:          decimal.NewFromFloat(2.5),
		PiecesPerPackage: 4000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), product.TotalPieces)
	assert.True(t, product.Pallets.Equal(decimal.NewFromFloat(2.5)), "pallets = %s", product.Pallets)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "", PiecesPerPackage: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "x", PiecesPerPackage: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "x", PiecesPerPackage: 100, Pallets: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductList_BusquedaSinAcentos(t *testing.T) {
	repo := newFakeProductRepo(
		&entity.Product{ID: "1", Name: "Tapón rosca 28mm", PiecesPerPackage: 100},
		&entity.Product{ID: "2", Name: "Botella 500ml", PiecesPerPackage: 100},
	)
	uc := usecase.NewProductUseCase(repo)

	// "tapon" sin acento debe encontrar "Tapón".
	out, err := uc.List("tapon")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tapón rosca 28mm", out[0].Name)

	out, err = uc.List("BOTELLA")
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = uc.List("")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
