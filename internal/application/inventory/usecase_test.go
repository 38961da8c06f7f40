package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

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
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) UpdateQuantities(id string, totalPieces int64, pallets decimal.Decimal) error {
	p := r.products[id]
	p.TotalPieces = totalPieces
	p.Pallets = pallets
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) List(productID string, limit int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if productID == "" || m.ProductID == productID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeTxRunner ejecuta fn con los mismos repos del test, sin transacción real.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.MovementRepository) error) error {
	return fn(tr.productRepo, tr.movRepo)
}

func buildUseCase(products ...*entity.Product) (*inventory.MovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{productRepo: productRepo, movRepo: movRepo}
	return inventory.NewMovementUseCase(tx, productRepo, movRepo), productRepo, movRepo
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:               "prod-1",
		Name:             "Botella 500ml",
		PiecesPerPackage: 4000,
		TotalPieces:      10000,
		Pallets:          decimal.NewFromInt(10000).Div(decimal.NewFromInt(4000)),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaSumaPiezasYRecalculaPallets(t *testing.T) {
	uc, repo, movs := buildUseCase(testProduct())

	updated, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID:      "prod-1",
		UserID:         "user-1",
		Kind:           entity.MovementEntry,
		QuantityPieces: 2000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12000), updated.TotalPieces)
	// 12000 / 4000 = 3 pallets exactos
	assert.True(t, updated.Pallets.Equal(decimal.NewFromInt(3)), "pallets = %s", updated.Pallets)

	stored, _ := repo.GetByID("prod-1")
	assert.Equal(t, int64(12000), stored.TotalPieces)
	require.Len(t, movs.movements, 1)
	assert.Equal(t, entity.MovementEntry, movs.movements[0].Kind)
	assert.Equal(t, "user-1", movs.movements[0].UserID)
}

func TestApplyMovement_SalidaParcialPalletsFraccionarios(t *testing.T) {
	uc, _, _ := buildUseCase(testProduct())

	updated, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID:      "prod-1",
		UserID:         "user-1",
		Kind:           entity.MovementExit,
		QuantityPieces: 2000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(8000), updated.TotalPieces)
	// 8000 / 4000 = 2; una salida más de 2000 dejaría 1.5 pallets
	assert.True(t, updated.Pallets.Equal(decimal.NewFromInt(2)))

	updated, err = uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID:      "prod-1",
		UserID:         "user-1",
		Kind:           entity.MovementExit,
		QuantityPieces: 2000,
	})
	require.NoError(t, err)
	assert.True(t, updated.Pallets.Equal(decimal.NewFromFloat(1.5)), "pallets = %s", updated.Pallets)
}

func TestApplyMovement_SalidaInsuficienteNoModificaNada(t *testing.T) {
	uc, repo, movs := buildUseCase(testProduct())

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID:      "prod-1",
		UserID:         "user-1",
		Kind:           entity.MovementExit,
		QuantityPieces: 10001,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, _ := repo.GetByID("prod-1")
	assert.Equal(t, int64(10000), stored.TotalPieces, "el stock no debe cambiar")
	assert.Empty(t, movs.movements, "no debe registrarse movimiento")
}

func TestApplyMovement_SalidaExactaDejaCero(t *testing.T) {
	uc, _, _ := buildUseCase(testProduct())

	updated, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID:      "prod-1",
		UserID:         "user-1",
		Kind:           entity.MovementExit,
		QuantityPieces: 10000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.TotalPieces)
	assert.True(t, updated.Pallets.IsZero())
}

func TestApplyMovement_Validaciones(t *testing.T) {
	uc, _, _ := buildUseCase(testProduct())
	ctx := context.Background()

	cases := []inventory.MovementInput{
		{ProductID: "", UserID: "u", Kind: entity.MovementEntry, QuantityPieces: 1},
		{ProductID: "prod-1", UserID: "", Kind: entity.MovementEntry, QuantityPieces: 1},
		{ProductID: "prod-1", UserID: "u", Kind: "transfer", QuantityPieces: 1},
		{ProductID: "prod-1", UserID: "u", Kind: entity.MovementEntry, QuantityPieces: 0},
		{ProductID: "prod-1", UserID: "u", Kind: entity.MovementExit, QuantityPieces: -5},
	}
	for _, in := range cases {
		_, err := uc.ApplyMovement(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %+v", in)
	}
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()
	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		ProductID:      "nope",
		UserID:         "user-1",
		Kind:           entity.MovementEntry,
		QuantityPieces: 10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovementFromRequest (conversión de unidades)
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovementFromRequest_UnidadPallets(t *testing.T) {
	uc, _, _ := buildUseCase(testProduct())

	// 0.5 pallets * 4000 piezas/pallet = 2000 piezas
	updated, err := uc.ApplyMovementFromRequest(context.Background(), "prod-1", "user-1", dto.RegisterMovementRequest{
		Kind:     entity.MovementEntry,
		Quantity: decimal.NewFromFloat(0.5),
		Unit:     "pallets",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12000), updated.TotalPieces)
}

func TestApplyMovementFromRequest_PiezasFraccionariasRechazadas(t *testing.T) {
	uc, _, _ := buildUseCase(testProduct())

	_, err := uc.ApplyMovementFromRequest(context.Background(), "prod-1", "user-1", dto.RegisterMovementRequest{
		Kind:     entity.MovementEntry,
		Quantity: decimal.NewFromFloat(10.5),
		Unit:     "pieces",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovementFromRequest_UnidadDesconocida(t *testing.T) {
	uc, _, _ := buildUseCase(testProduct())

	_, err := uc.ApplyMovementFromRequest(context.Background(), "prod-1", "user-1", dto.RegisterMovementRequest{
		Kind:     entity.MovementEntry,
		Quantity: decimal.NewFromInt(10),
		Unit:     "cajas",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovements_LimiteDefecto(t *testing.T) {
	uc, _, movs := buildUseCase(testProduct())
	for i := 0; i < 150; i++ {
		movs.movements = append(movs.movements, &entity.Movement{ID: "m", ProductID: "prod-1"})
	}

	out, err := uc.ListMovements("prod-1", 0)
	require.NoError(t, err)
	assert.Len(t, out, 100)
}
