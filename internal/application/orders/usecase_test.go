package orders_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/orders"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders      map[string]*entity.ProductionOrder
	beforeWrite func() // simula un escritor concurrente entre la lectura y el UPDATE
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.ProductionOrder)}
}

func (r *fakeOrderRepo) Create(o *entity.ProductionOrder) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.ProductionOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

// Complete replica el contrato del adaptador real: la escritura está
// condicionada al status pending y falla si otro escritor llegó primero.
func (r *fakeOrderRepo) Complete(id string, completedAt time.Time) error {
	if r.beforeWrite != nil {
		r.beforeWrite()
	}
	o := r.orders[id]
	if o.Status != entity.OrderPending {
		return domain.ErrInvalidTransition
	}
	o.Status = entity.OrderCompleted
	o.CompletedAt = &completedAt
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) ListByStatus(status string) ([]*entity.ProductionOrder, error) {
	var out []*entity.ProductionOrder
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
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

func buildUseCase() (*orders.UseCase, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(&entity.Product{ID: "prod-1", Name: "Botella", PiecesPerPackage: 100})
	return orders.NewUseCase(orderRepo, productRepo), orderRepo
}

func createPending(t *testing.T, uc *orders.UseCase) *entity.ProductionOrder {
	t.Helper()
	order, err := uc.Create("user-1", dto.CreateOrderRequest{
		ProductID:       "prod-1",
		QuantityOrdered: decimal.NewFromInt(5000),
		MachineName:     "ISBM 5",
	})
	require.NoError(t, err)
	require.Equal(t, entity.OrderPending, order.Status)
	require.Nil(t, order.CompletedAt)
	return order
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ValidaProductoYCantidad(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Create("user-1", dto.CreateOrderRequest{
		ProductID:       "prod-1",
		QuantityOrdered: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("user-1", dto.CreateOrderRequest{
		ProductID:       "nope",
		QuantityOrdered: decimal.NewFromInt(10),
		MachineName:     "ISBM 5",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComplete_TransicionUnica(t *testing.T) {
	uc, repo := buildUseCase()
	order := createPending(t, uc)

	completed, err := uc.Complete(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	stored, _ := repo.GetByID(order.ID)
	assert.Equal(t, entity.OrderCompleted, stored.Status)
}

func TestComplete_DosVecesFalla(t *testing.T) {
	uc, _ := buildUseCase()
	order := createPending(t, uc)

	_, err := uc.Complete(order.ID)
	require.NoError(t, err)

	_, err = uc.Complete(order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestComplete_CarreraConOtroCompletadoNoPisaSello(t *testing.T) {
	uc, repo := buildUseCase()
	order := createPending(t, uc)

	// Otro escritor completa la orden después de nuestra lectura pero antes
	// de nuestra escritura; el segundo completado debe fallar sin tocar el sello.
	sello := time.Now().Add(-time.Minute)
	repo.beforeWrite = func() {
		repo.beforeWrite = nil
		stored := repo.orders[order.ID]
		stored.Status = entity.OrderCompleted
		stored.CompletedAt = &sello
	}

	_, err := uc.Complete(order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, _ := repo.GetByID(order.ID)
	require.NotNil(t, stored.CompletedAt)
	assert.True(t, stored.CompletedAt.Equal(sello), "completed_at no debe sobrescribirse")
}

func TestComplete_OrdenInexistente(t *testing.T) {
	uc, _ := buildUseCase()
	_, err := uc.Complete("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_CualquierEstado(t *testing.T) {
	uc, repo := buildUseCase()

	pending := createPending(t, uc)
	completed := createPending(t, uc)
	_, err := uc.Complete(completed.ID)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(pending.ID))
	require.NoError(t, uc.Delete(completed.ID), "las completadas también se borran")
	assert.Empty(t, repo.orders)
}

func TestListByStatus_Filtros(t *testing.T) {
	uc, _ := buildUseCase()

	createPending(t, uc)
	done := createPending(t, uc)
	_, err := uc.Complete(done.ID)
	require.NoError(t, err)

	pending, err := uc.ListByStatus(entity.OrderPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := uc.ListByStatus("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	all, err = uc.ListByStatus("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.ListByStatus("cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
