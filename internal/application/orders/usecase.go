package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// UseCase ciclo de vida de órdenes de producción: se crean pendientes, se
// completan una sola vez y se pueden eliminar en cualquier estado (sin
// protección de estado terminal; decisión heredada del flujo de piso).
type UseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo, productRepo: productRepo}
}

// Create valida y persiste una orden en estado pending.
func (uc *UseCase) Create(userID string, in dto.CreateOrderRequest) (*entity.ProductionOrder, error) {
	if in.ProductID == "" || in.MachineName == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.QuantityOrdered.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	order := &entity.ProductionOrder{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		QuantityOrdered: in.QuantityOrdered,
		MachineName:     in.MachineName,
		Status:          entity.OrderPending,
		Notes:           in.Notes,
		UserID:          userID,
		CreatedAt:       time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Complete marca la orden como completada y sella completed_at. Completar una
// orden ya completada falla con ErrInvalidTransition.
func (uc *UseCase) Complete(id string) (*entity.ProductionOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderPending {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if err := uc.orderRepo.Complete(id, now); err != nil {
		return nil, err
	}
	order.Status = entity.OrderCompleted
	order.CompletedAt = &now
	return order, nil
}

// Delete elimina la orden sin importar su estado.
func (uc *UseCase) Delete(id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

// ListByStatus lista órdenes por estado ("pending", "completed" o "all"/vacío),
// created_at descendente.
func (uc *UseCase) ListByStatus(status string) ([]*entity.ProductionOrder, error) {
	switch status {
	case "", "all":
		status = ""
	case entity.OrderPending, entity.OrderCompleted:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.ListByStatus(status)
}
