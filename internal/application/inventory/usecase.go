package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// MovementUseCase aplica entradas y salidas de inventario de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// La salida que dejaría el stock negativo falla sin tocar el producto.
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// MovementInput entrada ya normalizada a piezas para aplicar un movimiento.
type MovementInput struct {
	ProductID      string
	UserID         string
	Kind           string // entry | exit
	QuantityPieces int64  // > 0
}

// ApplyMovement inicia una transacción, bloquea la fila del producto, calcula
// el nuevo total y los pallets derivados, y persiste producto y movimiento en
// la misma transacción. Devuelve el producto actualizado.
//
// No es idempotente: llamadas repetidas idénticas crean movimientos distintos.
// La protección contra doble envío, si se quiere, es del caller.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.Product, error) {
	if input.ProductID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Kind != entity.MovementEntry && input.Kind != entity.MovementExit {
		return nil, domain.ErrInvalidInput
	}
	if input.QuantityPieces <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.Product

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del producto para todo el read-modify-write.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newTotal := product.TotalPieces + input.QuantityPieces
		if input.Kind == entity.MovementExit {
			newTotal = product.TotalPieces - input.QuantityPieces
		}
		if newTotal < 0 {
			return domain.ErrInsufficientStock
		}
		newPallets := product.PalletsFor(newTotal)

		if err := productRepo.UpdateQuantities(product.ID, newTotal, newPallets); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			UserID:         input.UserID,
			Kind:           input.Kind,
			QuantityPieces: input.QuantityPieces,
			CreatedAt:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		product.TotalPieces = newTotal
		product.Pallets = newPallets
		product.UpdatedAt = now
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ApplyMovementFromRequest adapta el request HTTP a ApplyMovement: convierte
// pallets a piezas enteras (redondeo al entero más cercano, como la captura de
// piso) y valida que la cantidad en piezas sea un entero positivo.
// PiecesPerPackage es inmutable por producto, así que leerlo fuera de la
// transacción no introduce carrera.
func (uc *MovementUseCase) ApplyMovementFromRequest(ctx context.Context, productID, userID string, in dto.RegisterMovementRequest) (*entity.Product, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var pieces decimal.Decimal
	switch in.Unit {
	case "", "pieces":
		pieces = in.Quantity
		if !pieces.Equal(pieces.Truncate(0)) {
			return nil, domain.ErrInvalidInput
		}
	case "pallets":
		pieces = in.Quantity.Mul(decimal.NewFromInt(product.PiecesPerPackage)).Round(0)
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.ApplyMovement(ctx, MovementInput{
		ProductID:      productID,
		UserID:         userID,
		Kind:           in.Kind,
		QuantityPieces: pieces.IntPart(),
	})
}

// ListMovements devuelve el historial de movimientos, created_at descendente.
// productID vacío lista todos; limit <= 0 usa 100 (tope de la vista de
// historial).
func (uc *MovementUseCase) ListMovements(productID string, limit int) ([]*entity.Movement, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.movRepo.List(productID, limit)
}
