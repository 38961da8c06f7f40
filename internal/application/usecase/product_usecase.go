package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/textutil"
)

// ProductUseCase alta y consulta de productos. TotalPieces y Pallets solo los
// muta el motor de movimientos después de la creación.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El stock inicial llega en pallets; las piezas se
// derivan de pallets * pieces_per_package redondeando a entero.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.PiecesPerPackage < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Pallets.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	totalPieces := in.Pallets.Mul(decimal.NewFromInt(in.PiecesPerPackage)).Round(0).IntPart()
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Category:         in.Category,
		PiecesPerPackage: in.PiecesPerPackage,
		TotalPieces:      totalPieces,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	product.Pallets = product.PalletsFor(totalPieces)
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve los productos ordenados por nombre, opcionalmente filtrados
// por búsqueda insensible a mayúsculas y acentos.
func (uc *ProductUseCase) List(search string) ([]*entity.Product, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if search == "" {
		return products, nil
	}
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if textutil.ContainsFold(p.Name, search) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
