package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// ShiftCommentUseCase comentarios de turno: a lo sumo uno por (fecha, turno),
// el operador lo upserta al cierre.
type ShiftCommentUseCase struct {
	repo repository.ShiftCommentRepository
}

// NewShiftCommentUseCase construye el caso de uso.
func NewShiftCommentUseCase(repo repository.ShiftCommentRepository) *ShiftCommentUseCase {
	return &ShiftCommentUseCase{repo: repo}
}

// Upsert inserta o reemplaza el comentario del (fecha, turno).
func (uc *ShiftCommentUseCase) Upsert(in dto.UpsertShiftCommentRequest) (*entity.ShiftComment, error) {
	if in.ShiftNumber < 1 || in.ShiftNumber > 3 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.CommentDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	comment := &entity.ShiftComment{
		ID:          uuid.New().String(),
		CommentDate: date,
		ShiftNumber: in.ShiftNumber,
		Comments:    in.Comments,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Upsert(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Get devuelve el comentario del (fecha, turno), o ErrNotFound.
func (uc *ShiftCommentUseCase) Get(date time.Time, shiftNumber int) (*entity.ShiftComment, error) {
	if shiftNumber < 1 || shiftNumber > 3 {
		return nil, domain.ErrInvalidInput
	}
	comment, err := uc.repo.Get(date, shiftNumber)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrNotFound
	}
	return comment, nil
}
