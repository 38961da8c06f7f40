package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

type commentKey struct {
	date  time.Time
	shift int
}

type fakeShiftCommentRepo struct {
	comments map[commentKey]*entity.ShiftComment
}

func newFakeShiftCommentRepo() *fakeShiftCommentRepo {
	return &fakeShiftCommentRepo{comments: make(map[commentKey]*entity.ShiftComment)}
}

func (r *fakeShiftCommentRepo) Upsert(c *entity.ShiftComment) error {
	cp := *c
	r.comments[commentKey{date: c.CommentDate, shift: c.ShiftNumber}] = &cp
	return nil
}

func (r *fakeShiftCommentRepo) Get(date time.Time, shiftNumber int) (*entity.ShiftComment, error) {
	c, ok := r.comments[commentKey{date: date, shift: shiftNumber}]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func TestShiftCommentUpsert_ReemplazaSinDuplicar(t *testing.T) {
	repo := newFakeShiftCommentRepo()
	uc := usecase.NewShiftCommentUseCase(repo)

	_, err := uc.Upsert(dto.UpsertShiftCommentRequest{
		CommentDate: "2026-08-29",
		ShiftNumber: 2,
		Comments:    "arranque lento en ISBM 7",
	})
	require.NoError(t, err)

	_, err = uc.Upsert(dto.UpsertShiftCommentRequest{
		CommentDate: "2026-08-29",
		ShiftNumber: 2,
		Comments:    "arranque lento en ISBM 7; se corrigió a las 16h",
	})
	require.NoError(t, err)

	assert.Len(t, repo.comments, 1, "reenviar el mismo (fecha, turno) sobreescribe")

	got, err := uc.Get(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), 2)
	require.NoError(t, err)
	assert.Equal(t, "arranque lento en ISBM 7; se corrigió a las 16h", got.Comments)
}

func TestShiftCommentUpsert_TurnosIndependientes(t *testing.T) {
	repo := newFakeShiftCommentRepo()
	uc := usecase.NewShiftCommentUseCase(repo)

	for shift := 1; shift <= 3; shift++ {
		_, err := uc.Upsert(dto.UpsertShiftCommentRequest{
			CommentDate: "2026-08-29",
			ShiftNumber: shift,
			Comments:    "ok",
		})
		require.NoError(t, err)
	}
	assert.Len(t, repo.comments, 3)
}

func TestShiftCommentUpsert_Validaciones(t *testing.T) {
	uc := usecase.NewShiftCommentUseCase(newFakeShiftCommentRepo())

	_, err := uc.Upsert(dto.UpsertShiftCommentRequest{CommentDate: "2026-08-29", ShiftNumber: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upsert(dto.UpsertShiftCommentRequest{CommentDate: "2026-08-29", ShiftNumber: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upsert(dto.UpsertShiftCommentRequest{CommentDate: "29/08/2026", ShiftNumber: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShiftCommentGet_SinComentario(t *testing.T) {
	uc := usecase.NewShiftCommentUseCase(newFakeShiftCommentRepo())

	_, err := uc.Get(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
