package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.ShiftCommentRepository = (*ShiftCommentRepo)(nil)

// ShiftCommentRepo persistencia de comentarios de turno.
type ShiftCommentRepo struct {
	q Querier
}

func NewShiftCommentRepository(q Querier) *ShiftCommentRepo {
	return &ShiftCommentRepo{q: q}
}

// Upsert inserta o reemplaza el comentario del (fecha, turno). La restricción
// de unicidad hace que el reenvío sobreescriba en vez de duplicar.
func (r *ShiftCommentRepo) Upsert(comment *entity.ShiftComment) error {
	query := `
		INSERT INTO shift_comments (id, comment_date, shift_number, comments, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (comment_date, shift_number)
		DO UPDATE SET comments = EXCLUDED.comments, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		comment.ID, comment.CommentDate, comment.ShiftNumber, comment.Comments, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert shift comment: %w", err)
	}
	return nil
}

func (r *ShiftCommentRepo) Get(date time.Time, shiftNumber int) (*entity.ShiftComment, error) {
	query := `
		SELECT id, comment_date, shift_number, comments, updated_at
		FROM shift_comments
		WHERE comment_date = $1 AND shift_number = $2`
	var c entity.ShiftComment
	err := r.q.QueryRow(context.Background(), query, date, shiftNumber).Scan(
		&c.ID, &c.CommentDate, &c.ShiftNumber, &c.Comments, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift comment: %w", err)
	}
	return &c, nil
}
