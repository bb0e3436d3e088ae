package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consultly/internal/domain"
)

type ExpertRepo struct {
	db *pgxpool.Pool
}

func NewExpertRepository(db *pgxpool.Pool) *ExpertRepo {
	return &ExpertRepo{db: db}
}

func (r *ExpertRepo) GetByID(ctx context.Context, id int64) (*domain.Expert, error) {
	query := `
		SELECT id, user_id, timezone, created_at, updated_at
		FROM experts
		WHERE id = $1
	`

	expert, err := scanExpert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("эксперт с ID %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения эксперта: %w", err)
	}

	return expert, nil
}

func (r *ExpertRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Expert, error) {
	query := `
		SELECT id, user_id, timezone, created_at, updated_at
		FROM experts
		WHERE user_id = $1
	`

	expert, err := scanExpert(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("эксперт пользователя %d: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения эксперта: %w", err)
	}

	return expert, nil
}

func (r *ExpertRepo) UpdateTimezone(ctx context.Context, id int64, tz string) error {
	query := `UPDATE experts SET timezone = NULLIF($1, ''), updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, tz, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления часового пояса: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("эксперт с ID %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanExpert(row pgx.Row) (*domain.Expert, error) {
	var expert domain.Expert
	var tz *string

	err := row.Scan(
		&expert.ID,
		&expert.UserID,
		&tz,
		&expert.CreatedAt,
		&expert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tz != nil {
		expert.Timezone = *tz
	}

	return &expert, nil
}
