package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consultly/internal/domain"
	"consultly/internal/timezone"
)

type WeeklyRuleRepo struct {
	db *pgxpool.Pool
}

func NewWeeklyRuleRepository(db *pgxpool.Pool) *WeeklyRuleRepo {
	return &WeeklyRuleRepo{db: db}
}

func (r *WeeklyRuleRepo) Create(ctx context.Context, rule domain.WeeklyRule) (int64, error) {
	var id int64

	query := `
		INSERT INTO weekly_rules (
			expert_id, day_of_week, start_time, end_time, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		rule.ExpertID,
		rule.DayOfWeek,
		rule.StartTime.String(),
		rule.EndTime.String(),
		rule.Active,
		rule.CreatedAt,
		rule.UpdatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания правила расписания: %w", err)
	}

	return id, nil
}

func (r *WeeklyRuleRepo) GetByID(ctx context.Context, id int64) (*domain.WeeklyRule, error) {
	query := `
		SELECT id, expert_id, day_of_week, start_time, end_time, active, created_at, updated_at
		FROM weekly_rules
		WHERE id = $1
	`

	rule, err := scanWeeklyRule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("правило расписания с ID %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения правила расписания: %w", err)
	}

	return rule, nil
}

func (r *WeeklyRuleRepo) Update(ctx context.Context, rule domain.WeeklyRule) error {
	query := `
		UPDATE weekly_rules
		SET start_time = $1, end_time = $2, active = $3, updated_at = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		rule.StartTime.String(),
		rule.EndTime.String(),
		rule.Active,
		rule.UpdatedAt,
		rule.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления правила расписания: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("правило расписания с ID %d: %w", rule.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *WeeklyRuleRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM weekly_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления правила расписания: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("правило расписания с ID %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *WeeklyRuleRepo) ListByExpert(ctx context.Context, expertID int64, activeOnly bool) ([]domain.WeeklyRule, error) {
	query := `
		SELECT id, expert_id, day_of_week, start_time, end_time, active, created_at, updated_at
		FROM weekly_rules
		WHERE expert_id = $1 AND ($2 = false OR active = true)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, expertID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения правил расписания: %w", err)
	}
	defer rows.Close()

	rules := make([]domain.WeeklyRule, 0)
	for rows.Next() {
		rule, err := scanWeeklyRule(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования правила расписания: %w", err)
		}
		rules = append(rules, *rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по правилам расписания: %w", err)
	}

	return rules, nil
}

func scanWeeklyRule(row pgx.Row) (*domain.WeeklyRule, error) {
	var rule domain.WeeklyRule
	var start, end string

	err := row.Scan(
		&rule.ID,
		&rule.ExpertID,
		&rule.DayOfWeek,
		&start,
		&end,
		&rule.Active,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rule.StartTime, err = timezone.ParseLocalTime(start); err != nil {
		return nil, err
	}
	if rule.EndTime, err = timezone.ParseLocalTime(end); err != nil {
		return nil, err
	}

	return &rule, nil
}

type ExceptionRepo struct {
	db *pgxpool.Pool
}

func NewExceptionRepository(db *pgxpool.Pool) *ExceptionRepo {
	return &ExceptionRepo{db: db}
}

func (r *ExceptionRepo) Create(ctx context.Context, exception domain.Exception) (int64, error) {
	var id int64

	query := `
		INSERT INTO schedule_exceptions (expert_id, date, reason, created_at)
		VALUES ($1, $2::date, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		exception.ExpertID,
		exception.Date.String(),
		exception.Reason,
		exception.CreatedAt,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("исключение на %s: %w", exception.Date, domain.ErrConflict)
		}
		return 0, fmt.Errorf("ошибка создания исключения расписания: %w", err)
	}

	return id, nil
}

func (r *ExceptionRepo) GetByID(ctx context.Context, id int64) (*domain.Exception, error) {
	query := `
		SELECT id, expert_id, date, reason, created_at
		FROM schedule_exceptions
		WHERE id = $1
	`

	exception, err := scanException(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("исключение расписания с ID %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения исключения расписания: %w", err)
	}

	return exception, nil
}

func (r *ExceptionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM schedule_exceptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления исключения расписания: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("исключение расписания с ID %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *ExceptionRepo) List(ctx context.Context, filter domain.ExceptionFilter) ([]domain.Exception, error) {
	query := `
		SELECT id, expert_id, date, reason, created_at
		FROM schedule_exceptions
		WHERE expert_id = $1
	`

	args := []interface{}{filter.ExpertID}
	argIndex := 2

	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d::date", argIndex)
		args = append(args, filter.From.String())
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d::date", argIndex)
		args = append(args, filter.To.String())
	}

	query += " ORDER BY date"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения исключений расписания: %w", err)
	}
	defer rows.Close()

	exceptions := make([]domain.Exception, 0)
	for rows.Next() {
		exception, err := scanException(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования исключения расписания: %w", err)
		}
		exceptions = append(exceptions, *exception)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по исключениям расписания: %w", err)
	}

	return exceptions, nil
}

func scanException(row pgx.Row) (*domain.Exception, error) {
	var exception domain.Exception
	var date time.Time
	var reason *string

	err := row.Scan(
		&exception.ID,
		&exception.ExpertID,
		&date,
		&reason,
		&exception.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	exception.Date = timezone.NewLocalDate(date.Year(), date.Month(), date.Day())
	if reason != nil {
		exception.Reason = *reason
	}

	return &exception, nil
}
