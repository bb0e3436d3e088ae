package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepo struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{db: db}
}

// GetDurations возвращает длительности услуг по ID. Для услуги без
// длительности значение nil; отсутствующие услуги в результат не попадают.
func (r *ServiceRepo) GetDurations(ctx context.Context, ids []int64) (map[int64]*int, error) {
	durations := make(map[int64]*int, len(ids))
	if len(ids) == 0 {
		return durations, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, duration_minutes FROM services WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения длительностей услуг: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var duration *int
		if err := rows.Scan(&id, &duration); err != nil {
			return nil, fmt.Errorf("ошибка сканирования услуги: %w", err)
		}
		durations[id] = duration
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по услугам: %w", err)
	}

	return durations, nil
}
