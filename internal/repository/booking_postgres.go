package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"consultly/internal/domain"
	"consultly/internal/timezone"
)

type BookingRepo struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{db: db}
}

// ListByExpertAndRange возвращает бронирования эксперта с датой в [from, to]
// и одним из переданных статусов.
func (r *BookingRepo) ListByExpertAndRange(ctx context.Context, expertID int64, from, to timezone.LocalDate, statuses []domain.BookingStatus) ([]domain.Booking, error) {
	query := `
		SELECT id, expert_id, date, time, service_id, status
		FROM bookings
		WHERE expert_id = $1
		AND date BETWEEN $2::date AND $3::date
		AND status = ANY($4)
		ORDER BY date, time
	`

	statusValues := make([]string, len(statuses))
	for i, s := range statuses {
		statusValues[i] = string(s)
	}

	rows, err := r.db.Query(ctx, query, expertID, from.String(), to.String(), statusValues)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения бронирований: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		var date time.Time
		var slot, status string

		err := rows.Scan(
			&booking.ID,
			&booking.ExpertID,
			&date,
			&slot,
			&booking.ServiceID,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования бронирования: %w", err)
		}

		booking.Date = timezone.NewLocalDate(date.Year(), date.Month(), date.Day())
		booking.Status = domain.BookingStatus(status)
		if booking.Time, err = timezone.ParseLocalTime(slot); err != nil {
			return nil, fmt.Errorf("бронирование %d: %w", booking.ID, err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по бронированиям: %w", err)
	}

	return bookings, nil
}
