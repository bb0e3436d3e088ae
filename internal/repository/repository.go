package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"consultly/internal/domain"
	"consultly/internal/timezone"
)

const uniqueViolationCode = "23505"

type Repositories struct {
	Expert     ExpertRepository
	WeeklyRule WeeklyRuleRepository
	Exception  ExceptionRepository
	Booking    BookingRepository
	Service    ServiceRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Expert:     NewExpertRepository(db),
		WeeklyRule: NewWeeklyRuleRepository(db),
		Exception:  NewExceptionRepository(db),
		Booking:    NewBookingRepository(db),
		Service:    NewServiceRepository(db),
	}
}

type ExpertRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Expert, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Expert, error)
	UpdateTimezone(ctx context.Context, id int64, tz string) error
}

// WeeklyRuleRepository возвращает правила в порядке создания: при нескольких
// правилах на один день недели действует первое.
type WeeklyRuleRepository interface {
	Create(ctx context.Context, rule domain.WeeklyRule) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.WeeklyRule, error)
	Update(ctx context.Context, rule domain.WeeklyRule) error
	Delete(ctx context.Context, id int64) error
	ListByExpert(ctx context.Context, expertID int64, activeOnly bool) ([]domain.WeeklyRule, error)
}

type ExceptionRepository interface {
	Create(ctx context.Context, exception domain.Exception) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Exception, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ExceptionFilter) ([]domain.Exception, error)
}

type BookingRepository interface {
	ListByExpertAndRange(ctx context.Context, expertID int64, from, to timezone.LocalDate, statuses []domain.BookingStatus) ([]domain.Booking, error)
}

type ServiceRepository interface {
	GetDurations(ctx context.Context, ids []int64) (map[int64]*int, error)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
