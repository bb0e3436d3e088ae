package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"consultly/config"
	"consultly/internal/availability"
	"consultly/internal/domain"
	"consultly/internal/repository"
	"consultly/internal/timezone"
)

// repositorySource читает входные данные калькулятора из репозиториев.
type repositorySource struct {
	repos *repository.Repositories
}

func (s repositorySource) ExpertTimezone(ctx context.Context, expertID int64) (string, error) {
	expert, err := s.repos.Expert.GetByID(ctx, expertID)
	if err != nil {
		return "", err
	}
	return expert.Timezone, nil
}

func (s repositorySource) ActiveWeeklyRules(ctx context.Context, expertID int64) ([]domain.WeeklyRule, error) {
	return s.repos.WeeklyRule.ListByExpert(ctx, expertID, true)
}

func (s repositorySource) Exceptions(ctx context.Context, expertID int64, from, to timezone.LocalDate) ([]domain.Exception, error) {
	return s.repos.Exception.List(ctx, domain.ExceptionFilter{ExpertID: expertID, From: &from, To: &to})
}

func (s repositorySource) BlockingBookings(ctx context.Context, expertID int64, from, to timezone.LocalDate) ([]domain.Booking, error) {
	return s.repos.Booking.ListByExpertAndRange(ctx, expertID, from, to, domain.BlockingBookingStatuses())
}

func (s repositorySource) ServiceDurations(ctx context.Context, serviceIDs []int64) (map[int64]*int, error) {
	return s.repos.Service.GetDurations(ctx, serviceIDs)
}

type AvailabilityServiceImpl struct {
	calculator      *availability.Calculator
	defaultDuration int
	logger          *zap.Logger
}

func NewAvailabilityService(repos *repository.Repositories, cache availability.Cache, cfg config.AvailabilityConfig, logger *zap.Logger) *AvailabilityServiceImpl {
	return newAvailabilityService(repos, cache, cfg, logger, time.Now)
}

func newAvailabilityService(repos *repository.Repositories, cache availability.Cache, cfg config.AvailabilityConfig, logger *zap.Logger, now func() time.Time) *AvailabilityServiceImpl {
	calculator := availability.NewCalculator(repositorySource{repos: repos}, cache, logger, availability.CalculatorConfig{
		DefaultServiceDuration: cfg.DefaultServiceDuration,
		ReadThrough:            cfg.CacheRead,
		Now:                    now,
	})

	defaultDuration := cfg.DefaultServiceDuration
	if defaultDuration <= 0 {
		defaultDuration = availability.DefaultServiceDuration
	}

	return &AvailabilityServiceImpl{
		calculator:      calculator,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// GetMonth возвращает сетку доступности на месяц. Нулевая длительность
// заменяется длительностью по умолчанию.
func (s *AvailabilityServiceImpl) GetMonth(ctx context.Context, expertID int64, year int, month int, durationMinutes int) ([]domain.DayAvailability, error) {
	if durationMinutes == 0 {
		durationMinutes = s.defaultDuration
	}

	days, err := s.calculator.Compute(ctx, domain.AvailabilityRequest{
		ExpertID:               expertID,
		Year:                   year,
		Month:                  time.Month(month),
		ServiceDurationMinutes: durationMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка расчета доступности: %w", err)
	}

	return days, nil
}

func (s *AvailabilityServiceImpl) GetDay(ctx context.Context, expertID int64, date timezone.LocalDate, durationMinutes int) (*domain.DayAvailability, error) {
	days, err := s.GetMonth(ctx, expertID, date.Year, int(date.Month), durationMinutes)
	if err != nil {
		return nil, err
	}

	for i := range days {
		if days[i].Date == date {
			return &days[i], nil
		}
	}

	return nil, fmt.Errorf("день %s: %w", date, domain.ErrNotFound)
}
