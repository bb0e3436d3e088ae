package service

import (
	"context"

	"go.uber.org/zap"

	"consultly/config"
	"consultly/internal/availability"
	"consultly/internal/domain"
	"consultly/internal/repository"
	"consultly/internal/timezone"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
	Cache  availability.Cache
}

type Services struct {
	Availability AvailabilityService
	Schedule     ScheduleService
	Auth         AuthService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Availability: NewAvailabilityService(deps.Repos, deps.Cache, deps.Config.Availability, deps.Logger),
		Schedule:     NewScheduleService(deps.Repos.WeeklyRule, deps.Repos.Exception, deps.Repos.Expert, deps.Logger),
		Auth:         NewAuthService(deps.Config.JWT, deps.Logger),
	}
}

type AvailabilityService interface {
	GetMonth(ctx context.Context, expertID int64, year int, month int, durationMinutes int) ([]domain.DayAvailability, error)
	GetDay(ctx context.Context, expertID int64, date timezone.LocalDate, durationMinutes int) (*domain.DayAvailability, error)
}

type ScheduleService interface {
	CreateRule(ctx context.Context, expertID int64, dto domain.CreateWeeklyRuleDTO) (int64, error)
	GetRule(ctx context.Context, expertID, ruleID int64) (*domain.WeeklyRule, error)
	UpdateRule(ctx context.Context, expertID, ruleID int64, dto domain.UpdateWeeklyRuleDTO) error
	DeleteRule(ctx context.Context, expertID, ruleID int64) error
	ListRules(ctx context.Context, expertID int64) ([]domain.WeeklyRule, error)

	CreateException(ctx context.Context, expertID int64, dto domain.CreateExceptionDTO) (int64, error)
	DeleteException(ctx context.Context, expertID, exceptionID int64) error
	ListExceptions(ctx context.Context, filter domain.ExceptionFilter) ([]domain.Exception, error)

	UpdateTimezone(ctx context.Context, expertID int64, dto domain.UpdateTimezoneDTO) error
	GetExpertByUserID(ctx context.Context, userID int64) (*domain.Expert, error)
}

type AuthService interface {
	ParseToken(ctx context.Context, token string) (*domain.Principal, error)
}
