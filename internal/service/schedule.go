package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"consultly/internal/domain"
	"consultly/internal/repository"
	"consultly/internal/timezone"
	"consultly/pkg/validator"
)

type ScheduleServiceImpl struct {
	ruleRepo      repository.WeeklyRuleRepository
	exceptionRepo repository.ExceptionRepository
	expertRepo    repository.ExpertRepository
	logger        *zap.Logger
	now           func() time.Time
}

func NewScheduleService(
	ruleRepo repository.WeeklyRuleRepository,
	exceptionRepo repository.ExceptionRepository,
	expertRepo repository.ExpertRepository,
	logger *zap.Logger,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		ruleRepo:      ruleRepo,
		exceptionRepo: exceptionRepo,
		expertRepo:    expertRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *ScheduleServiceImpl) CreateRule(ctx context.Context, expertID int64, dto domain.CreateWeeklyRuleDTO) (int64, error) {
	if dto.DayOfWeek == nil || !validator.ValidateDayOfWeek(*dto.DayOfWeek) {
		return 0, fmt.Errorf("%w: день недели должен быть от 0 до 6", domain.ErrInvalidArgument)
	}

	start, end, err := parseWindow(dto.StartTime, dto.EndTime)
	if err != nil {
		return 0, err
	}

	active := true
	if dto.Active != nil {
		active = *dto.Active
	}

	now := s.now()
	rule := domain.WeeklyRule{
		ExpertID:  expertID,
		DayOfWeek: *dto.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("ошибка создания правила расписания", zap.Int64("expert_id", expertID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("создано правило расписания",
		zap.Int64("expert_id", expertID),
		zap.Int64("rule_id", id),
		zap.Int("day_of_week", rule.DayOfWeek),
		zap.String("start_time", start.String()),
		zap.String("end_time", end.String()),
	)

	return id, nil
}

func (s *ScheduleServiceImpl) GetRule(ctx context.Context, expertID, ruleID int64) (*domain.WeeklyRule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	if rule.ExpertID != expertID {
		return nil, fmt.Errorf("правило %d принадлежит другому эксперту: %w", ruleID, domain.ErrForbidden)
	}

	return rule, nil
}

func (s *ScheduleServiceImpl) UpdateRule(ctx context.Context, expertID, ruleID int64, dto domain.UpdateWeeklyRuleDTO) error {
	rule, err := s.GetRule(ctx, expertID, ruleID)
	if err != nil {
		return err
	}

	startRaw := rule.StartTime.String()
	if dto.StartTime != nil {
		startRaw = *dto.StartTime
	}
	endRaw := rule.EndTime.String()
	if dto.EndTime != nil {
		endRaw = *dto.EndTime
	}

	start, end, err := parseWindow(startRaw, endRaw)
	if err != nil {
		return err
	}

	rule.StartTime = start
	rule.EndTime = end
	if dto.Active != nil {
		rule.Active = *dto.Active
	}
	rule.UpdatedAt = s.now()

	if err := s.ruleRepo.Update(ctx, *rule); err != nil {
		s.logger.Error("ошибка обновления правила расписания", zap.Int64("rule_id", ruleID), zap.Error(err))
		return err
	}

	return nil
}

func (s *ScheduleServiceImpl) DeleteRule(ctx context.Context, expertID, ruleID int64) error {
	if _, err := s.GetRule(ctx, expertID, ruleID); err != nil {
		return err
	}

	if err := s.ruleRepo.Delete(ctx, ruleID); err != nil {
		s.logger.Error("ошибка удаления правила расписания", zap.Int64("rule_id", ruleID), zap.Error(err))
		return err
	}

	return nil
}

func (s *ScheduleServiceImpl) ListRules(ctx context.Context, expertID int64) ([]domain.WeeklyRule, error) {
	if _, err := s.expertRepo.GetByID(ctx, expertID); err != nil {
		return nil, err
	}

	return s.ruleRepo.ListByExpert(ctx, expertID, false)
}

func (s *ScheduleServiceImpl) CreateException(ctx context.Context, expertID int64, dto domain.CreateExceptionDTO) (int64, error) {
	if !validator.ValidateDate(dto.Date) {
		return 0, fmt.Errorf("%w: неверный формат даты %q, ожидается YYYY-MM-DD", domain.ErrInvalidArgument, dto.Date)
	}

	date, err := timezone.ParseLocalDate(dto.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	reason := validator.SanitizeString(dto.Reason)
	if !validator.ValidateReason(reason) {
		return 0, fmt.Errorf("%w: причина слишком длинная", domain.ErrInvalidArgument)
	}

	exception := domain.Exception{
		ExpertID:  expertID,
		Date:      date,
		Reason:    reason,
		CreatedAt: s.now(),
	}

	id, err := s.exceptionRepo.Create(ctx, exception)
	if err != nil {
		s.logger.Error("ошибка создания исключения расписания",
			zap.Int64("expert_id", expertID),
			zap.String("date", date.String()),
			zap.Error(err),
		)
		return 0, err
	}

	return id, nil
}

func (s *ScheduleServiceImpl) DeleteException(ctx context.Context, expertID, exceptionID int64) error {
	exception, err := s.exceptionRepo.GetByID(ctx, exceptionID)
	if err != nil {
		return err
	}

	if exception.ExpertID != expertID {
		return fmt.Errorf("исключение %d принадлежит другому эксперту: %w", exceptionID, domain.ErrForbidden)
	}

	if err := s.exceptionRepo.Delete(ctx, exceptionID); err != nil {
		s.logger.Error("ошибка удаления исключения расписания", zap.Int64("exception_id", exceptionID), zap.Error(err))
		return err
	}

	return nil
}

func (s *ScheduleServiceImpl) ListExceptions(ctx context.Context, filter domain.ExceptionFilter) ([]domain.Exception, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: конец периода раньше начала", domain.ErrInvalidArgument)
	}

	return s.exceptionRepo.List(ctx, filter)
}

// UpdateTimezone сохраняет часовой пояс эксперта. Пустое значение означает UTC.
func (s *ScheduleServiceImpl) UpdateTimezone(ctx context.Context, expertID int64, dto domain.UpdateTimezoneDTO) error {
	name := strings.TrimSpace(dto.Timezone)
	if _, err := timezone.LoadZone(name); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	if err := s.expertRepo.UpdateTimezone(ctx, expertID, name); err != nil {
		s.logger.Error("ошибка обновления часового пояса", zap.Int64("expert_id", expertID), zap.Error(err))
		return err
	}

	s.logger.Info("обновлен часовой пояс эксперта", zap.Int64("expert_id", expertID), zap.String("timezone", name))
	return nil
}

func (s *ScheduleServiceImpl) GetExpertByUserID(ctx context.Context, userID int64) (*domain.Expert, error) {
	return s.expertRepo.GetByUserID(ctx, userID)
}

func parseWindow(startRaw, endRaw string) (timezone.LocalTime, timezone.LocalTime, error) {
	if !validator.ValidateTime(startRaw) {
		return 0, 0, fmt.Errorf("%w: неверный формат времени начала %q, ожидается HH:MM", domain.ErrInvalidArgument, startRaw)
	}
	if !validator.ValidateTime(endRaw) {
		return 0, 0, fmt.Errorf("%w: неверный формат времени окончания %q, ожидается HH:MM", domain.ErrInvalidArgument, endRaw)
	}

	start, err := timezone.ParseLocalTime(startRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	end, err := timezone.ParseLocalTime(endRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	if start >= end {
		return 0, 0, fmt.Errorf("%w: время начала должно быть раньше времени окончания", domain.ErrInvalidArgument)
	}

	return start, end, nil
}
