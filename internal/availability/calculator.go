package availability

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"consultly/internal/domain"
	"consultly/internal/timezone"
)

const DefaultServiceDuration = 60

// Source отдает входные данные расчета. Реализация читает их из хранилища.
type Source interface {
	ExpertTimezone(ctx context.Context, expertID int64) (string, error)
	ActiveWeeklyRules(ctx context.Context, expertID int64) ([]domain.WeeklyRule, error)
	Exceptions(ctx context.Context, expertID int64, from, to timezone.LocalDate) ([]domain.Exception, error)
	BlockingBookings(ctx context.Context, expertID int64, from, to timezone.LocalDate) ([]domain.Booking, error)
	ServiceDurations(ctx context.Context, serviceIDs []int64) (map[int64]*int, error)
}

type CalculatorConfig struct {
	// DefaultServiceDuration подставляется, если у услуги нет длительности.
	DefaultServiceDuration int
	// ReadThrough включает чтение из кеша перед расчетом.
	ReadThrough bool
	Now         func() time.Time
}

type Calculator struct {
	source          Source
	cache           Cache
	logger          *zap.Logger
	now             func() time.Time
	defaultDuration int
	readThrough     bool
}

func NewCalculator(source Source, cache Cache, logger *zap.Logger, cfg CalculatorConfig) *Calculator {
	if cache == nil {
		cache = nopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.DefaultServiceDuration <= 0 {
		cfg.DefaultServiceDuration = DefaultServiceDuration
	}

	return &Calculator{
		source:          source,
		cache:           cache,
		logger:          logger,
		now:             cfg.Now,
		defaultDuration: cfg.DefaultServiceDuration,
		readThrough:     cfg.ReadThrough,
	}
}

// Compute рассчитывает доступность эксперта на каждый день месяца.
//
// Ошибки чтения правил, исключений, бронирований и длительностей услуг не
// прерывают расчет: соответствующие данные считаются пустыми. Ошибки часового
// пояса и поиска эксперта возвращаются вызывающему.
func (c *Calculator) Compute(ctx context.Context, req domain.AvailabilityRequest) ([]domain.DayAvailability, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	key := Key{
		ExpertID:        req.ExpertID,
		Year:            req.Year,
		Month:           req.Month,
		DurationMinutes: req.ServiceDurationMinutes,
	}

	if c.readThrough {
		if days, ok := c.cache.Get(ctx, key); ok {
			return days, nil
		}
	}

	tzName, err := c.source.ExpertTimezone(ctx, req.ExpertID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения часового пояса эксперта: %w", err)
	}

	loc, err := timezone.LoadZone(tzName)
	if err != nil {
		c.logger.Error("некорректный часовой пояс эксперта",
			zap.Int64("expert_id", req.ExpertID),
			zap.String("timezone", tzName),
			zap.Error(err),
		)
		return nil, err
	}

	daysInMonth := timezone.DaysInMonth(req.Year, req.Month)
	from := timezone.NewLocalDate(req.Year, req.Month, 1)
	to := timezone.NewLocalDate(req.Year, req.Month, daysInMonth)

	in := c.load(ctx, req.ExpertID, from, to)

	now := c.now()
	today := timezone.LocalDateOf(now, loc)

	days := make([]domain.DayAvailability, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		noon := timezone.NoonOf(req.Year, req.Month, day, loc)
		date := timezone.LocalDateOf(noon, loc)
		weekday := timezone.LocalDayOfWeek(noon, loc)

		rule, hasRule := in.rules[weekday]
		_, blocked := in.exceptions[date.String()]
		if !hasRule || blocked || date.Before(today) {
			days = append(days, unavailableDay(date))
			continue
		}

		candidates := GenerateSlots(rule.StartTime, rule.EndTime, req.ServiceDurationMinutes)
		slots := make([]timezone.LocalTime, 0, len(candidates))
		for _, slot := range candidates {
			if c.collides(slot, req.ServiceDurationMinutes, in.bookings[date.String()], in.durations) {
				continue
			}
			if date == today && !timezone.UTCInstantOf(date.Year, date.Month, date.Day, slot.Hour(), slot.Minute(), loc).After(now) {
				continue
			}
			slots = append(slots, slot)
		}

		status := domain.DayStatusAvailable
		if len(slots) == 0 {
			status = domain.DayStatusFull
		}
		days = append(days, domain.DayAvailability{Date: date, Status: status, Slots: slots})
	}

	c.cache.Set(ctx, key, days)

	return days, nil
}

type inputs struct {
	rules      map[int]domain.WeeklyRule
	exceptions map[string]struct{}
	bookings   map[string][]domain.Booking
	durations  map[int64]*int
}

func (c *Calculator) load(ctx context.Context, expertID int64, from, to timezone.LocalDate) inputs {
	in := inputs{
		rules:      make(map[int]domain.WeeklyRule),
		exceptions: make(map[string]struct{}),
		bookings:   make(map[string][]domain.Booking),
		durations:  make(map[int64]*int),
	}

	log := c.logger.With(zap.Int64("expert_id", expertID), zap.String("from", from.String()), zap.String("to", to.String()))

	rules, err := c.source.ActiveWeeklyRules(ctx, expertID)
	if err != nil {
		log.Warn("не удалось получить правила расписания, дни будут недоступны", zap.Error(err))
		rules = nil
	}
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		if _, ok := in.rules[rule.DayOfWeek]; ok {
			continue
		}
		in.rules[rule.DayOfWeek] = rule
	}

	exceptions, err := c.source.Exceptions(ctx, expertID, from, to)
	if err != nil {
		log.Warn("не удалось получить исключения расписания", zap.Error(err))
		exceptions = nil
	}
	for _, exception := range exceptions {
		in.exceptions[exception.Date.String()] = struct{}{}
	}

	bookings, err := c.source.BlockingBookings(ctx, expertID, from, to)
	if err != nil {
		log.Warn("не удалось получить бронирования", zap.Error(err))
		bookings = nil
	}

	var serviceIDs []int64
	seen := make(map[int64]struct{})
	for _, booking := range bookings {
		if !booking.Status.Blocking() {
			continue
		}
		in.bookings[booking.Date.String()] = append(in.bookings[booking.Date.String()], booking)
		if _, ok := seen[booking.ServiceID]; !ok {
			seen[booking.ServiceID] = struct{}{}
			serviceIDs = append(serviceIDs, booking.ServiceID)
		}
	}

	if len(serviceIDs) > 0 {
		durations, err := c.source.ServiceDurations(ctx, serviceIDs)
		if err != nil {
			log.Warn("не удалось получить длительности услуг, используется значение по умолчанию",
				zap.Int("default_duration", c.defaultDuration),
				zap.Error(err),
			)
			durations = nil
		}
		for id, d := range durations {
			in.durations[id] = d
		}
	}

	return in
}

// collides проверяет слот против бронирований дня. Длительность бронирования
// берется из текущей записи услуги, а не из момента бронирования.
func (c *Calculator) collides(slot timezone.LocalTime, duration int, bookings []domain.Booking, durations map[int64]*int) bool {
	for _, booking := range bookings {
		bookingDuration := c.defaultDuration
		if d, ok := durations[booking.ServiceID]; ok && d != nil {
			bookingDuration = *d
		}
		if Overlaps(slot.Minutes(), duration, booking.Time.Minutes(), bookingDuration) {
			return true
		}
	}
	return false
}

func unavailableDay(date timezone.LocalDate) domain.DayAvailability {
	return domain.DayAvailability{
		Date:   date,
		Status: domain.DayStatusUnavailable,
		Slots:  []timezone.LocalTime{},
	}
}

func validateRequest(req domain.AvailabilityRequest) error {
	if req.ExpertID <= 0 {
		return fmt.Errorf("%w: некорректный ID эксперта %d", domain.ErrInvalidArgument, req.ExpertID)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: месяц должен быть от 1 до 12, получено %d", domain.ErrInvalidArgument, req.Month)
	}
	if req.Year < 1 || req.Year > 9999 {
		return fmt.Errorf("%w: некорректный год %d", domain.ErrInvalidArgument, req.Year)
	}
	if req.ServiceDurationMinutes <= 0 {
		return fmt.Errorf("%w: длительность услуги должна быть положительной, получено %d", domain.ErrInvalidArgument, req.ServiceDurationMinutes)
	}
	return nil
}
