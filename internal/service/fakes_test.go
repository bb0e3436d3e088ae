package service

import (
	"context"
	"fmt"
	"sort"

	"consultly/internal/domain"
	"consultly/internal/timezone"
)

type fakeExpertRepo struct {
	experts map[int64]*domain.Expert
}

func newFakeExpertRepo(experts ...domain.Expert) *fakeExpertRepo {
	r := &fakeExpertRepo{experts: make(map[int64]*domain.Expert)}
	for i := range experts {
		e := experts[i]
		r.experts[e.ID] = &e
	}
	return r
}

func (r *fakeExpertRepo) GetByID(_ context.Context, id int64) (*domain.Expert, error) {
	e, ok := r.experts[id]
	if !ok {
		return nil, fmt.Errorf("эксперт %d: %w", id, domain.ErrNotFound)
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpertRepo) GetByUserID(_ context.Context, userID int64) (*domain.Expert, error) {
	for _, e := range r.experts {
		if e.UserID == userID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("эксперт пользователя %d: %w", userID, domain.ErrNotFound)
}

func (r *fakeExpertRepo) UpdateTimezone(_ context.Context, id int64, tz string) error {
	e, ok := r.experts[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Timezone = tz
	return nil
}

type fakeRuleRepo struct {
	nextID int64
	rules  map[int64]domain.WeeklyRule
}

func newFakeRuleRepo(rules ...domain.WeeklyRule) *fakeRuleRepo {
	r := &fakeRuleRepo{rules: make(map[int64]domain.WeeklyRule)}
	for _, rule := range rules {
		r.Create(context.Background(), rule)
	}
	return r
}

func (r *fakeRuleRepo) Create(_ context.Context, rule domain.WeeklyRule) (int64, error) {
	r.nextID++
	rule.ID = r.nextID
	r.rules[rule.ID] = rule
	return rule.ID, nil
}

func (r *fakeRuleRepo) GetByID(_ context.Context, id int64) (*domain.WeeklyRule, error) {
	rule, ok := r.rules[id]
	if !ok {
		return nil, fmt.Errorf("правило %d: %w", id, domain.ErrNotFound)
	}
	return &rule, nil
}

func (r *fakeRuleRepo) Update(_ context.Context, rule domain.WeeklyRule) error {
	if _, ok := r.rules[rule.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rules[rule.ID] = rule
	return nil
}

func (r *fakeRuleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rules[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rules, id)
	return nil
}

func (r *fakeRuleRepo) ListByExpert(_ context.Context, expertID int64, activeOnly bool) ([]domain.WeeklyRule, error) {
	out := make([]domain.WeeklyRule, 0)
	for _, rule := range r.rules {
		if rule.ExpertID != expertID || (activeOnly && !rule.Active) {
			continue
		}
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeExceptionRepo struct {
	nextID     int64
	exceptions map[int64]domain.Exception
}

func newFakeExceptionRepo() *fakeExceptionRepo {
	return &fakeExceptionRepo{exceptions: make(map[int64]domain.Exception)}
}

func (r *fakeExceptionRepo) Create(_ context.Context, exception domain.Exception) (int64, error) {
	for _, e := range r.exceptions {
		if e.ExpertID == exception.ExpertID && e.Date == exception.Date {
			return 0, fmt.Errorf("исключение на %s: %w", exception.Date, domain.ErrConflict)
		}
	}
	r.nextID++
	exception.ID = r.nextID
	r.exceptions[exception.ID] = exception
	return exception.ID, nil
}

func (r *fakeExceptionRepo) GetByID(_ context.Context, id int64) (*domain.Exception, error) {
	e, ok := r.exceptions[id]
	if !ok {
		return nil, fmt.Errorf("исключение %d: %w", id, domain.ErrNotFound)
	}
	return &e, nil
}

func (r *fakeExceptionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.exceptions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.exceptions, id)
	return nil
}

func (r *fakeExceptionRepo) List(_ context.Context, filter domain.ExceptionFilter) ([]domain.Exception, error) {
	out := make([]domain.Exception, 0)
	for _, e := range r.exceptions {
		if e.ExpertID != filter.ExpertID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && filter.To.Before(e.Date) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type fakeBookingRepo struct {
	bookings []domain.Booking
}

func (r *fakeBookingRepo) ListByExpertAndRange(_ context.Context, expertID int64, from, to timezone.LocalDate, statuses []domain.BookingStatus) ([]domain.Booking, error) {
	allowed := make(map[domain.BookingStatus]bool)
	for _, s := range statuses {
		allowed[s] = true
	}

	out := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.ExpertID != expertID || !allowed[b.Status] {
			continue
		}
		if b.Date.Before(from) || to.Before(b.Date) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeServiceRepo struct {
	durations map[int64]*int
}

func (r *fakeServiceRepo) GetDurations(_ context.Context, ids []int64) (map[int64]*int, error) {
	out := make(map[int64]*int)
	for _, id := range ids {
		if d, ok := r.durations[id]; ok {
			out[id] = d
		}
	}
	return out, nil
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
