package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"consultly/internal/domain"
	"consultly/internal/timezone"
)

// Key включает длительность: одному эксперту и месяцу соответствуют разные
// сетки слотов для услуг разной длины.
type Key struct {
	ExpertID        int64
	Year            int
	Month           time.Month
	DurationMinutes int
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%04d-%02d:%d", k.ExpertID, k.Year, int(k.Month), k.DurationMinutes)
}

// Cache хранит рассчитанные сетки. Корректность расчета от кеша не зависит.
type Cache interface {
	Get(ctx context.Context, key Key) ([]domain.DayAvailability, bool)
	Set(ctx context.Context, key Key, days []domain.DayAvailability)
}

type nopCache struct{}

func (nopCache) Get(context.Context, Key) ([]domain.DayAvailability, bool) { return nil, false }
func (nopCache) Set(context.Context, Key, []domain.DayAvailability)        {}

// MemoryCache хранит сетки в памяти процесса с TTL. Конкурентные записи одного ключа
// допустимы: побеждает последняя.
type MemoryCache struct {
	mu      sync.RWMutex
	now     func() time.Time
	ttl     time.Duration
	entries map[Key]memoryEntry
}

type memoryEntry struct {
	days     []domain.DayAvailability
	storedAt time.Time
}

func NewMemoryCache(ttl time.Duration, now func() time.Time) *MemoryCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		now:     now,
		ttl:     ttl,
		entries: make(map[Key]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key Key) ([]domain.DayAvailability, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.expired(entry) {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && c.expired(current) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return cloneDays(entry.days), true
}

func (c *MemoryCache) Set(_ context.Context, key Key, days []domain.DayAvailability) {
	entry := memoryEntry{days: cloneDays(days), storedAt: c.now()}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupLocked()
	c.entries[key] = entry
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) expired(entry memoryEntry) bool {
	return c.now().Sub(entry.storedAt) > c.ttl
}

func (c *MemoryCache) cleanupLocked() {
	for key, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, key)
		}
	}
}

func cloneDays(days []domain.DayAvailability) []domain.DayAvailability {
	if days == nil {
		return nil
	}
	out := make([]domain.DayAvailability, len(days))
	for i, day := range days {
		out[i] = day
		out[i].Slots = append(make([]timezone.LocalTime, 0, len(day.Slots)), day.Slots...)
	}
	return out
}
