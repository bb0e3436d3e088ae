package availability

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"consultly/internal/domain"
	"consultly/internal/timezone"
)

func sampleDays() []domain.DayAvailability {
	return []domain.DayAvailability{
		{Date: timezone.NewLocalDate(2024, time.June, 1), Status: domain.DayStatusUnavailable, Slots: []timezone.LocalTime{}},
		{Date: timezone.NewLocalDate(2024, time.June, 2), Status: domain.DayStatusAvailable, Slots: []timezone.LocalTime{540, 600}},
	}
}

func TestMemoryCacheExpiresAfterTTL(t *testing.T) {
	current := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(10*time.Minute, func() time.Time { return current })
	key := Key{ExpertID: 1, Year: 2024, Month: time.June, DurationMinutes: 60}

	cache.Set(context.Background(), key, sampleDays())

	current = current.Add(10 * time.Minute)
	if _, ok := cache.Get(context.Background(), key); !ok {
		t.Fatalf("expected hit at exactly ttl")
	}

	current = current.Add(time.Second)
	if _, ok := cache.Get(context.Background(), key); ok {
		t.Fatalf("expected entry older than ttl to be absent")
	}
	if cache.Len() != 0 {
		t.Fatalf("expected expired entry to be removed, got %d entries", cache.Len())
	}
}

func TestMemoryCacheKeyIncludesDuration(t *testing.T) {
	cache := NewMemoryCache(time.Minute, nil)
	key := Key{ExpertID: 1, Year: 2024, Month: time.June, DurationMinutes: 60}

	cache.Set(context.Background(), key, sampleDays())

	other := key
	other.DurationMinutes = 30
	if _, ok := cache.Get(context.Background(), other); ok {
		t.Fatalf("expected miss for different duration")
	}
}

func TestMemoryCacheReturnsCopies(t *testing.T) {
	cache := NewMemoryCache(time.Minute, nil)
	key := Key{ExpertID: 1, Year: 2024, Month: time.June, DurationMinutes: 60}

	days := sampleDays()
	cache.Set(context.Background(), key, days)
	days[1].Slots[0] = 0

	cached, ok := cache.Get(context.Background(), key)
	if !ok {
		t.Fatalf("expected hit")
	}
	if cached[1].Slots[0] != 540 {
		t.Fatalf("expected stored copy to be unaffected, got %s", cached[1].Slots[0])
	}

	cached[1].Slots[1] = 0
	again, _ := cache.Get(context.Background(), key)
	if again[1].Slots[1] != 600 {
		t.Fatalf("expected independent copy on each read, got %s", again[1].Slots[1])
	}
}

func TestMemoryCacheSweepsExpiredOnWrite(t *testing.T) {
	current := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(time.Minute, func() time.Time { return current })

	cache.Set(context.Background(), Key{ExpertID: 1, Year: 2024, Month: time.June, DurationMinutes: 60}, sampleDays())
	current = current.Add(2 * time.Minute)
	cache.Set(context.Background(), Key{ExpertID: 2, Year: 2024, Month: time.June, DurationMinutes: 60}, sampleDays())

	if cache.Len() != 1 {
		t.Fatalf("expected one live entry, got %d", cache.Len())
	}
}

func TestMemoryCacheConcurrentWriters(t *testing.T) {
	cache := NewMemoryCache(time.Minute, nil)
	key := Key{ExpertID: 1, Year: 2024, Month: time.June, DurationMinutes: 60}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Set(context.Background(), key, sampleDays())
			cache.Get(context.Background(), key)
		}()
	}
	wg.Wait()

	got, ok := cache.Get(context.Background(), key)
	if !ok || !reflect.DeepEqual(got, sampleDays()) {
		t.Fatalf("expected last write to be readable, got %+v", got)
	}
}

type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisCacheRoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	cache := NewRedisCache(rdb, 10*time.Minute, "avail", zap.NewNop())
	key := Key{ExpertID: 7, Year: 2024, Month: time.June, DurationMinutes: 45}

	if _, ok := cache.Get(context.Background(), key); ok {
		t.Fatalf("expected miss on empty cache")
	}

	cache.Set(context.Background(), key, sampleDays())

	raw, ok := rdb.data["avail:7:2024-06:45"]
	if !ok {
		t.Fatalf("expected value under prefixed key, have %v", rdb.data)
	}
	if rdb.ttls["avail:7:2024-06:45"] != 10*time.Minute {
		t.Fatalf("expected ttl 10m, got %s", rdb.ttls["avail:7:2024-06:45"])
	}
	want := `[{"date":"2024-06-01","status":"unavailable","slots":[]},{"date":"2024-06-02","status":"available","slots":["09:00","10:00"]}]`
	if raw != want {
		t.Fatalf("unexpected payload:\n%s", raw)
	}

	got, ok := cache.Get(context.Background(), key)
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if !reflect.DeepEqual(got, sampleDays()) {
		t.Fatalf("expected %+v, got %+v", sampleDays(), got)
	}
}

func TestRedisCacheTreatsErrorsAsMiss(t *testing.T) {
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	rdb.setErr = errors.New("connection refused")
	cache := NewRedisCache(rdb, time.Minute, "", nil)
	key := Key{ExpertID: 1, Year: 2024, Month: time.June, DurationMinutes: 60}

	cache.Set(context.Background(), key, sampleDays())
	if _, ok := cache.Get(context.Background(), key); ok {
		t.Fatalf("expected miss when redis fails")
	}

	rdb.getErr = nil
	rdb.data["availability:1:2024-06:60"] = "{not json"
	if _, ok := cache.Get(context.Background(), key); ok {
		t.Fatalf("expected miss for corrupted payload")
	}
}
