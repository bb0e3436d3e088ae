// Package timezone переводит моменты UTC в локальное время эксперта и обратно.
//
// Все сравнения дат (исключения, "сегодня", день недели правила) выполняются
// над LocalDate/LocalTime в часовом поясе эксперта. В UTC переходит только
// проверка "слот ещё не начался".
package timezone

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

var ErrInvalidTimezone = errors.New("некорректный часовой пояс")

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// LoadZone загружает зону из базы IANA. Пустое имя означает UTC.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}

	if strings.EqualFold(name, "local") {
		return nil, fmt.Errorf("%w %q", ErrInvalidTimezone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, name, err)
	}

	return loc, nil
}

type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("неверный формат даты %q, ожидается YYYY-MM-DD: %w", s, err)
	}
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d LocalDate) Before(other LocalDate) bool {
	return d.String() < other.String()
}

func (d LocalDate) AddDays(n int) LocalDate {
	return NewLocalDate(d.Year, d.Month, d.Day+n)
}

// Weekday возвращает 0 для воскресенья.
func (d LocalDate) Weekday() int {
	return int(time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday())
}

func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *LocalDate) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LocalTime хранит минуты от локальной полуночи.
type LocalTime int

func NewLocalTime(hour, minute int) LocalTime {
	return LocalTime(hour*60 + minute)
}

func ParseLocalTime(s string) (LocalTime, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("неверный формат времени %q, ожидается HH:MM: %w", s, err)
	}
	return NewLocalTime(t.Hour(), t.Minute()), nil
}

func (t LocalTime) Hour() int   { return int(t) / 60 }
func (t LocalTime) Minute() int { return int(t) % 60 }

func (t LocalTime) Minutes() int { return int(t) }

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t LocalTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LocalTime) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func LocalDateOf(instant time.Time, loc *time.Location) LocalDate {
	local := instant.In(loc)
	return LocalDate{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

func LocalDayOfWeek(instant time.Time, loc *time.Location) int {
	return int(instant.In(loc).Weekday())
}

// UTCInstantOf переводит локальное время стены в момент UTC. Для
// несуществующего времени (переход на летнее время) используется правило
// time.Date: время сдвигается вперёд на величину перехода.
func UTCInstantOf(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, loc).UTC()
}

// NoonOf возвращает локальный полдень дня. Дни месяца перебираются только
// от полудня: полночь в дни перехода DST может не существовать.
func NoonOf(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, loc)
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}
