package timezone

import (
	"errors"
	"testing"
	"time"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := LoadZone(name)
	if err != nil {
		t.Fatalf("load zone %q: %v", name, err)
	}
	return loc
}

func TestLoadZoneEmptyFallsBackToUTC(t *testing.T) {
	loc, err := LoadZone("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != time.UTC {
		t.Fatalf("expected UTC, got %s", loc)
	}
}

func TestLoadZoneRejectsUnknownName(t *testing.T) {
	for _, name := range []string{"Mars/Olympus_Mons", "Local"} {
		_, err := LoadZone(name)
		if !errors.Is(err, ErrInvalidTimezone) {
			t.Fatalf("%s: expected ErrInvalidTimezone, got %v", name, err)
		}
	}
}

func TestLocalDateOfCrossesDateLine(t *testing.T) {
	tokyo := mustZone(t, "Asia/Tokyo")
	la := mustZone(t, "America/Los_Angeles")
	instant := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)

	if got := LocalDateOf(instant, tokyo).String(); got != "2024-06-11" {
		t.Fatalf("tokyo: expected 2024-06-11, got %s", got)
	}
	if got := LocalDateOf(instant, la).String(); got != "2024-06-10" {
		t.Fatalf("los angeles: expected 2024-06-10, got %s", got)
	}
	if got := LocalDayOfWeek(instant, tokyo); got != int(time.Tuesday) {
		t.Fatalf("tokyo: expected tuesday, got %d", got)
	}
	if got := LocalDayOfWeek(instant, la); got != int(time.Monday) {
		t.Fatalf("los angeles: expected monday, got %d", got)
	}
}

func TestUTCInstantOfUsesDSTOffset(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	winter := UTCInstantOf(2024, time.January, 15, 9, 0, ny)
	if winter.Hour() != 14 {
		t.Fatalf("winter: expected 14:00 UTC, got %s", winter.Format(time.RFC3339))
	}

	summer := UTCInstantOf(2024, time.July, 15, 9, 0, ny)
	if summer.Hour() != 13 {
		t.Fatalf("summer: expected 13:00 UTC, got %s", summer.Format(time.RFC3339))
	}
}

func TestNoonAnchorKeepsDateOnDSTTransition(t *testing.T) {
	// В Сантьяго часы переводятся в полночь, локальной полуночи 2024-09-08 нет.
	santiago := mustZone(t, "America/Santiago")

	noon := NoonOf(2024, time.September, 8, santiago)
	if got := LocalDateOf(noon.UTC(), santiago).String(); got != "2024-09-08" {
		t.Fatalf("expected 2024-09-08, got %s", got)
	}
	if got := LocalDayOfWeek(noon.UTC(), santiago); got != int(time.Sunday) {
		t.Fatalf("expected sunday, got %d", got)
	}
}

func TestLocalDateOrderingAndArithmetic(t *testing.T) {
	d := NewLocalDate(2024, time.February, 28)
	if got := d.AddDays(1).String(); got != "2024-02-29" {
		t.Fatalf("expected leap day, got %s", got)
	}
	if got := d.AddDays(2).String(); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", got)
	}
	if !d.Before(d.AddDays(1)) {
		t.Fatalf("expected %s before next day", d)
	}
	if d.Before(d) {
		t.Fatalf("date must not be before itself")
	}
	if got := NewLocalDate(2024, time.June, 10).Weekday(); got != int(time.Monday) {
		t.Fatalf("expected monday, got %d", got)
	}
}

func TestParseLocalTime(t *testing.T) {
	tests := []struct {
		in      string
		want    LocalTime
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9am", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLocalTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.in, tt.want, got)
		}
		if got.String() != tt.in {
			t.Fatalf("%s: round trip produced %s", tt.in, got.String())
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
	if got := DaysInMonth(2023, time.February); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
	if got := DaysInMonth(2024, time.December); got != 31 {
		t.Fatalf("expected 31, got %d", got)
	}
}
