package availability

import (
	"reflect"
	"testing"

	"consultly/internal/timezone"
)

func hm(t *testing.T, s string) timezone.LocalTime {
	t.Helper()
	v, err := timezone.ParseLocalTime(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func slotStrings(slots []timezone.LocalTime) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		want     []string
	}{
		{name: "exact fit", start: "09:00", end: "10:00", duration: 60, want: []string{"09:00"}},
		{name: "no partial tail", start: "09:00", end: "10:01", duration: 60, want: []string{"09:00"}},
		{name: "half hours", start: "09:00", end: "11:00", duration: 30, want: []string{"09:00", "09:30", "10:00", "10:30"}},
		{name: "window shorter than duration", start: "09:00", end: "09:45", duration: 60, want: []string{}},
		{name: "uneven step", start: "09:15", end: "12:00", duration: 50, want: []string{"09:15", "10:05", "10:55"}},
		{name: "zero duration", start: "09:00", end: "17:00", duration: 0, want: []string{}},
		{name: "negative duration", start: "09:00", end: "17:00", duration: -30, want: []string{}},
		{name: "start equals end", start: "09:00", end: "09:00", duration: 30, want: []string{}},
		{name: "start after end", start: "17:00", end: "09:00", duration: 30, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slotStrings(GenerateSlots(hm(t, tt.start), hm(t, tt.end), tt.duration))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGenerateSlotsIsMonotonicAndInsideWindow(t *testing.T) {
	for _, duration := range []int{7, 15, 25, 45, 60, 90} {
		start, end := hm(t, "08:10"), hm(t, "18:55")
		slots := GenerateSlots(start, end, duration)
		for i, s := range slots {
			if s.Minutes()+duration > end.Minutes() {
				t.Fatalf("duration %d: slot %s exceeds window end", duration, s)
			}
			if i > 0 && s <= slots[i-1] {
				t.Fatalf("duration %d: slots not strictly increasing at %d", duration, i)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, durA, startB, durB int
		want                       bool
	}{
		{name: "back to back before", startA: 9 * 60, durA: 60, startB: 10 * 60, durB: 60, want: false},
		{name: "back to back after", startA: 11 * 60, durA: 60, startB: 10 * 60, durB: 60, want: false},
		{name: "same range", startA: 9 * 60, durA: 60, startB: 9 * 60, durB: 60, want: true},
		{name: "partial", startA: 9 * 60, durA: 60, startB: 9*60 + 30, durB: 60, want: true},
		{name: "contained", startA: 9 * 60, durA: 120, startB: 9*60 + 30, durB: 15, want: true},
		{name: "longer booking blocks later slot", startA: 10 * 60, durA: 30, startB: 9 * 60, durB: 90, want: true},
		{name: "zero duration a", startA: 9*60 + 30, durA: 0, startB: 9 * 60, durB: 60, want: false},
		{name: "zero duration b", startA: 9 * 60, durA: 60, startB: 9*60 + 30, durB: 0, want: false},
		{name: "disjoint", startA: 8 * 60, durA: 30, startB: 12 * 60, durB: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.startA, tt.durA, tt.startB, tt.durB); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got := Overlaps(tt.startB, tt.durB, tt.startA, tt.durA); got != tt.want {
				t.Fatalf("symmetry: expected %v, got %v", tt.want, got)
			}
		})
	}
}
