package validator

import "testing"

func TestValidateTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"9:00", false},
		{"09:60", false},
		{"09:00:00", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateTime(tt.in); got != tt.want {
			t.Fatalf("ValidateTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-06-10", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-6-1", false},
		{"10.06.2024", false},
	}

	for _, tt := range tests {
		if got := ValidateDate(tt.in); got != tt.want {
			t.Fatalf("ValidateDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"UTC", true},
		{"America/New_York", true},
		{"Asia/Tokyo", true},
		{"Local", false},
		{"Mars/Olympus", false},
	}

	for _, tt := range tests {
		if got := ValidateTimezone(tt.in); got != tt.want {
			t.Fatalf("ValidateTimezone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateDayOfWeek(t *testing.T) {
	for day := 0; day <= 6; day++ {
		if !ValidateDayOfWeek(day) {
			t.Fatalf("expected %d to be valid", day)
		}
	}
	if ValidateDayOfWeek(-1) || ValidateDayOfWeek(7) {
		t.Fatalf("expected out of range days to be invalid")
	}
}

func TestSanitizeString(t *testing.T) {
	got := SanitizeString("  <b>Отпуск</b>\n")
	if got != "bОтпуск/b" {
		t.Fatalf("unexpected sanitized value %q", got)
	}
}
