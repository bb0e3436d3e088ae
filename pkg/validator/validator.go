package validator

import (
	"regexp"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"
)

var (
	timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	dateRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

const maxReasonLength = 255

// ValidateTime проверяет строгий формат HH:MM.
func ValidateTime(value string) bool {
	return timeRegex.MatchString(value)
}

// ValidateDate проверяет формат YYYY-MM-DD и существование даты.
func ValidateDate(value string) bool {
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func ValidateDayOfWeek(day int) bool {
	return day >= 0 && day <= 6
}

// ValidateTimezone принимает пустую строку (UTC) и имена из базы IANA.
func ValidateTimezone(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}
	if strings.EqualFold(name, "local") {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

func ValidateReason(reason string) bool {
	return len([]rune(reason)) <= maxReasonLength
}

func SanitizeString(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}
