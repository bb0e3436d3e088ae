package availability

import "consultly/internal/timezone"

// GenerateSlots возвращает времена начала слотов длительностью duration,
// целиком помещающихся в окно [start, end).
func GenerateSlots(start, end timezone.LocalTime, duration int) []timezone.LocalTime {
	if duration <= 0 || start >= end {
		return []timezone.LocalTime{}
	}

	slots := make([]timezone.LocalTime, 0, (end.Minutes()-start.Minutes())/duration)
	for current := start.Minutes(); current+duration <= end.Minutes(); current += duration {
		slots = append(slots, timezone.LocalTime(current))
	}

	return slots
}

// Overlaps сравнивает полуинтервалы [startA, startA+durationA) и
// [startB, startB+durationB) в минутах от локальной полуночи. Интервалы,
// касающиеся концами, не пересекаются.
func Overlaps(startA, durationA, startB, durationB int) bool {
	if durationA <= 0 || durationB <= 0 {
		return false
	}
	return startA < startB+durationB && startB < startA+durationA
}
