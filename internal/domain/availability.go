package domain

import (
	"time"

	"consultly/internal/timezone"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Blocking сообщает, занимает ли бронирование время эксперта.
func (s BookingStatus) Blocking() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func BlockingBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusPending, BookingStatusConfirmed}
}

// Booking не хранит длительность: она берется из услуги в момент расчета,
// поэтому изменение длительности услуги меняет занятый интервал и у уже
// существующих бронирований.
type Booking struct {
	ID        int64              `json:"id"`
	ExpertID  int64              `json:"expert_id"`
	Date      timezone.LocalDate `json:"date"`
	Time      timezone.LocalTime `json:"time"`
	ServiceID int64              `json:"service_id"`
	Status    BookingStatus      `json:"status"`
}

type Service struct {
	ID              int64 `json:"id"`
	ExpertID        int64 `json:"expert_id"`
	DurationMinutes *int  `json:"duration_minutes"`
}

type DayStatus string

const (
	DayStatusAvailable   DayStatus = "available"
	DayStatusFull        DayStatus = "full"
	DayStatusUnavailable DayStatus = "unavailable"
)

type DayAvailability struct {
	Date   timezone.LocalDate   `json:"date" swaggertype:"string" example:"2024-06-10"`
	Status DayStatus            `json:"status" enums:"available,full,unavailable"`
	Slots  []timezone.LocalTime `json:"slots" swaggertype:"array,string"`
}

type AvailabilityRequest struct {
	ExpertID               int64
	Year                   int
	Month                  time.Month
	ServiceDurationMinutes int
}
