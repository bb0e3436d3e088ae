package domain

import (
	"time"

	"consultly/internal/timezone"
)

// WeeklyRule задает рабочее окно эксперта на день недели в его локальном
// времени. DayOfWeek: 0 соответствует воскресенью.
type WeeklyRule struct {
	ID        int64              `json:"id"`
	ExpertID  int64              `json:"expert_id"`
	DayOfWeek int                `json:"day_of_week"`
	StartTime timezone.LocalTime `json:"start_time" swaggertype:"string" example:"09:00"`
	EndTime   timezone.LocalTime `json:"end_time" swaggertype:"string" example:"17:00"`
	Active    bool               `json:"active"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Exception полностью закрывает локальную дату независимо от правил.
type Exception struct {
	ID        int64              `json:"id"`
	ExpertID  int64              `json:"expert_id"`
	Date      timezone.LocalDate `json:"date" swaggertype:"string" example:"2024-06-10"`
	Reason    string             `json:"reason,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type CreateWeeklyRuleDTO struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    *bool  `json:"active"`
}

type UpdateWeeklyRuleDTO struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

type CreateExceptionDTO struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

type ExceptionFilter struct {
	ExpertID int64
	From     *timezone.LocalDate
	To       *timezone.LocalDate
}

type UpdateTimezoneDTO struct {
	Timezone string `json:"timezone"`
}
