package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"consultly/internal/timezone"
)

// @Summary Доступность эксперта на месяц
// @Description Возвращает статус и свободные слоты на каждый день месяца в часовом поясе эксперта
// @Tags Доступность
// @Produce json
// @Param id path int true "ID эксперта"
// @Param year query int true "Год"
// @Param month query int true "Месяц (1-12)"
// @Param duration query int false "Длительность услуги в минутах"
// @Success 200 {object} successResponseBody{data=[]domain.DayAvailability}
// @Failure 400 {object} errorResponseBody "Некорректные параметры"
// @Failure 404 {object} errorResponseBody "Эксперт не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /experts/{id}/availability [get]
func (h *Handler) getMonthAvailability(c *gin.Context) {
	expertID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		badRequestResponse(c, "некорректный год")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		badRequestResponse(c, "некорректный месяц")
		return
	}

	duration, ok := parseDurationQuery(c)
	if !ok {
		return
	}

	days, err := h.services.Availability.GetMonth(c.Request.Context(), expertID, year, month, duration)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка расчета доступности")
		return
	}

	successResponse(c, http.StatusOK, days)
}

// @Summary Доступность эксперта на день
// @Description Возвращает статус и свободные слоты на локальную дату эксперта
// @Tags Доступность
// @Produce json
// @Param id path int true "ID эксперта"
// @Param date query string true "Дата в формате YYYY-MM-DD"
// @Param duration query int false "Длительность услуги в минутах"
// @Success 200 {object} successResponseBody{data=domain.DayAvailability}
// @Failure 400 {object} errorResponseBody "Некорректные параметры"
// @Failure 404 {object} errorResponseBody "Эксперт не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /experts/{id}/availability/day [get]
func (h *Handler) getDayAvailability(c *gin.Context) {
	expertID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	date, err := timezone.ParseLocalDate(c.Query("date"))
	if err != nil {
		badRequestResponse(c, "неверный формат даты, ожидается YYYY-MM-DD")
		return
	}

	duration, ok := parseDurationQuery(c)
	if !ok {
		return
	}

	day, err := h.services.Availability.GetDay(c.Request.Context(), expertID, date, duration)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка расчета доступности")
		return
	}

	successResponse(c, http.StatusOK, day)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequestResponse(c, "некорректный ID")
		return 0, false
	}
	return id, true
}

// parseDurationQuery возвращает 0, если длительность не указана.
func parseDurationQuery(c *gin.Context) (int, bool) {
	raw := c.Query("duration")
	if raw == "" {
		return 0, true
	}

	duration, err := strconv.Atoi(raw)
	if err != nil || duration <= 0 {
		badRequestResponse(c, "длительность должна быть положительным числом минут")
		return 0, false
	}
	return duration, true
}
