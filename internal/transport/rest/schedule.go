package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consultly/internal/domain"
	"consultly/internal/timezone"
)

// @Summary Правила расписания эксперта
// @Description Публичный список недельных правил эксперта, включая неактивные
// @Tags Расписание
// @Produce json
// @Param id path int true "ID эксперта"
// @Success 200 {object} successResponseBody{data=[]domain.WeeklyRule}
// @Failure 400 {object} errorResponseBody "Некорректный ID"
// @Failure 404 {object} errorResponseBody "Эксперт не найден"
// @Router /experts/{id}/rules [get]
func (h *Handler) getExpertRules(c *gin.Context) {
	expertID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rules, err := h.services.Schedule.ListRules(c.Request.Context(), expertID)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка получения правил расписания")
		return
	}

	successResponse(c, http.StatusOK, rules)
}

// @Summary Мои правила расписания
// @Tags Расписание
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.WeeklyRule}
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Security ApiKeyAuth
// @Router /schedule/rules [get]
func (h *Handler) listRules(c *gin.Context) {
	expertID, err := getExpertID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	rules, err := h.services.Schedule.ListRules(c.Request.Context(), expertID)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка получения правил расписания")
		return
	}

	successResponse(c, http.StatusOK, rules)
}

// @Summary Создать правило расписания
// @Description Создает недельное рабочее окно эксперта (day_of_week: 0 означает воскресенье)
// @Tags Расписание
// @Accept json
// @Produce json
// @Param input body domain.CreateWeeklyRuleDTO true "Правило"
// @Success 201 {object} successResponseBody{data=idResponse}
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Security ApiKeyAuth
// @Router /schedule/rules [post]
func (h *Handler) createRule(c *gin.Context) {
	expertID, err := getExpertID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateWeeklyRuleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Schedule.CreateRule(c.Request.Context(), expertID, req)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка создания правила расписания")
		return
	}

	createdResponse(c, idResponse{ID: id})
}

// @Summary Обновить правило расписания
// @Tags Расписание
// @Accept json
// @Produce json
// @Param id path int true "ID правила"
// @Param input body domain.UpdateWeeklyRuleDTO true "Изменения"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 403 {object} errorResponseBody "Правило принадлежит другому эксперту"
// @Failure 404 {object} errorResponseBody "Правило не найдено"
// @Security ApiKeyAuth
// @Router /schedule/rules/{id} [put]
func (h *Handler) updateRule(c *gin.Context) {
	expertID, err := getExpertID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	ruleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateWeeklyRuleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Schedule.UpdateRule(c.Request.Context(), expertID, ruleID, req); err != nil {
		h.serviceErrorResponse(c, err, "ошибка обновления правила расписания")
		return
	}

	messageResponse(c, http.StatusOK, "правило обновлено")
}

// @Summary Удалить правило расписания
// @Tags Расписание
// @Param id path int true "ID правила"
// @Success 204
// @Failure 403 {object} errorResponseBody "Правило принадлежит другому эксперту"
// @Failure 404 {object} errorResponseBody "Правило не найдено"
// @Security ApiKeyAuth
// @Router /schedule/rules/{id} [delete]
func (h *Handler) deleteRule(c *gin.Context) {
	expertID, err := getExpertID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	ruleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Schedule.DeleteRule(c.Request.Context(), expertID, ruleID); err != nil {
		h.serviceErrorResponse(c, err, "ошибка удаления правила расписания")
		return
	}

	noContentResponse(c)
}

// @Summary Исключения расписания
// @Description Список закрытых дат эксперта, опционально в диапазоне [from, to]
// @Tags Расписание
// @Produce json
// @Param from query string false "Начало периода YYYY-MM-DD"
// @Param to query string false "Конец периода YYYY-MM-DD"
// @Success 200 {object} successResponseBody{data=[]domain.Exception}
// @Failure 400 {object} errorResponseBody "Некорректный период"
// @Security ApiKeyAuth
// @Router /schedule/exceptions [get]
func (h *Handler) listExceptions(c *gin.Context) {
	expertID, err := getExpertID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	filter := domain.ExceptionFilter{ExpertID: expertID}

	if raw := c.Query("from"); raw != "" {
		from, err := timezone.ParseLocalDate(raw)
		if err != nil {
			badRequestResponse(c, "неверный формат даты from, ожидается YYYY-MM-DD")
			return
		}
		filter.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := timezone.ParseLocalDate(raw)
		if err != nil {
			badRequestResponse(c, "неверный формат даты to, ожидается YYYY-MM-DD")
			return
		}
		filter.To = &to
	}

	exceptions, err := h.services.Schedule.ListExceptions(c.Request.Context(), filter)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка получения исключений расписания")
		return
	}

	successResponse(c, http.StatusOK, exceptions)
}

// @Summary Добавить исключение
// @Description Закрывает локальную дату эксперта целиком
// @Tags Расписание
// @Accept json
// @Produce json
// @Param input body domain.CreateExceptionDTO true "Исключение"
// @Success 201 {object} successResponseBody{data=idResponse}
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 409 {object} errorResponseBody "Дата уже закрыта"
// @Security ApiKeyAuth
// @Router /schedule/exceptions [post]
func (h *Handler) createException(c *gin.Context) {
	expertID, err := getExpertID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateExceptionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Schedule.CreateException(c.Request.Context(), expertID, req)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка создания исключения расписания")
		return
	}

	createdResponse(c, idResponse{ID: id})
}

// @Summary Удалить исключение
// @Tags Расписание
// @Param id path int true "ID исключения"
// @Success 204
// @Failure 403 {object} errorResponseBody "Исключение принадлежит другому эксперту"
// @Failure 404 {object} errorResponseBody "Исключение не найдено"
// @Security ApiKeyAuth
// @Router /schedule/exceptions/{id} [delete]
func (h *Handler) deleteException(c *gin.Context) {
	expertID, err := getExpertID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	exceptionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Schedule.DeleteException(c.Request.Context(), expertID, exceptionID); err != nil {
		h.serviceErrorResponse(c, err, "ошибка удаления исключения расписания")
		return
	}

	noContentResponse(c)
}

// @Summary Изменить часовой пояс
// @Description Устанавливает часовой пояс IANA эксперта; пустое значение означает UTC
// @Tags Расписание
// @Accept json
// @Produce json
// @Param input body domain.UpdateTimezoneDTO true "Часовой пояс"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Неизвестный часовой пояс"
// @Security ApiKeyAuth
// @Router /schedule/timezone [put]
func (h *Handler) updateTimezone(c *gin.Context) {
	expertID, err := getExpertID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.UpdateTimezoneDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Schedule.UpdateTimezone(c.Request.Context(), expertID, req); err != nil {
		h.serviceErrorResponse(c, err, "ошибка обновления часового пояса")
		return
	}

	messageResponse(c, http.StatusOK, "часовой пояс обновлен")
}
