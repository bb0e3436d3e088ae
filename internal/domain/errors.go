package domain

import (
	"errors"

	"consultly/internal/timezone"
)

var (
	ErrNotFound        = errors.New("не найдено")
	ErrConflict        = errors.New("запись уже существует")
	ErrInvalidArgument = errors.New("некорректные параметры")
	ErrForbidden       = errors.New("доступ запрещен")

	ErrInvalidTimezone = timezone.ErrInvalidTimezone
)
