package fetch_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("fetch_slots: invalid input data")

	// ErrInvalidServiceType возвращается при неизвестном типе сервиса
	ErrInvalidServiceType = errors.New("fetch_slots: invalid service type")

	// ErrDateTooSoon возвращается, когда дата раньше завтрашнего дня
	ErrDateTooSoon = errors.New("fetch_slots: date must be at least tomorrow")
)
