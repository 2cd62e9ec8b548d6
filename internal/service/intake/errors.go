package intake

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("intake: session not found")

	// ErrAccessDenied возвращается при попытке работать с чужой сессией
	ErrAccessDenied = errors.New("intake: access denied")

	// ErrNotEditable возвращается при попытке менять черновик вне
	// состояния редактирования (например, пока отправка в полете)
	ErrNotEditable = errors.New("intake: draft is not editable in current state")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока
	// предыдущая еще не завершилась
	ErrSubmissionInFlight = errors.New("intake: submission already in flight")

	// ErrAlreadySucceeded возвращается при отправке уже отправленной сессии
	ErrAlreadySucceeded = errors.New("intake: reservation already created")

	// ErrVehicleNotFound возвращается, когда мотоцикла нет в каталоге сессии
	ErrVehicleNotFound = errors.New("intake: vehicle not found in session catalog")

	// ErrSymptomNotFound возвращается, когда симптома нет в каталоге сессии
	ErrSymptomNotFound = errors.New("intake: symptom not found in session catalog")

	// ErrCustomModeActive возвращается при выборе симптомов или слота в
	// режиме свободного описания
	ErrCustomModeActive = errors.New("intake: not allowed while custom description mode is active")

	// ErrDateTooSoon возвращается, когда дата раньше завтрашнего дня
	ErrDateTooSoon = errors.New("intake: date must be at least tomorrow")

	// ErrSlotNotOffered возвращается при выборе слота вне видимого списка
	ErrSlotNotOffered = errors.New("intake: time slot is not among offered slots")

	// ErrNotReady возвращается при отправке черновика, не проходящего
	// клиентские инварианты
	ErrNotReady = errors.New("intake: draft is not ready for submission")

	// ErrEmptyChanges возвращается, когда запрос изменений пуст
	ErrEmptyChanges = errors.New("intake: no changes provided")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("intake: internal error")
)
