package submit_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_reservation: invalid input data")

	// ErrNoVehicle возвращается, когда мотоцикл не выбран
	ErrNoVehicle = errors.New("submit_reservation: vehicle is not selected")

	// ErrNoDate возвращается, когда дата записи не выбрана
	ErrNoDate = errors.New("submit_reservation: date is not selected")

	// ErrDateTooSoon возвращается, когда дата раньше завтрашнего дня
	ErrDateTooSoon = errors.New("submit_reservation: date must be at least tomorrow")

	// ErrNoTime возвращается, когда слот не выбран (вне режима свободного описания)
	ErrNoTime = errors.New("submit_reservation: time slot is not selected")

	// ErrMajorTimeNotAllowed возвращается, когда для major-сервиса выбран
	// слот вне допустимых времен (13:00, 15:00)
	ErrMajorTimeNotAllowed = errors.New("submit_reservation: major service is only available at 13:00 or 15:00")

	// ErrEmptyDescription возвращается, когда в режиме свободного описания
	// описание пустое
	ErrEmptyDescription = errors.New("submit_reservation: description is required in custom mode")

	// ErrDescriptionTooLong возвращается при превышении лимита длины описания
	ErrDescriptionTooLong = errors.New("submit_reservation: description is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)
