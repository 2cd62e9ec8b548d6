package garageservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("garageservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("garageservice client: invalid response")

	// ErrUnauthorized возвращается, когда внешний API отклонил учетные данные
	ErrUnauthorized = errors.New("garageservice client: unauthorized")
)

// RejectionError ошибка создания записи: внешний API отклонил запрос и
// вернул текст причины. Текст сохраняется дословно - он показывается
// пользователю без изменений.
type RejectionError struct {
	Message string
}

// Error возвращает текст причины отказа как есть
func (e *RejectionError) Error() string {
	return e.Message
}
