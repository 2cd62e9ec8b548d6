package fetch_slots

import (
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	UserID      int64              // ID пользователя (для логирования, не влияет на результат)
	Date        time.Time          // Дата записи (без времени)
	ServiceType domain.ServiceType // Тип сервиса: regular или major
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date        time.Time
	ServiceType domain.ServiceType
	Slots       []types.TimeString // Упорядоченный список слотов; пустой = все занято

	// Degraded true, если внешний API был недоступен и список слотов
	// деградировал до пустого (форма остается рабочей)
	Degraded bool
}
