package submit_reservation

import (
	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
)

// Request модель запроса на отправку черновика записи
type Request struct {
	UserID int64                    // ID пользователя-владельца черновика
	Draft  *domain.ReservationDraft // Черновик, собранный intake-формой
}

// Response модель ответа с созданной записью
type Response struct {
	Reservation *domain.Reservation // Запись, принятая внешним API
}
