package load_catalog

import "github.com/m04kA/SMC-IntakeGateway/internal/domain"

// Request модель запроса на загрузку каталога
type Request struct {
	UserID int64 // ID пользователя, чьи мотоциклы загружаем
}

// Response модель ответа с загруженным каталогом.
// Каждый список деградирует до пустого независимо от другого:
// частичный отказ внешнего API не блокирует форму.
type Response struct {
	Symptoms []domain.Symptom
	Vehicles []domain.Vehicle

	// DefaultVehicleID первый мотоцикл из списка, предвыбор для черновика
	// (nil, если мотоциклов нет или список не загрузился)
	DefaultVehicleID *int64

	// SymptomsUnavailable true, если каталог симптомов не загрузился
	SymptomsUnavailable bool
	// VehiclesUnavailable true, если список мотоциклов не загрузился
	VehiclesUnavailable bool
}
