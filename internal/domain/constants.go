package domain

import "github.com/m04kA/SMC-IntakeGateway/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	// MinLeadDays минимальное количество дней от сегодняшней даты до даты
	// записи. 1 = запись в тот же день запрещена, ближайшая дата - завтра.
	MinLeadDays = 1

	MaxDescriptionLength = 500
)

// MajorServiceTimes время начала слотов, допустимых для major-сервиса.
// Правило продублировано с внешнего API и должно с ним совпадать.
var MajorServiceTimes = []types.TimeString{"13:00", "15:00"}

// IsMajorServiceTime returns true if the slot time is allowed for a
// major service reservation.
func IsMajorServiceTime(t types.TimeString) bool {
	for _, allowed := range MajorServiceTimes {
		if t == allowed {
			return true
		}
	}
	return false
}
