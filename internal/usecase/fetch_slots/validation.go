package fetch_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidServiceType, req.ServiceType)
	}

	// Запись в тот же день запрещена - ближайшая допустимая дата завтра
	if !domain.IsBookableDate(req.Date, now) {
		return fmt.Errorf("%w: earliest bookable date is %s",
			ErrDateTooSoon, domain.MinBookableDate(now).Format(domain.DateFormat))
	}

	return nil
}
