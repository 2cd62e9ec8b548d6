package submit_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Draft == nil {
		return fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}
	return nil
}

// validateDraft проверяет инварианты черновика перед отправкой.
// Правила зеркалят проверки внешнего API: черновик, не проходящий их,
// гарантированно будет отклонен, поэтому до сети он не доходит.
func validateDraft(draft *domain.ReservationDraft, now time.Time) error {
	// 1. Мотоцикл обязателен всегда
	if !draft.HasVehicle() {
		return ErrNoVehicle
	}

	// 2. Дата обязательна и не раньше завтрашнего дня
	if !draft.HasDate() {
		return ErrNoDate
	}
	if !domain.IsBookableDate(draft.Date, now) {
		return fmt.Errorf("%w: earliest bookable date is %s",
			ErrDateTooSoon, domain.MinBookableDate(now).Format(domain.DateFormat))
	}

	if len(draft.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: max %d characters", ErrDescriptionTooLong, domain.MaxDescriptionLength)
	}

	// 3. Режим свободного описания: слот не нужен, описание обязательно
	if draft.UseCustomDescription {
		if strings.TrimSpace(draft.Description) == "" {
			return ErrEmptyDescription
		}
		return nil
	}

	// 4. Обычный режим: слот обязателен
	if draft.Time.IsZero() {
		return ErrNoTime
	}
	if err := draft.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Major-сервис доступен только в фиксированные времена.
	// Правило продублировано с внешнего API и должно с ним совпадать.
	if draft.EffectiveServiceType() == domain.ServiceTypeMajor && !domain.IsMajorServiceTime(draft.Time) {
		return ErrMajorTimeNotAllowed
	}

	return nil
}
