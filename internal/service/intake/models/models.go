package models

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// Session intake-сессия: один черновик записи и все, что нужно форме.
// Черновик живет только в памяти сессии: от открытия формы до успешной
// отправки (сессия удаляется) или истечения TTL (заброшена).
//
// Мутации выполняются строго под встроенным мьютексом; списки каталога
// после загрузки только читаются.
type Session struct {
	sync.Mutex

	ID     string
	UserID int64

	State domain.DraftState
	Draft *domain.ReservationDraft

	// Каталог, загруженный на старте сессии (read-only после загрузки)
	Symptoms            []domain.Symptom
	SymptomsByID        map[int64]domain.Symptom
	Vehicles            []domain.Vehicle
	SymptomsUnavailable bool
	VehiclesUnavailable bool

	// Видимый список слотов для текущей пары (дата, тип сервиса)
	Slots         []types.TimeString
	SlotsPending  bool // true, пока перезапрос слотов в полете
	SlotsDegraded bool // true, если последний запрос слотов деградировал

	// slotGen поколение запроса слотов: побеждает последний запрос,
	// ответы устаревших поколений отбрасываются
	slotGen uint64

	// LastError дословное сообщение последней ошибки отправки
	LastError string

	// Reservation результат успешной отправки
	Reservation *domain.Reservation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession создает сессию в состоянии editing с пустым черновиком
func NewSession(id string, userID int64, now time.Time) *Session {
	return &Session{
		ID:           id,
		UserID:       userID,
		State:        domain.StateEditing,
		Draft:        domain.NewReservationDraft(),
		Symptoms:     []domain.Symptom{},
		SymptomsByID: map[int64]domain.Symptom{},
		Vehicles:     []domain.Vehicle{},
		Slots:        []types.TimeString{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SetCatalog сохраняет загруженный каталог в сессию
func (s *Session) SetCatalog(symptoms []domain.Symptom, vehicles []domain.Vehicle) {
	s.Symptoms = symptoms
	s.Vehicles = vehicles
	s.SymptomsByID = make(map[int64]domain.Symptom, len(symptoms))
	for _, sym := range symptoms {
		s.SymptomsByID[sym.ID] = sym
	}
}

// HasVehicle проверяет, что мотоцикл есть в каталоге сессии
func (s *Session) HasVehicle(vehicleID int64) bool {
	for _, v := range s.Vehicles {
		if v.ID == vehicleID {
			return true
		}
	}
	return false
}

// HasSlot проверяет, что слот есть в видимом списке
func (s *Session) HasSlot(t types.TimeString) bool {
	for _, slot := range s.Slots {
		if slot == t {
			return true
		}
	}
	return false
}

// NextSlotGeneration выдает поколение для нового запроса слотов,
// инвалидируя все запросы в полете
func (s *Session) NextSlotGeneration() uint64 {
	s.slotGen++
	return s.slotGen
}

// IsCurrentSlotGeneration проверяет, что поколение все еще актуально
func (s *Session) IsCurrentSlotGeneration(gen uint64) bool {
	return s.slotGen == gen
}

// Touch обновляет время последней активности
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}

// ExpiredAt проверяет, что сессия заброшена дольше ttl
func (s *Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.UpdatedAt) > ttl
}

// ReadyToSubmit проверяет клиентский инвариант готовности черновика:
// это правило включения кнопки отправки, зеркало серверных проверок.
// Возвращает false и причину, если отправка должна быть заблокирована.
func (s *Session) ReadyToSubmit(now time.Time) (bool, string) {
	d := s.Draft

	if !d.HasVehicle() {
		return false, "vehicle is not selected"
	}
	if !d.HasDate() {
		return false, "date is not selected"
	}
	if !domain.IsBookableDate(d.Date, now) {
		return false, "date must be at least tomorrow"
	}

	if d.UseCustomDescription {
		if d.Description == "" {
			return false, "description is required"
		}
		return true, ""
	}

	if d.Time.IsZero() {
		return false, "time slot is not selected"
	}
	if d.EffectiveServiceType() == domain.ServiceTypeMajor && !domain.IsMajorServiceTime(d.Time) {
		return false, "major service is only available at 13:00 or 15:00"
	}

	return true, ""
}

// DraftChanges набор изменений черновика, применяемых за один запрос.
// nil-поле означает "не менять".
type DraftChanges struct {
	SelectVehicleID      *int64
	ToggleSymptomID      *int64
	UseCustomDescription *bool
	Description          *string
	Date                 *time.Time
	Time                 *types.TimeString
}

// IsEmpty возвращает true, если изменений нет
func (c *DraftChanges) IsEmpty() bool {
	return c.SelectVehicleID == nil &&
		c.ToggleSymptomID == nil &&
		c.UseCustomDescription == nil &&
		c.Description == nil &&
		c.Date == nil &&
		c.Time == nil
}
