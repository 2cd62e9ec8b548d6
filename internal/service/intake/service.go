package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	sessionRepo "github.com/m04kA/SMC-IntakeGateway/internal/infra/storage/session"
	"github.com/m04kA/SMC-IntakeGateway/internal/integrations/garageservice"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
	fetchSlots "github.com/m04kA/SMC-IntakeGateway/internal/usecase/fetch_slots"
	loadCatalog "github.com/m04kA/SMC-IntakeGateway/internal/usecase/load_catalog"
	submitReservation "github.com/m04kA/SMC-IntakeGateway/internal/usecase/submit_reservation"
)

// msgSubmitFailed запасное сообщение, когда внешний API упал без текста причины
const msgSubmitFailed = "не удалось создать запись, попробуйте еще раз"

// Service сервис intake-формы: управляет сессиями, применяет изменения
// черновика и ведет машину состояний editing -> submitting ->
// {succeeded, failed}. Failed возвращается в editing при следующем
// изменении - черновик сохраняется для исправления и повторной отправки.
type Service struct {
	store        SessionStore
	loadCatalog  LoadCatalogUseCase
	fetchSlots   FetchSlotsUseCase
	submit       SubmitReservationUseCase
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса intake-формы
func NewService(
	store SessionStore,
	loadCatalogUC LoadCatalogUseCase,
	fetchSlotsUC FetchSlotsUseCase,
	submitUC SubmitReservationUseCase,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		loadCatalog:  loadCatalogUC,
		fetchSlots:   fetchSlotsUC,
		submit:       submitUC,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// StartIntake открывает новую intake-сессию: загружает каталог,
// создает пустой черновик и предвыбирает первый мотоцикл пользователя.
func (svc *Service) StartIntake(ctx context.Context, userID int64) (*models.Session, error) {
	svc.logger.Info("StartIntake: starting session for user=%d", userID)

	catalog, err := svc.loadCatalog.Execute(ctx, &loadCatalog.Request{UserID: userID})
	if err != nil {
		svc.logger.Error("StartIntake: failed to load catalog for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	s := svc.store.Create(userID)

	s.Lock()
	s.SetCatalog(catalog.Symptoms, catalog.Vehicles)
	s.SymptomsUnavailable = catalog.SymptomsUnavailable
	s.VehiclesUnavailable = catalog.VehiclesUnavailable
	if catalog.DefaultVehicleID != nil {
		s.Draft.VehicleID = catalog.DefaultVehicleID
	}
	s.Unlock()

	svc.logger.Info("StartIntake: session=%s created for user=%d (%d symptoms, %d vehicles)",
		s.ID, userID, len(catalog.Symptoms), len(catalog.Vehicles))

	return s, nil
}

// GetSession возвращает сессию пользователя
func (svc *Service) GetSession(sessionID string, userID int64) (*models.Session, error) {
	return svc.getOwned(sessionID, userID)
}

// CloseSession явно удаляет сессию (пользователь ушел с формы)
func (svc *Service) CloseSession(sessionID string, userID int64) error {
	s, err := svc.getOwned(sessionID, userID)
	if err != nil {
		return err
	}
	svc.store.Delete(s.ID)
	svc.logger.Info("CloseSession: session=%s closed by user=%d", sessionID, userID)
	return nil
}

// ApplyChanges применяет набор изменений к черновику.
//
// Производный тип сервиса пересчитывается синхронно при каждом
// изменении симптомов - до любого перезапроса слотов. Если после
// применения изменился контекст слотов (дата или эффективный тип
// сервиса), запускается асинхронный перезапрос: каждый запрос несет
// поколение сессии, ответ устаревшего поколения отбрасывается
// (побеждает последний запрос).
func (svc *Service) ApplyChanges(ctx context.Context, sessionID string, userID int64, changes *models.DraftChanges) (*models.Session, error) {
	if changes == nil || changes.IsEmpty() {
		return nil, ErrEmptyChanges
	}

	s, err := svc.getOwned(sessionID, userID)
	if err != nil {
		return nil, err
	}

	now := svc.timeProvider.Now()

	s.Lock()
	defer s.Unlock()

	if !s.State.CanEdit() {
		return nil, ErrNotEditable
	}

	// Снимок контекста слотов до изменений
	prevDate := s.Draft.Date
	prevServiceType := s.Draft.EffectiveServiceType()
	prevCustom := s.Draft.UseCustomDescription

	// Изменения применяются к копии черновика и подменяются одним
	// присваиванием: ошибка в середине набора не оставляет в сессии
	// частично примененных правок
	draft := cloneDraft(s.Draft)
	if err := svc.applyChanges(s, draft, changes, now); err != nil {
		return nil, err
	}
	s.Draft = draft

	// Включение режима описания делает слоты неприменимыми: чистим
	// список и инвалидируем запросы в полете
	if changes.UseCustomDescription != nil && *changes.UseCustomDescription {
		s.NextSlotGeneration()
		s.Slots = nil
		s.SlotsPending = false
		s.SlotsDegraded = false
	}

	// Исправление после неудачной отправки возвращает форму в editing
	if s.State == domain.StateFailed {
		s.State = domain.StateEditing
	}
	s.Touch(now)

	// Перезапрос слотов при изменении контекста. В режиме свободного
	// описания слоты не нужны и не запрашиваются.
	if svc.slotContextChanged(s, prevDate, prevServiceType, prevCustom) {
		gen := s.NextSlotGeneration()
		s.Slots = nil
		s.SlotsPending = true
		s.SlotsDegraded = false

		go svc.refreshSlots(s, gen, userID, s.Draft.Date, s.Draft.EffectiveServiceType())
	}

	return s, nil
}

// applyChanges применяет изменения к переданной копии черновика.
// Сессия используется только для чтения каталога и видимых слотов.
// Порядок фиксирован: мотоцикл, режим описания, симптом, описание,
// дата, время.
func (svc *Service) applyChanges(s *models.Session, draft *domain.ReservationDraft, changes *models.DraftChanges, now time.Time) error {
	if changes.SelectVehicleID != nil {
		if !s.HasVehicle(*changes.SelectVehicleID) {
			return ErrVehicleNotFound
		}
		draft.VehicleID = changes.SelectVehicleID
	}

	if changes.UseCustomDescription != nil {
		draft.SetCustomDescription(*changes.UseCustomDescription)
	}

	if changes.ToggleSymptomID != nil {
		if draft.UseCustomDescription {
			return ErrCustomModeActive
		}
		if _, ok := s.SymptomsByID[*changes.ToggleSymptomID]; !ok {
			return ErrSymptomNotFound
		}
		draft.ToggleSymptom(*changes.ToggleSymptomID)
		// Пересчет строго синхронный, до какого-либо перезапроса слотов
		draft.RecomputeServiceType(s.SymptomsByID)
	}

	if changes.Description != nil {
		draft.Description = *changes.Description
	}

	if changes.Date != nil {
		if !domain.IsBookableDate(*changes.Date, now) {
			return fmt.Errorf("%w: earliest bookable date is %s",
				ErrDateTooSoon, domain.MinBookableDate(now).Format(domain.DateFormat))
		}
		draft.SetDate(*changes.Date)
	}

	if changes.Time != nil {
		if draft.UseCustomDescription {
			return ErrCustomModeActive
		}
		if !s.HasSlot(*changes.Time) {
			return ErrSlotNotOffered
		}
		draft.Time = *changes.Time
	}

	return nil
}

// slotContextChanged проверяет, что изменения требуют перезапроса слотов
func (svc *Service) slotContextChanged(s *models.Session, prevDate time.Time, prevServiceType domain.ServiceType, prevCustom bool) bool {
	if !s.Draft.NeedsSlot() || !s.Draft.HasDate() {
		return false
	}
	return !s.Draft.Date.Equal(prevDate) ||
		s.Draft.EffectiveServiceType() != prevServiceType ||
		prevCustom // выход из режима описания: список был очищен, загружаем заново
}

// refreshSlots выполняет асинхронный перезапрос слотов.
// Запрос переживает HTTP-запрос, который его инициировал, поэтому
// используется фоновый контекст; таймаут обеспечивает HTTP-клиент.
func (svc *Service) refreshSlots(s *models.Session, gen uint64, userID int64, date time.Time, serviceType domain.ServiceType) {
	resp, err := svc.fetchSlots.Execute(context.Background(), &fetchSlots.Request{
		UserID:      userID,
		Date:        date,
		ServiceType: serviceType,
	})

	s.Lock()
	defer s.Unlock()

	if !s.IsCurrentSlotGeneration(gen) {
		// Пока запрос был в полете, пользователь поменял дату или тип
		// сервиса: результат устарел и не должен быть показан
		svc.logger.Info("refreshSlots: session=%s discarding stale slot response (gen=%d) for date=%s",
			s.ID, gen, date.Format(domain.DateFormat))
		return
	}

	s.SlotsPending = false

	if err != nil {
		svc.logger.Error("refreshSlots: session=%s fetch failed: %v", s.ID, err)
		s.Slots = nil
		s.SlotsDegraded = true
		return
	}

	s.Slots = resp.Slots
	s.SlotsDegraded = resp.Degraded
}

// Submit отправляет черновик во внешний API.
// Повторная отправка заблокирована, пока предыдущая в полете. При
// отказе черновик сохраняется, сообщение внешнего API - дословно в
// LastError. Успешная сессия удаляется: черновик передан внешнему API.
func (svc *Service) Submit(ctx context.Context, sessionID string, userID int64) (*domain.Reservation, error) {
	s, err := svc.getOwned(sessionID, userID)
	if err != nil {
		return nil, err
	}

	now := svc.timeProvider.Now()

	s.Lock()

	switch s.State {
	case domain.StateSubmitting:
		s.Unlock()
		return nil, ErrSubmissionInFlight
	case domain.StateSucceeded:
		s.Unlock()
		return nil, ErrAlreadySucceeded
	}

	if ready, reason := s.ReadyToSubmit(now); !ready {
		s.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotReady, reason)
	}

	// Снимок черновика: отправляется согласованное состояние, даже если
	// кто-то попытается мутировать сессию (мутации заблокированы
	// состоянием submitting, но снимок дешевле и надежнее)
	draft := cloneDraft(s.Draft)
	s.State = domain.StateSubmitting
	s.LastError = ""
	s.Unlock()

	svc.logger.Info("Submit: session=%s submitting draft for user=%d", sessionID, userID)

	resp, err := svc.submit.Execute(ctx, &submitReservation.Request{
		UserID: userID,
		Draft:  draft,
	})

	s.Lock()

	if err != nil {
		s.State = domain.StateFailed
		s.Touch(now)

		var rejection *garageservice.RejectionError
		if errors.As(err, &rejection) {
			// Текст причины отказа показывается пользователю дословно
			s.LastError = rejection.Message
		} else {
			s.LastError = msgSubmitFailed
		}
		s.Unlock()

		svc.logger.Warn("Submit: session=%s failed for user=%d: %v", sessionID, userID, err)
		return nil, err
	}

	s.State = domain.StateSucceeded
	s.Reservation = resp.Reservation
	s.Unlock()

	// Удаление строго после освобождения блокировки сессии: уборщик
	// берет блокировки сессий, и вызов хранилища под блокировкой сессии
	// выворачивает порядок взятия
	svc.store.Delete(s.ID)

	svc.logger.Info("Submit: session=%s created reservation id=%d for user=%d",
		sessionID, resp.Reservation.ID, userID)

	return resp.Reservation, nil
}

// getOwned возвращает сессию с проверкой владельца
func (svc *Service) getOwned(sessionID string, userID int64) (*models.Session, error) {
	s, err := svc.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if s.UserID != userID {
		svc.logger.Warn("getOwned: access denied for user=%d to session=%s", userID, sessionID)
		return nil, ErrAccessDenied
	}

	return s, nil
}

// cloneDraft делает глубокую копию черновика для отправки
func cloneDraft(d *domain.ReservationDraft) *domain.ReservationDraft {
	clone := *d
	clone.SymptomIDs = append([]int64{}, d.SymptomIDs...)
	if d.VehicleID != nil {
		id := *d.VehicleID
		clone.VehicleID = &id
	}
	return &clone
}
