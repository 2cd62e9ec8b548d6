package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	closeIntakeHandler "github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/close_intake"
	getIntakeHandler "github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/get_intake"
	getUserReservationsHandler "github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/get_user_reservations"
	startIntakeHandler "github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/start_intake"
	submitReservationHandler "github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/submit_reservation"
	updateDraftHandler "github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeGateway/internal/config"
	sessionRepo "github.com/m04kA/SMC-IntakeGateway/internal/infra/storage/session"
	garageServiceClient "github.com/m04kA/SMC-IntakeGateway/internal/integrations/garageservice"
	intakeService "github.com/m04kA/SMC-IntakeGateway/internal/service/intake"
	fetchSlotsUC "github.com/m04kA/SMC-IntakeGateway/internal/usecase/fetch_slots"
	loadCatalogUC "github.com/m04kA/SMC-IntakeGateway/internal/usecase/load_catalog"
	submitReservationUC "github.com/m04kA/SMC-IntakeGateway/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-IntakeGateway/pkg/logger"
	"github.com/m04kA/SMC-IntakeGateway/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-IntakeGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент внешнего API записи на сервис
	garageClient := garageServiceClient.NewClient(
		cfg.GarageService.URL,
		time.Duration(cfg.GarageService.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		garageClient.SetMetrics(metricsCollector)
	}
	log.Info("GarageService client initialized (url=%s, timeout=%ds)",
		cfg.GarageService.URL, cfg.GarageService.Timeout)

	// Инициализируем хранилище intake-сессий (только память процесса)
	sessionTTL := time.Duration(cfg.Intake.SessionTTLMinutes) * time.Minute
	sessionStore := sessionRepo.NewRepository(sessionTTL)
	log.Info("Session store initialized (ttl=%s)", sessionTTL)

	// Запускаем уборку заброшенных сессий
	stopSweepCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := sessionStore.Sweep(); removed > 0 {
					log.Info("Session sweep: removed %d expired sessions", removed)
				}
				if cfg.Metrics.Enabled {
					metricsCollector.SetActiveSessions(sessionStore.Count())
				}
			case <-stopSweepCh:
				return
			}
		}
	}()

	// Инициализируем use cases
	loadCatalog := loadCatalogUC.NewUseCase(garageClient, log)
	fetchSlots := fetchSlotsUC.NewUseCase(garageClient, log)
	submitReservation := submitReservationUC.NewUseCase(garageClient, log)

	// Инициализируем сервис intake-формы
	intakeSvc := intakeService.NewService(
		sessionStore,
		loadCatalog,
		fetchSlots,
		submitReservation,
		log,
	)

	// Инициализируем handlers
	startIntake := startIntakeHandler.NewHandler(intakeSvc, log)
	getIntake := getIntakeHandler.NewHandler(intakeSvc, log)
	updateDraft := updateDraftHandler.NewHandler(intakeSvc, log)
	submitDraft := submitReservationHandler.NewHandler(intakeSvc, log)
	closeIntake := closeIntakeHandler.NewHandler(intakeSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(garageClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Intake-сессии ---
	// Открытие сессии (загрузка каталога + пустой черновик)
	protected.HandleFunc("/intake/sessions", startIntake.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии (черновик, слоты, вердикт готовности)
	protected.HandleFunc("/intake/sessions/{sessionId}", getIntake.Handle).Methods(http.MethodGet)

	// Изменение черновика
	protected.HandleFunc("/intake/sessions/{sessionId}", updateDraft.Handle).Methods(http.MethodPatch)

	// Отправка черновика во внешний API
	protected.HandleFunc("/intake/sessions/{sessionId}/submit", submitDraft.Handle).Methods(http.MethodPost)

	// Явное закрытие сессии
	protected.HandleFunc("/intake/sessions/{sessionId}", closeIntake.Handle).Methods(http.MethodDelete)

	// --- История записей ---
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем уборку сессий
	close(stopSweepCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
