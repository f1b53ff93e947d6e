package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	closeFormHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/close_form"
	createRequestHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/create_reservation_request"
	createSessionHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/create_session"
	getCalendarHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/get_calendar"
	getFallbackTemplateHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/get_fallback_template"
	getProviderRequestsHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/get_provider_requests"
	getRequestHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/get_reservation_request"
	openFormHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/open_form"
	removeSlotHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/remove_slot"
	setFormTabHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/set_form_tab"
	setPageHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/set_page"
	toggleSlotHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/toggle_slot"
	updateAvailabilityHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/update_availability"
	updateFallbackTemplateHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/update_fallback_template"
	updateRequestStatusHandler "github.com/m04kA/SLB-ReservationService/internal/api/handlers/update_request_status"
	"github.com/m04kA/SLB-ReservationService/internal/api/middleware"
	"github.com/m04kA/SLB-ReservationService/internal/config"
	"github.com/m04kA/SLB-ReservationService/internal/infra/sessionstore"
	templateRepo "github.com/m04kA/SLB-ReservationService/internal/infra/storage/fallbacktmpl"
	reservationRepo "github.com/m04kA/SLB-ReservationService/internal/infra/storage/reservation"
	providerServiceClient "github.com/m04kA/SLB-ReservationService/internal/integrations/providerservice"
	requestsService "github.com/m04kA/SLB-ReservationService/internal/service/requests"
	selectionService "github.com/m04kA/SLB-ReservationService/internal/service/selection"
	templatesService "github.com/m04kA/SLB-ReservationService/internal/service/templates"
	createRequestUC "github.com/m04kA/SLB-ReservationService/internal/usecase/create_reservation_request"
	createSessionUC "github.com/m04kA/SLB-ReservationService/internal/usecase/create_session"
	"github.com/m04kA/SLB-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SLB-ReservationService/pkg/logger"
	"github.com/m04kA/SLB-ReservationService/pkg/metrics"
	"github.com/m04kA/SLB-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SLB-ReservationService/pkg/txmanager"
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

	log.Info("Starting SLB-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента каталога провайдеров
	providerClient := providerServiceClient.NewClient(
		cfg.ProviderService.URL,
		time.Duration(cfg.ProviderService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProviderService=%s timeout=%ds)",
		cfg.ProviderService.URL, cfg.ProviderService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		templateRepository    *templateRepo.Repository
	)

	// Интерфейс transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		templateRepository = templateRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		templateRepository = templateRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хранилище календарных сессий: TTL + верхняя граница по количеству
	sessionStore := sessionstore.New(
		cfg.Engine.MaxSessions,
		time.Duration(cfg.Engine.SessionTTL)*time.Second,
	)
	log.Info("Session store initialized (max=%d, ttl=%ds)", cfg.Engine.MaxSessions, cfg.Engine.SessionTTL)

	// Инициализируем сервисы
	selectionSvc := selectionService.NewService(sessionStore, log)
	requestsSvc := requestsService.NewService(
		reservationRepository,
		txMgr,
		&requestsService.RealTimeProvider{},
		log,
	)
	templatesSvc := templatesService.NewService(templateRepository, txMgr, log)

	// Инициализируем use cases
	createSessionUseCase := createSessionUC.NewUseCase(
		templateRepository,
		providerClient,
		selectionSvc,
		createSessionUC.EngineDefaults{
			SlotDurationMinutes: cfg.Engine.SlotStepMinutes,
			ChunkDays:           cfg.Engine.ChunkDays,
			FallbackEnabled:     cfg.Engine.FallbackEnabled,
		},
		log,
	)
	createRequestUseCase := createRequestUC.NewUseCase(
		reservationRepository,
		selectionSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(createSessionUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(selectionSvc, log)
	toggleSlot := toggleSlotHandler.NewHandler(selectionSvc, log)
	removeSlot := removeSlotHandler.NewHandler(selectionSvc, log)
	setPage := setPageHandler.NewHandler(selectionSvc, log)
	openForm := openFormHandler.NewHandler(selectionSvc, log)
	closeForm := closeFormHandler.NewHandler(selectionSvc, log)
	setFormTab := setFormTabHandler.NewHandler(selectionSvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(selectionSvc, log)
	createRequest := createRequestHandler.NewHandler(createRequestUseCase, log)
	getRequest := getRequestHandler.NewHandler(requestsSvc, log)
	updateRequestStatus := updateRequestStatusHandler.NewHandler(requestsSvc, log)
	getProviderRequests := getProviderRequestsHandler.NewHandler(requestsSvc, log)
	getFallbackTemplate := getFallbackTemplateHandler.NewHandler(templatesSvc, log)
	updateFallbackTemplate := updateFallbackTemplateHandler.NewHandler(templatesSvc, log)

	// Планировщик уборки протухших заявок
	requestTTL := time.Duration(cfg.Engine.RequestTTLDays) * 24 * time.Hour
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Engine.ExpireCronSpec, func() {
		if _, err := requestsSvc.ExpireStale(context.Background(), requestTTL); err != nil {
			log.Error("Scheduled ExpireStale failed: %v", err)
		}
	}); err != nil {
		log.Fatal("Failed to register expire job (%q): %v", cfg.Engine.ExpireCronSpec, err)
	}
	scheduler.Start()
	log.Info("Stale request expiry scheduled (%q, ttl=%d days)", cfg.Engine.ExpireCronSpec, cfg.Engine.RequestTTLDays)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Создание календарной сессии для провайдера
	api.HandleFunc("/providers/{providerId}/sessions", createSession.Handle).Methods(http.MethodPost)

	// Текущее представление календаря сессии
	api.HandleFunc("/sessions/{sessionId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Команды над сессией ---
	api.HandleFunc("/sessions/{sessionId}/selection/toggle", toggleSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/selection/remove", removeSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/page", setPage.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/form/open", openForm.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/form/close", closeForm.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/form/tab", setFormTab.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/availability/refresh", updateAvailability.HandleBegin).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/availability", updateAvailability.Handle).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки на бронирование ---
	// Создание заявки из выбора сессии
	protected.HandleFunc("/reservation-requests", createRequest.Handle).Methods(http.MethodPost)

	// Получение заявки по ID
	protected.HandleFunc("/reservation-requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

	// Решение оператора по заявке
	protected.HandleFunc("/reservation-requests/{requestId}/status", updateRequestStatus.Handle).Methods(http.MethodPatch)

	// Заявки провайдера (для операторского инструмента)
	protected.HandleFunc("/providers/{providerId}/reservation-requests", getProviderRequests.Handle).Methods(http.MethodGet)

	// --- Шаблоны fallback-расписаний ---
	protected.HandleFunc("/providers/{providerId}/fallback-template", getFallbackTemplate.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/fallback-template", updateFallbackTemplate.Handle).Methods(http.MethodPut)

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

	// Останавливаем планировщик и сбор метрик connection pool
	cronCtx := scheduler.Stop()
	<-cronCtx.Done()
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
