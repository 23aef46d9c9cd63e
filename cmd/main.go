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

	cancelAppointmentHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/create_appointment"
	createExceptionHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/create_exception"
	deleteExceptionHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/delete_exception"
	getAgendaAppointmentsHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/get_agenda_appointments"
	getAppointmentHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/get_available_slots"
	getNextSessionSlotsHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/get_next_session_slots"
	getPackageHistoryHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/get_package_history"
	getScheduleConfigHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/get_schedule_config"
	resolveSlotHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/resolve_slot"
	updateAppointmentStatusHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/update_appointment_status"
	updateScheduleConfigHandler "github.com/dsalazarv/MCS-AgendaService/internal/api/handlers/update_schedule_config"
	"github.com/dsalazarv/MCS-AgendaService/internal/api/middleware"
	"github.com/dsalazarv/MCS-AgendaService/internal/config"
	appointmentRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/appointment"
	exceptionRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/exception"
	scheduleRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/schedule"
	servicecatalogRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
	notifierClient "github.com/dsalazarv/MCS-AgendaService/internal/integrations/notifier"
	appointmentsService "github.com/dsalazarv/MCS-AgendaService/internal/service/appointments"
	scheduleService "github.com/dsalazarv/MCS-AgendaService/internal/service/schedule"
	createAppointmentUC "github.com/dsalazarv/MCS-AgendaService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/dsalazarv/MCS-AgendaService/internal/usecase/get_available_slots"
	getNextSessionSlotsUC "github.com/dsalazarv/MCS-AgendaService/internal/usecase/get_next_session_slots"
	resolveSlotUC "github.com/dsalazarv/MCS-AgendaService/internal/usecase/resolve_slot"
	"github.com/dsalazarv/MCS-AgendaService/pkg/dbmetrics"
	"github.com/dsalazarv/MCS-AgendaService/pkg/logger"
	"github.com/dsalazarv/MCS-AgendaService/pkg/metrics"
	"github.com/dsalazarv/MCS-AgendaService/pkg/simpletxmanager"
	"github.com/dsalazarv/MCS-AgendaService/pkg/txmanager"
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

	log.Info("Starting MCS-AgendaService...")
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

	// Инициализируем клиент сервиса уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s, timeout=%ds)",
		cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository    *appointmentRepo.Repository
		scheduleRepository       *scheduleRepo.Repository
		exceptionRepository      *exceptionRepo.Repository
		servicecatalogRepository *servicecatalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	// TODO: вынести контракт в отдельный пакет, чтобы не дублировать его тут
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		exceptionRepository = exceptionRepo.NewRepository(wrappedDB)
		servicecatalogRepository = servicecatalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		exceptionRepository = exceptionRepo.NewRepository(db)
		servicecatalogRepository = servicecatalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		notifier,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		exceptionRepository,
		servicecatalogRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		exceptionRepository,
		servicecatalogRepository,
		notifier,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		exceptionRepository,
		servicecatalogRepository,
		log,
	)

	resolveSlotUseCase := resolveSlotUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		exceptionRepository,
		servicecatalogRepository,
		log,
	)

	getNextSessionSlotsUseCase := getNextSessionSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		exceptionRepository,
		servicecatalogRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	resolveSlot := resolveSlotHandler.NewHandler(resolveSlotUseCase, log)
	getNextSessionSlots := getNextSessionSlotsHandler.NewHandler(getNextSessionSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getAgendaAppointments := getAgendaAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getPackageHistory := getPackageHistoryHandler.NewHandler(appointmentsSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)
	createException := createExceptionHandler.NewHandler(scheduleSvc, log)
	deleteException := deleteExceptionHandler.NewHandler(scheduleSvc, log)

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

	// Доступные слоты услуги на дату
	api.HandleFunc("/agendas/{agendaId}/services/{serviceId}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка конкретного слота
	api.HandleFunc("/agendas/{agendaId}/services/{serviceId}/slots/resolve",
		resolveSlot.Handle).Methods(http.MethodGet)

	// Слоты следующего сеанса пакета
	api.HandleFunc("/appointments/{appointmentId}/next-session/slots",
		getNextSessionSlots.Handle).Methods(http.MethodGet)

	// Конфигурация расписания агенды
	api.HandleFunc("/agendas/{agendaId}/schedule",
		getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История сеансов пакета
	protected.HandleFunc("/appointments/{appointmentId}/package", getPackageHistory.Handle).Methods(http.MethodGet)

	// --- Управление агендой (для администраторов) ---
	// Список записей агенды
	protected.HandleFunc("/agendas/{agendaId}/appointments", getAgendaAppointments.Handle).Methods(http.MethodGet)

	// Обновление конфигурации расписания
	protected.HandleFunc("/agendas/{agendaId}/schedule", updateScheduleConfig.Handle).Methods(http.MethodPut)

	// Создание исключения расписания
	protected.HandleFunc("/agendas/{agendaId}/schedule/exceptions", createException.Handle).Methods(http.MethodPost)

	// Удаление исключения расписания
	protected.HandleFunc("/agendas/{agendaId}/schedule/exceptions/{exceptionId}", deleteException.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
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
