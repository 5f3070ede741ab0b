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

	backWizardHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/back_wizard"
	cancelWizardHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/cancel_wizard"
	continueWizardHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/continue_wizard"
	exportConfirmationHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/export_confirmation"
	getAvailabilityHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/get_catalog"
	getUserBookingsHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/get_user_bookings"
	getWizardHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/get_wizard"
	updateWizardHandler "github.com/knows-studios/KNS-BookingService/internal/api/handlers/update_wizard"
	"github.com/knows-studios/KNS-BookingService/internal/api/middleware"
	"github.com/knows-studios/KNS-BookingService/internal/availability"
	"github.com/knows-studios/KNS-BookingService/internal/catalog"
	"github.com/knows-studios/KNS-BookingService/internal/config"
	"github.com/knows-studios/KNS-BookingService/internal/confirmation"
	cronWorker "github.com/knows-studios/KNS-BookingService/internal/cron"
	"github.com/knows-studios/KNS-BookingService/internal/domain"
	bookingRepo "github.com/knows-studios/KNS-BookingService/internal/infra/storage/booking"
	draftRepo "github.com/knows-studios/KNS-BookingService/internal/infra/storage/draft"
	"github.com/knows-studios/KNS-BookingService/internal/integrations/bookingplatform"
	"github.com/knows-studios/KNS-BookingService/internal/notify"
	"github.com/knows-studios/KNS-BookingService/internal/pricing"
	bookingsService "github.com/knows-studios/KNS-BookingService/internal/service/bookings"
	wizardService "github.com/knows-studios/KNS-BookingService/internal/service/wizard"
	advanceWizardUC "github.com/knows-studios/KNS-BookingService/internal/usecase/advance_wizard"
	"github.com/knows-studios/KNS-BookingService/pkg/dbmetrics"
	"github.com/knows-studios/KNS-BookingService/pkg/logger"
	"github.com/knows-studios/KNS-BookingService/pkg/metrics"
	"github.com/knows-studios/KNS-BookingService/pkg/simpletxmanager"
	"github.com/knows-studios/KNS-BookingService/pkg/txmanager"
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

	log.Info("Starting KNS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s (service=%s)", cfg.Metrics.Path, metricsCollector.Service())
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

	// Загружаем каталог студии
	var studioCatalog *catalog.Catalog
	if cfg.Booking.CatalogPath != "" {
		studioCatalog, err = catalog.LoadFile(cfg.Booking.CatalogPath)
		if err != nil {
			log.Fatal("Failed to load catalog from %s: %v", cfg.Booking.CatalogPath, err)
		}
		log.Info("Catalog loaded from %s (packages=%d, addons=%d, slots=%d)",
			cfg.Booking.CatalogPath, len(studioCatalog.Packages()), len(studioCatalog.AddOns()), len(studioCatalog.TimeSlots()))
	} else {
		studioCatalog = catalog.Default()
		log.Info("Using built-in default catalog")
	}

	// Разбираем список заблокированных дат
	blocklist := make(availability.Blocklist, 0, len(cfg.Booking.BlockedDates))
	for _, raw := range cfg.Booking.BlockedDates {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			log.Fatal("Invalid blocked date %q in config: %v", raw, err)
		}
		blocklist = append(blocklist, date)
	}
	log.Info("Blocked dates configured: %d", len(blocklist))

	draftTTL := time.Duration(cfg.Booking.DraftTTLHours) * time.Hour

	// Инициализируем интеграцию с внешней booking-платформой
	redirector := bookingplatform.NewRedirector(
		cfg.Booking.ExternalBookingURL,
		time.Duration(cfg.Booking.RedirectDelaySeconds)*time.Second,
		log,
	)
	log.Info("Booking platform redirect configured (url=%s, delay=%ds)",
		cfg.Booking.ExternalBookingURL, cfg.Booking.RedirectDelaySeconds)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		draftRepository   *draftRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, metricsCollector.Service(), stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		draftRepository = draftRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		draftRepository = draftRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем доменные компоненты
	calculator := pricing.NewCalculator(studioCatalog)
	generator := confirmation.NewGenerator()
	notifier := notify.New(log)
	studio := confirmation.StudioInfo{
		Name:    cfg.Studio.Name,
		Address: cfg.Studio.Address,
		Email:   cfg.Studio.Email,
		Phone:   cfg.Studio.Phone,
	}

	// Инициализируем сервисы
	wizardSvc := wizardService.NewService(
		draftRepository,
		studioCatalog,
		calculator,
		redirector,
		draftTTL,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		studio,
		log,
	)

	// Инициализируем use cases
	advanceWizardUseCase := advanceWizardUC.New(
		wizardSvc,
		studioCatalog,
		calculator,
		bookingRepository,
		generator,
		redirector,
		notifier,
		txMgr,
		blocklist,
		log,
	)

	// Запускаем фоновую чистку черновиков (если настроена)
	if cfg.Booking.DraftCleanupSchedule != "" {
		worker := cronWorker.NewWorker(draftRepository, draftTTL, cfg.Booking.DraftCleanupSchedule, log)
		if err := worker.Start(); err != nil {
			log.Fatal("Failed to start draft cleanup worker: %v", err)
		}
		defer worker.Stop()
	}

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(studioCatalog, log)
	getAvailability := getAvailabilityHandler.NewHandler(studioCatalog, blocklist, &getAvailabilityHandler.RealTimeProvider{}, log)
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	updateWizard := updateWizardHandler.NewHandler(wizardSvc, log)
	continueWizard := continueWizardHandler.NewHandler(advanceWizardUseCase, log)
	backWizard := backWizardHandler.NewHandler(wizardSvc, log)
	cancelWizard := cancelWizardHandler.NewHandler(wizardSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	exportConfirmation := exportConfirmationHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, metricsCollector.Service()))
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

	// Каталог студии: пакеты, дополнительные услуги, слоты
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Доступность даты для бронирования
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Мастер бронирования ---
	// Текущее состояние мастера
	protected.HandleFunc("/wizard", getWizard.Handle).Methods(http.MethodGet)

	// Сохранение выбора (auto-save черновика)
	protected.HandleFunc("/wizard", updateWizard.Handle).Methods(http.MethodPut)

	// Переход на следующий шаг (с последнего шага - завершение бронирования)
	protected.HandleFunc("/wizard/continue", continueWizard.Handle).Methods(http.MethodPost)

	// Возврат на предыдущий шаг
	protected.HandleFunc("/wizard/back", backWizard.Handle).Methods(http.MethodPost)

	// Сброс мастера и отмена отложенного перехода
	protected.HandleFunc("/wizard/cancel", cancelWizard.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Экспорт подтверждения текстовым файлом
	protected.HandleFunc("/bookings/{bookingId}/confirmation", exportConfirmation.Handle).Methods(http.MethodGet)

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
