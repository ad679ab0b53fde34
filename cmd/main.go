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

	cancelReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	exportReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/export_reservations"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_slots"
	getStatsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_stats"
	getWaitTimesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_wait_times"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	listTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_tables"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/infra/migrate"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-ReservationService/internal/infra/tables"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	bookTableUC "github.com/m04kA/SMC-ReservationService/internal/usecase/book_table"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	getWaitTimesUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_wait_times"
	"github.com/m04kA/SMC-ReservationService/internal/worker/sweeper"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Накатываем миграции (если включены)
	if cfg.Database.Migrate {
		migrator, err := migrate.NewMigrator(db, cfg.Database.MigrationsDir)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied, schema version %d", version)
	}

	// Статический каталог столов
	registry, err := tables.NewRegistry(cfg.Tables)
	if err != nil {
		log.Fatal("Failed to build table registry: %v", err)
	}
	log.Info("Table registry initialized with %d tables", registry.Count())

	// Файловый снапшот состояния столов
	snapshotStore := snapshot.NewStore(cfg.Snapshot.Path, log)
	restored := snapshotStore.Load()
	log.Info("Table snapshot loaded: %d tables", len(restored))

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var (
		repository *reservationRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Бизнес-параметры
	openTime, err := types.NewTimeStringFromString(cfg.Business.OpenTime)
	if err != nil {
		log.Fatal("Invalid business open_time: %v", err)
	}
	closeTime, err := types.NewTimeStringFromString(cfg.Business.CloseTime)
	if err != nil {
		log.Fatal("Invalid business close_time: %v", err)
	}
	occupancyWindow := time.Duration(cfg.Business.OccupancyWindowMinutes) * time.Minute

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		repository,
		registry,
		snapshotStore,
		txMgr,
		&reservationsService.RealTimeProvider{},
		log,
		occupancyWindow,
	)

	// Инициализируем use cases
	bookTableUseCase := bookTableUC.NewUseCase(
		repository,
		registry,
		txMgr,
		reservationSvc,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		repository,
		registry,
		getAvailableSlotsUC.BusinessHours{
			OpenTime:           openTime,
			CloseTime:          closeTime,
			GranularityMinutes: cfg.Business.SlotGranularityMinutes,
		},
		log,
	)

	getWaitTimesUseCase := getWaitTimesUC.NewUseCase(
		repository,
		getWaitTimesUC.EstimatorConfig{
			OccupancyWindow: occupancyWindow,
			SmallTableCount: cfg.Business.SmallTableCount,
			BigTableCount:   cfg.Business.BigTableCount,
			TotalTables:     registry.Count(),
		},
		log,
	)

	// Фоновая очистка завершившихся броней
	sweepWorker := sweeper.New(
		repository,
		reservationSvc,
		&reservationsService.RealTimeProvider{},
		log,
		time.Duration(cfg.Business.SweepIntervalSeconds)*time.Second,
	)
	sweepWorker.Start(context.Background())
	defer sweepWorker.Stop()

	// Инициализируем handlers
	listTables := listTablesHandler.NewHandler(registry, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(reservationSvc, log)
	createReservation := createReservationHandler.NewHandler(bookTableUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getWaitTimes := getWaitTimesHandler.NewHandler(getWaitTimesUseCase, log)
	exportReservations := exportReservationsHandler.NewHandler(reservationSvc, log)
	getStats := getStatsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Логирование запросов с request ID
	r.Use(middleware.LoggingMiddleware(log))

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог столов
	api.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)

	// Слоты стола на дату
	api.HandleFunc("/tables/{tableId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка доступности стола на точное время
	api.HandleFunc("/tables/{tableId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Оценка времени ожидания для walk-in гостей
	api.HandleFunc("/wait-times", getWaitTimes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Name header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список броней (менеджер видит все, клиент - свои)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Выгрузка броней в CSV
	protected.HandleFunc("/reservations/export", exportReservations.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reservations/{tableId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Сводка дня для менеджера
	protected.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

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
