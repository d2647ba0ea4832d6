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

	checkAvailabilityHandler "github.com/m04kA/SMC-GymScheduleService/internal/api/handlers/check_availability"
	getAvailableTrainersHandler "github.com/m04kA/SMC-GymScheduleService/internal/api/handlers/get_available_trainers"
	getReassignmentHistoryHandler "github.com/m04kA/SMC-GymScheduleService/internal/api/handlers/get_reassignment_history"
	getReassignmentPlanHandler "github.com/m04kA/SMC-GymScheduleService/internal/api/handlers/get_reassignment_plan"
	getTrainerReassignmentsHandler "github.com/m04kA/SMC-GymScheduleService/internal/api/handlers/get_trainer_reassignments"
	reassignScheduleHandler "github.com/m04kA/SMC-GymScheduleService/internal/api/handlers/reassign_schedule"
	"github.com/m04kA/SMC-GymScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-GymScheduleService/internal/availability"
	"github.com/m04kA/SMC-GymScheduleService/internal/config"
	reassignmentRepo "github.com/m04kA/SMC-GymScheduleService/internal/infra/storage/reassignment"
	gymBackendClient "github.com/m04kA/SMC-GymScheduleService/internal/integrations/gymbackend"
	"github.com/m04kA/SMC-GymScheduleService/internal/service/fetcher"
	schedulesService "github.com/m04kA/SMC-GymScheduleService/internal/service/schedules"
	findAvailableTrainersUC "github.com/m04kA/SMC-GymScheduleService/internal/usecase/find_available_trainers"
	planTrainerReassignmentUC "github.com/m04kA/SMC-GymScheduleService/internal/usecase/plan_trainer_reassignment"
	reassignScheduleUC "github.com/m04kA/SMC-GymScheduleService/internal/usecase/reassign_schedule"
	"github.com/m04kA/SMC-GymScheduleService/pkg/logger"
	"github.com/m04kA/SMC-GymScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-GymScheduleService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-GymScheduleService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал переназначений)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент gym backend
	gymClient := gymBackendClient.NewClient(
		cfg.GymBackend.URL,
		time.Duration(cfg.GymBackend.Timeout)*time.Second,
		log,
	)
	log.Info("Gym backend client initialized (url=%s, timeout=%ds)", cfg.GymBackend.URL, cfg.GymBackend.Timeout)

	// Репозиторий и transaction manager
	reassignmentRepository := reassignmentRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(txmanager.SQLDB{DB: db})

	// Ядро проверки доступности
	resolver := availability.NewResolver(cfg.Availability.Buffer())
	scheduleFetcher := fetcher.NewFetcher(
		gymClient,
		fetcher.Options{
			Timeout:        cfg.Availability.FetchTimeout(),
			MaxConcurrency: cfg.Availability.MaxConcurrency,
			FailPolicy:     cfg.Availability.FailPolicy,
		},
		metricsCollector,
		log,
	)
	log.Info("Availability: buffer=%s, fetch_timeout=%s, max_concurrency=%d, fail_policy=%s",
		resolver.Buffer(), cfg.Availability.FetchTimeout(), cfg.Availability.MaxConcurrency, scheduleFetcher.Policy())

	// Сервисы
	schedulesSvc := schedulesService.NewService(
		reassignmentRepository,
		scheduleFetcher,
		resolver,
		metricsCollector,
		log,
	)

	// Use cases
	findAvailableTrainersUseCase := findAvailableTrainersUC.NewUseCase(
		gymClient,
		scheduleFetcher,
		resolver,
		log,
	)
	reassignScheduleUseCase := reassignScheduleUC.NewUseCase(
		gymClient,
		scheduleFetcher,
		resolver,
		reassignmentRepository,
		txMgr,
		log,
	)
	planTrainerReassignmentUseCase := planTrainerReassignmentUC.NewUseCase(
		gymClient,
		scheduleFetcher,
		resolver,
		log,
	)

	// Handlers
	getAvailableTrainers := getAvailableTrainersHandler.NewHandler(findAvailableTrainersUseCase, log)
	reassignSchedule := reassignScheduleHandler.NewHandler(reassignScheduleUseCase, log)
	getReassignmentPlan := getReassignmentPlanHandler.NewHandler(planTrainerReassignmentUseCase, log)
	getReassignmentHistory := getReassignmentHistoryHandler.NewHandler(schedulesSvc, log)
	getTrainerReassignments := getTrainerReassignmentsHandler.NewHandler(schedulesSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(schedulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписания ---
	protected.HandleFunc("/schedules/{scheduleId}/available-trainers",
		getAvailableTrainers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{scheduleId}/reassign",
		reassignSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{scheduleId}/reassignments",
		getReassignmentHistory.Handle).Methods(http.MethodGet)

	// --- Тренеры ---
	protected.HandleFunc("/trainers/{trainerId}/reassignment-plan",
		getReassignmentPlan.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/trainers/{trainerId}/reassignments",
		getTrainerReassignments.Handle).Methods(http.MethodGet)

	// --- Проверка занятости ---
	protected.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
