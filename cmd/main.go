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

	bookSlotHandler "github.com/ShaMkot/ISRES-BookingService/internal/api/handlers/book_slot"
	cancelSlotHandler "github.com/ShaMkot/ISRES-BookingService/internal/api/handlers/cancel_slot"
	createSlotHandler "github.com/ShaMkot/ISRES-BookingService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/ShaMkot/ISRES-BookingService/internal/api/handlers/delete_slot"
	getNearbyServicesHandler "github.com/ShaMkot/ISRES-BookingService/internal/api/handlers/get_nearby_services"
	getSlotHandler "github.com/ShaMkot/ISRES-BookingService/internal/api/handlers/get_slot"
	getUserSlotsHandler "github.com/ShaMkot/ISRES-BookingService/internal/api/handlers/get_user_slots"
	listAvailableSlotsHandler "github.com/ShaMkot/ISRES-BookingService/internal/api/handlers/list_available_slots"
	"github.com/ShaMkot/ISRES-BookingService/internal/api/middleware"
	"github.com/ShaMkot/ISRES-BookingService/internal/config"
	"github.com/ShaMkot/ISRES-BookingService/internal/infra/notify"
	slotRepo "github.com/ShaMkot/ISRES-BookingService/internal/infra/storage/appointment"
	nominatimClient "github.com/ShaMkot/ISRES-BookingService/internal/integrations/nominatim"
	overpassClient "github.com/ShaMkot/ISRES-BookingService/internal/integrations/overpass"
	propertyServiceClient "github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
	appointmentsService "github.com/ShaMkot/ISRES-BookingService/internal/service/appointments"
	bookSlotUC "github.com/ShaMkot/ISRES-BookingService/internal/usecase/book_slot"
	deleteSlotUC "github.com/ShaMkot/ISRES-BookingService/internal/usecase/delete_slot"
	getNearbyServicesUC "github.com/ShaMkot/ISRES-BookingService/internal/usecase/get_nearby_services"
	"github.com/ShaMkot/ISRES-BookingService/pkg/dbmetrics"
	"github.com/ShaMkot/ISRES-BookingService/pkg/logger"
	"github.com/ShaMkot/ISRES-BookingService/pkg/metrics"
	"github.com/ShaMkot/ISRES-BookingService/pkg/simpletxmanager"
	"github.com/ShaMkot/ISRES-BookingService/pkg/txmanager"
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

	log.Info("Starting ISRES-BookingService...")
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

	// Инициализируем интеграционных клиентов
	propertyClient := propertyServiceClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		log,
	)
	geocoder := nominatimClient.NewClient(
		cfg.Geocoder.URL,
		cfg.Geocoder.UserAgent,
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
		log,
	)
	poiClient := overpassClient.NewClient(
		cfg.POIIndex.URL,
		time.Duration(cfg.POIIndex.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PropertyService=%s, Geocoder=%s, POIIndex=%s)",
		cfg.PropertyService.URL, cfg.Geocoder.URL, cfg.POIIndex.URL)

	// Продюсер уведомлений: при пустом списке брокеров работает вхолостую
	notifier := notify.NewProducer(cfg.Notifications.Brokers, cfg.Notifications.Topic, log)
	defer notifier.Close()

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		slotRepository *slotRepo.Repository
		txMgr          TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		slotRepository,
		propertyClient,
		notifier,
		log,
	)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(slotRepository, notifier, log)
	deleteSlotUseCase := deleteSlotUC.NewUseCase(slotRepository, txMgr, notifier, log)
	getNearbyServicesUseCase := getNearbyServicesUC.NewUseCase(propertyClient, geocoder, poiClient, log)

	// Инициализируем handlers
	createSlot := createSlotHandler.NewHandler(appointmentsSvc, log)
	listAvailableSlots := listAvailableSlotsHandler.NewHandler(appointmentsSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	cancelSlot := cancelSlotHandler.NewHandler(appointmentsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(deleteSlotUseCase, log)
	getSlot := getSlotHandler.NewHandler(appointmentsSvc, log)
	getUserSlots := getUserSlotsHandler.NewHandler(appointmentsSvc, log)
	getNearbyServices := getNearbyServicesHandler.NewHandler(getNearbyServicesUseCase, log)

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

	// Доступные слоты просмотров по объекту недвижимости
	api.HandleFunc("/properties/{propertyId}/appointments",
		listAvailableSlots.Handle).Methods(http.MethodGet)

	// Сервисы рядом с объектом недвижимости
	api.HandleFunc("/properties/{propertyId}/nearby-services",
		getNearbyServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты просмотров ---
	// Создание слота владельцем объекта
	protected.HandleFunc("/appointments", createSlot.Handle).Methods(http.MethodPost)

	// Получение слота по ID
	protected.HandleFunc("/appointments/{appointmentId}", getSlot.Handle).Methods(http.MethodGet)

	// Бронирование слота клиентом
	protected.HandleFunc("/appointments/{appointmentId}/book", bookSlot.Handle).Methods(http.MethodPatch)

	// Отмена брони клиентом
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelSlot.Handle).Methods(http.MethodPatch)

	// Удаление слота владельцем объекта
	protected.HandleFunc("/appointments/{appointmentId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// Записи пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserSlots.Handle).Methods(http.MethodGet)

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
