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
	"github.com/rs/cors"

	cancelBookingHandler "github.com/m04kA/TherapyBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/TherapyBookingService/internal/api/handlers/create_booking"
	getAvailableDatesHandler "github.com/m04kA/TherapyBookingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/TherapyBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/TherapyBookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/TherapyBookingService/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/TherapyBookingService/internal/api/middleware"
	"github.com/m04kA/TherapyBookingService/internal/config"
	"github.com/m04kA/TherapyBookingService/internal/domain"
	"github.com/m04kA/TherapyBookingService/internal/infra/cache"
	availabilityRepo "github.com/m04kA/TherapyBookingService/internal/infra/storage/availability"
	blockedRepo "github.com/m04kA/TherapyBookingService/internal/infra/storage/blocked"
	bookingRepo "github.com/m04kA/TherapyBookingService/internal/infra/storage/booking"
	therapistRepo "github.com/m04kA/TherapyBookingService/internal/infra/storage/therapist"
	bookingsService "github.com/m04kA/TherapyBookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/TherapyBookingService/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/m04kA/TherapyBookingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/TherapyBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/TherapyBookingService/pkg/dbmetrics"
	"github.com/m04kA/TherapyBookingService/pkg/logger"
	"github.com/m04kA/TherapyBookingService/pkg/metrics"
	"github.com/m04kA/TherapyBookingService/pkg/txmanager"
)

// TherapistFinder is what the availability use cases need from the profile store,
// either the repository itself or its Redis decorator.
type TherapistFinder interface {
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Therapist, error)
}

func main() {
	cfg, err := config.Load("config.toml", ".env")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TherapyBookingService...")
	log.Info("Practice timezone: %s", cfg.Availability.DefaultTimezone)

	// Metrics are optional; every collector method is nil-safe
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithMaxRetries(cfg.Availability.MaxSerializableRetries),
		txmanager.WithRetryObserver(metricsCollector),
	)

	therapistRepository := therapistRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	blockedRepository := blockedRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	var therapists TherapistFinder = therapistRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable, therapist cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			therapists = cache.NewTherapistCache(
				therapistRepository,
				cache.NewRedisStore(redisClient),
				cfg.Redis.TTLDuration(),
				metricsCollector,
				log,
			)
			log.Info("Therapist cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTLDuration())
		}
	}

	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		therapists,
		availabilityRepository,
		blockedRepository,
		bookingRepository,
		cfg.Availability.DefaultTimezone,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		therapists,
		availabilityRepository,
		blockedRepository,
		bookingRepository,
		cfg.Availability.DefaultTimezone,
		log,
	)

	// Reservations always read the therapist from the database, never from cache
	createBookingUseCase := createBookingUC.NewUseCase(
		therapistRepository,
		availabilityRepository,
		blockedRepository,
		bookingRepository,
		txMgr,
		cfg.Availability.DefaultTimezone,
		log,
	)

	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	// Public routes: the booking-flow UI browses availability anonymously
	api.HandleFunc("/therapists/{slug}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/therapists/{slug}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes: require X-User-ID
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", middleware.HeaderUserID, middleware.HeaderRequestID},
		ExposedHeaders:   []string{middleware.HeaderRequestID},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	close(stopMetricsCh)

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
