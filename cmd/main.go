package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/goodservices/internal/config"
	"github.com/sbilibin2017/goodservices/internal/handlers"
	"github.com/sbilibin2017/goodservices/internal/jwt"
	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/middlewares"
	"github.com/sbilibin2017/goodservices/internal/repositories"
	"github.com/sbilibin2017/goodservices/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/goodservices/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title goodservices API
// @version 1.0.0
// @description Community marketplace for publishing service requests and matching them with responses
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects the storage backends, wires the application and serves HTTP and
// gRPC health until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	// Kafka
	var eventWriter services.KafkaWriter
	if cfg.Kafka.Enabled() {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: 3 * time.Second,
			RequiredAcks: kafka.RequireOne,
		}
		defer w.Close()
		eventWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, match events will not be published")
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration()),
	)

	router := newRouter(cfg, db, rdb, eventWriter, tokens)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Log.Infof("gRPC health server listening on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping servers...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// newRouter builds the repositories, services and handlers and mounts them under /api/v1.
func newRouter(
	cfg *config.Config,
	db *sqlx.DB,
	rdb *redis.Client,
	eventWriter services.KafkaWriter,
	tokens *jwt.JWT,
) http.Handler {
	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	referenceRepo := repositories.NewReferenceRepository(db, middlewares.GetTxFromContext)
	requestReadRepo := repositories.NewServiceRequestReadRepository(db, middlewares.GetTxFromContext)
	requestWriteRepo := repositories.NewServiceRequestWriteRepository(db, middlewares.GetTxFromContext)
	responseReadRepo := repositories.NewServiceResponseReadRepository(db, middlewares.GetTxFromContext)
	responseWriteRepo := repositories.NewServiceResponseWriteRepository(db, middlewares.GetTxFromContext)
	acceptRepo := repositories.NewAcceptRecordRepository(db, middlewares.GetTxFromContext)
	statsRepo := repositories.NewStatsRepository(db, middlewares.GetTxFromContext)
	attemptRepo := repositories.NewLoginAttemptRepository(rdb, cfg.Login.LockDuration())

	// Services
	events := services.NewEventPublisher(eventWriter, middlewares.OnCommit)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, attemptRepo, cfg.Login.MaxAttempts)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	referenceService := services.NewReferenceService(referenceRepo)
	requestService := services.NewServiceRequestService(requestReadRepo, requestWriteRepo, responseReadRepo, referenceService, events)
	responseService := services.NewServiceResponseService(requestReadRepo, acceptRepo, responseReadRepo, responseWriteRepo)
	matchService := services.NewMatchService(requestReadRepo, responseReadRepo, responseWriteRepo, acceptRepo, events)
	statsService := services.NewStatsService(statsRepo)

	txMiddleware := middlewares.TxMiddleware(db)
	authMiddleware := middlewares.AuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.With(txMiddleware).Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))
		r.Get("/data/cities", handlers.NewListCitiesHandler(referenceService))
		r.Get("/data/service-types", handlers.NewListServiceTypesHandler(referenceService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/users/me", handlers.NewMeHandler(userService))
			r.Get("/requests", handlers.NewListServiceRequestsHandler(requestService))
			r.Get("/requests/my", handlers.NewListMyServiceRequestsHandler(requestService))
			r.Get("/requests/{id}", handlers.NewGetServiceRequestHandler(requestService))
			r.Get("/responses", handlers.NewListServiceResponsesHandler(responseService))
			r.Get("/responses/{id}", handlers.NewGetServiceResponseHandler(responseService))
			r.Get("/stats/monthly", handlers.NewMonthlyStatsHandler(statsService))

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)

				r.Put("/users/me", handlers.NewUpdateProfileHandler(userService))
				r.Put("/users/me/password", handlers.NewChangePasswordHandler(userService))

				r.Post("/requests", handlers.NewCreateServiceRequestHandler(requestService))
				r.Put("/requests/{id}", handlers.NewUpdateServiceRequestHandler(requestService))
				r.Put("/requests/{id}/cancel", handlers.NewCancelServiceRequestHandler(requestService))
				r.Delete("/requests/{id}", handlers.NewDeleteServiceRequestHandler(requestService))

				r.Post("/responses", handlers.NewCreateServiceResponseHandler(responseService))
				r.Put("/responses/{id}", handlers.NewUpdateServiceResponseHandler(responseService))
				r.Put("/responses/{id}/cancel", handlers.NewCancelServiceResponseHandler(responseService))
				r.Delete("/responses/{id}", handlers.NewDeleteServiceResponseHandler(responseService))

				r.Post("/match/accept/{id}", handlers.NewAcceptHandler(matchService))
				r.Post("/match/reject/{id}", handlers.NewRejectHandler(matchService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
