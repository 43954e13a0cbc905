// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rushilcs/data-viewer/internal/auth"
	"github.com/rushilcs/data-viewer/internal/config"
	"github.com/rushilcs/data-viewer/internal/handler"
	"github.com/rushilcs/data-viewer/internal/middleware"
	"github.com/rushilcs/data-viewer/internal/registry"
	"github.com/rushilcs/data-viewer/internal/repository"
	"github.com/rushilcs/data-viewer/internal/service"
	"github.com/rushilcs/data-viewer/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	store, err := setupStorage(cfg)
	if err != nil {
		return fmt.Errorf("setting up storage: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	datasetRepo := repository.NewDatasetRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	itemRepo := repository.NewItemRepository(db)
	accessRepo := repository.NewAccessRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Auth primitives
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
	capability := auth.NewCapabilityService(cfg.Capability.Secret, cfg.Upload.TokenTTL, cfg.Download.TokenTTL)

	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         cfg.Download.CacheTTL,
		CleanupFreq: 1 * time.Minute,
	})
	defer cacheService.Close()

	rateLimiter := service.NewRateLimiter()
	auditService := service.NewAuditService(auditRepo)
	gate := service.NewAccessGate(datasetRepo, itemRepo, assetRepo, accessRepo)

	userService := service.NewUserService(userRepo, orgRepo, passwordHasher, tokenManager, auditService, rateLimiter, cfg)
	shareService := service.NewShareService(gate, accessRepo, userRepo, auditService)
	ingestService := service.NewIngestService(gate, datasetRepo, assetRepo, store, capability, registry.New(), auditService, rateLimiter, nil, cfg)
	assetService := service.NewAssetService(gate, assetRepo, store, capability, cacheService, auditService, cfg)
	datasetService := service.NewDatasetService(gate, datasetRepo, itemRepo, assetRepo, auditService)

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	datasetHandler := handler.NewDatasetHandler(datasetService, ingestService)
	itemHandler := handler.NewItemHandler(datasetService)
	assetHandler := handler.NewAssetHandler(ingestService, assetService, cfg)
	shareHandler := handler.NewShareHandler(shareService)
	auditHandler := handler.NewAuditHandler(auditService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestMetadata)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/auth/signup", authHandler.Signup)
			r.Post("/auth/login", authHandler.Login)
		})

		// Capability-token routes: a session is optional, the token does the
		// authorizing when no session is present.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(tokenManager, userRepo))
			r.Put("/assets/{assetID}/upload", assetHandler.Upload)
		})
		r.Get("/assets/{assetID}/stream", assetHandler.Stream)

		// Session routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokenManager, userRepo))

			r.Get("/auth/me", authHandler.Me)
			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/datasets", func(r chi.Router) {
				r.Get("/", datasetHandler.List)
				r.Post("/", datasetHandler.Create)
				r.Get("/{datasetID}", datasetHandler.Get)
				r.Post("/{datasetID}/assets", assetHandler.Allocate)
				r.Post("/{datasetID}/publish", datasetHandler.Publish)
				r.Post("/{datasetID}/append", datasetHandler.Append)
				r.Get("/{datasetID}/items", datasetHandler.ListItems)
				r.Get("/{datasetID}/item-counts", datasetHandler.TypeCounts)
				r.Get("/{datasetID}/shares", shareHandler.List)
				r.Post("/{datasetID}/shares", shareHandler.Add)
				r.Delete("/{datasetID}/shares/{userID}", shareHandler.Remove)
			})

			r.Get("/items/{itemID}", itemHandler.Get)
			r.Get("/assets/{assetID}/url", assetHandler.SignURL)
			r.Get("/audit", auditHandler.List)
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func setupStorage(cfg *config.Config) (storage.Backend, error) {
	switch cfg.Storage.Backend {
	case "", "local":
		return storage.NewLocal(cfg.Storage.LocalDir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
