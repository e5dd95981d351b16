package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"gymslot/internal/appointment"
	"gymslot/internal/class"
	"gymslot/internal/config"
	"gymslot/internal/db"
	"gymslot/internal/directory"
	"gymslot/internal/email"
	"gymslot/internal/gym"
	"gymslot/internal/logger"
	"gymslot/internal/registration"
	"gymslot/internal/server"
	"gymslot/internal/store"
)

// @title GymSlot API
// @version 1.0
// @description Class registration and staff appointment booking for gyms.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.InitWith(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting GymSlot application", "driver", cfg.DatabaseDriver, "persist_mode", cfg.PersistMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entity, dirRepo, closeDB := openStorage(ctx, cfg)
	defer closeDB()

	if cfg.DirectorySeedFile != "" {
		seed, err := directory.LoadSeed(cfg.DirectorySeedFile)
		if err != nil {
			logger.Fatalf("Failed to read directory seed: %v", err)
		}
		if err := dirRepo.Import(ctx, seed); err != nil {
			logger.Fatalf("Failed to import directory seed: %v", err)
		}
		logger.Info("Directory seed imported", "gyms", len(seed.Gyms), "people", len(seed.People))
	}
	dir := directory.NewService(dirRepo, cfg.DirectoryCacheTTL)

	entity = store.NewRetryingStore(entity, cfg.StoreRetryAttempts, cfg.StoreRetryBackoff)
	var writeBehind *store.WriteBehindStore
	if cfg.PersistMode == config.PersistWriteBehind {
		writeBehind = store.NewWriteBehindStore(entity, cfg.StoreRetryBackoff)
		entity = writeBehind
		go writeBehind.Run(ctx)
		logger.Info("Write-behind persistence enabled")
	}

	classes := class.NewRepository(entity, cfg.LockTimeout)
	if err := classes.Load(ctx); err != nil {
		logger.Fatalf("Failed to load classes: %v", err)
	}
	appointments := appointment.NewRepository(entity, cfg.LockTimeout)
	if err := appointments.Load(ctx); err != nil {
		logger.Fatalf("Failed to load appointments: %v", err)
	}
	logger.Info("Booking indexes loaded")

	prices, err := appointment.LoadPriceTable(cfg.PricingFile)
	if err != nil {
		logger.Fatalf("Failed to load price table: %v", err)
	}

	var (
		notifier     email.Notifier = email.Noop{}
		emailService *email.Service
	)
	if cfg.NotificationsEnabled {
		emailService = email.New(
			cfg.EmailFrom,
			cfg.EmailFromName,
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPass,
			cfg.RedisAddr,
		)
		defer emailService.Close()
		go emailService.Start(ctx)
		notifier = emailService
		logger.Info("Email service initialized")
	}

	srv := server.New(cfg, server.Deps{
		Classes:       class.NewService(classes, dir),
		Registrations: registration.NewService(classes, dir, notifier),
		Appointments:  appointment.NewService(appointments, dir, prices, notifier),
		Gyms:          gym.NewService(classes, dir),
		Email:         emailService,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	cancel()

	if writeBehind != nil {
		if err := writeBehind.Close(shutdownCtx); err != nil {
			logger.Errorf("Failed to flush pending writes: %v", err)
		}
	}

	logger.Info("Server stopped")
}

// openStorage returns the entity store and directory for the configured
// driver, and a func that releases them.
func openStorage(ctx context.Context, cfg *config.Config) (store.Store, directory.Repository, func()) {
	if cfg.DatabaseDriver == config.DriverMemory {
		logger.Warn("Using in-memory storage; data is lost on restart")
		return store.NewMemoryStore(), directory.NewMemoryRepository(), func() {}
	}

	logger.Info("Connecting to database...", "driver", cfg.DatabaseDriver)
	database, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	warnIfDirectoryEmpty(ctx, database, cfg)

	return store.NewSQLStore(database), directory.NewRepository(database), func() { database.Close() }
}

func warnIfDirectoryEmpty(ctx context.Context, database *sqlx.DB, cfg *config.Config) {
	if cfg.DirectorySeedFile != "" {
		return
	}
	found, err := db.Exists(ctx, database, "SELECT EXISTS (SELECT 1 FROM people)")
	if err != nil {
		logger.Warn("Could not inspect directory", "error", err)
		return
	}
	if !found {
		logger.Warn("Directory is empty; set DIRECTORY_SEED_FILE to import gyms and people")
	}
}
