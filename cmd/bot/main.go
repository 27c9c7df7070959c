package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/mgcc_bot/internal/app"
	"github.com/Freeeeeet/mgcc_bot/internal/assistant"
	"github.com/Freeeeeet/mgcc_bot/internal/catalog"
	"github.com/Freeeeeet/mgcc_bot/internal/config"
	"github.com/Freeeeeet/mgcc_bot/internal/controller"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/metrics"
	"github.com/Freeeeeet/mgcc_bot/internal/ops"
	"github.com/Freeeeeet/mgcc_bot/internal/repository"
	"github.com/Freeeeeet/mgcc_bot/internal/service"
	"github.com/Freeeeeet/mgcc_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting MGCC bot",
		"environment", cfg.Environment,
		"storage", cfg.StorageKind(),
		"assistant", cfg.AssistantEnabled(),
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	var (
		payments    repository.PaymentRepository
		demoNumbers repository.DemoNumberRepository
	)

	if cfg.DBDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.DBDSN)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			logger.Fatal("Database is not reachable", zap.Error(err))
		}

		migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
		if err != nil {
			logger.Fatal("Failed to create migrator", zap.Error(err))
		}
		if err := migrator.Run(ctx); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		if err := migrator.Close(); err != nil {
			logger.Warn("Failed to close migrator", zap.Error(err))
		}

		payments = repository.NewPostgresPaymentRepository(pool)
		demoNumbers = repository.NewPostgresDemoNumberRepository(pool)
	} else {
		logger.Warn("DB_DSN is empty, payment queue is kept in memory")
		payments = repository.NewMemoryPaymentRepository()
		demoNumbers = repository.NewMemoryDemoNumberRepository(cat.DemoNumbers())
	}

	paymentService := service.NewPaymentService(payments, demoNumbers, logger)

	generator := assistant.Unavailable()
	if cfg.AssistantEnabled() {
		gemini, err := assistant.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to create Gemini client, assistant will use fallback replies", zap.Error(err))
		} else {
			generator = gemini
		}
	} else {
		logger.Warn("API_KEY is empty, assistant will use fallback replies")
	}

	sessions := session.NewRegistry(session.NewSeed(cat))
	assistants := assistant.NewRegistry(generator)
	dialogs := state.NewManager()
	m := metrics.New()

	opsServer := ops.NewServer(cfg.OpsAddr, m.Handler(), sessions, cfg.StorageKind(), logger)
	opsServer.Start()

	scheduler := app.NewScheduler(sessions, assistants, dialogs, m, cfg.SessionIdleTTL, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, &callbacktypes.Handler{
		Sessions:     sessions,
		Assistants:   assistants,
		Catalog:      cat,
		Payments:     paymentService,
		Metrics:      m,
		StateManager: dialogs,
		Logger:       logger,
	})

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu was not set", zap.Error(err))
	}

	logger.Info("✅ MGCC bot started")
	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to stop ops server", zap.Error(err))
	}
}
