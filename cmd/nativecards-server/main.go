package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/bootstrap"
	"github.com/at-ishikawa/nativecards/internal/card"
	"github.com/at-ishikawa/nativecards/internal/config"
	"github.com/at-ishikawa/nativecards/internal/database"
	"github.com/at-ishikawa/nativecards/internal/lesson"
	"github.com/at-ishikawa/nativecards/internal/server"
	"github.com/at-ishikawa/nativecards/internal/settings"
	"github.com/at-ishikawa/nativecards/internal/statistics"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "nativecards-server",
		Short:         "Nativecards lesson service HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return loadEnvFile(".env")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

// loadEnvFile exports the variables in path unless they are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("godotenv.Load(%s) > %w", path, err)
	}
	return nil
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	app := bootstrap.New(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook("database", func(ctx context.Context) error {
		return db.Close()
	})
	if err := database.WaitReady(ctx, db, cfg.Database.ConnectAttempts, time.Duration(cfg.Database.ConnectDelayMs)*time.Millisecond); err != nil {
		return errors.Join(fmt.Errorf("database.WaitReady() > %w", err), db.Close())
	}

	handler, err := newHandler(cfg, db)
	if err != nil {
		return errors.Join(fmt.Errorf("newHandler() > %w", err), db.Close())
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", "addr", srv.Addr, "database", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

// newHandler wires the repositories and services behind the API.
func newHandler(cfg *config.Config, db *sqlx.DB) (http.Handler, error) {
	cards := card.NewDBCardRepository(db)
	attempts := attempt.NewDBAttemptRepository(db)

	validator, err := settings.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("settings.NewValidator() > %w", err)
	}
	settingsProvider := settings.NewCachedProvider(settings.NewDBSettingsRepository(db), validator, cfg.Lesson, cfg.SettingsCache)

	h := server.NewHandler(
		lesson.NewGenerator(cards, settingsProvider, lesson.WithRandomWordsLimit(cfg.Lesson.RandomWordsLimit)),
		lesson.NewRecorder(attempts, settingsProvider),
		attempts,
		statistics.NewCollector(attempts, cards, settingsProvider),
		settingsProvider,
	)
	return server.New(cfg.Server, h), nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
