package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/satriahrh/suara/internal/api"
	"github.com/satriahrh/suara/internal/config"
	"github.com/satriahrh/suara/usecase"
)

var version = "1.1.0"

const shutdownTimeout = 10 * time.Second

var configFile string

var rootCmd = &cobra.Command{
	Use:   "suara",
	Short: "Translation and text-to-speech HTTP service",
	Long: `suara serves a small HTTP API that translates text into a target
language and converts text into MP3 speech in its detected language.

Backends are selected with TRANSLATOR_PROVIDER, DETECTOR_PROVIDER and
TTS_PROVIDER. Use "suara languages" to print what they support.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlag("PORT", cmd.Flags().Lookup("port")); err != nil {
			return fmt.Errorf("failed to bind --port: %w", err)
		}
		cfg, err := config.Load(viper.GetViper(), configFile)
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json, toml or .env)")
	rootCmd.Flags().String("port", "", "port to listen on (overrides PORT)")

	rootCmd.AddCommand(languagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func serve(cfg *config.Config) error {
	logger, err := newLogger(cfg.LogDevelopment)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Initialize adapters
	ctx := context.Background()
	backends, err := newBackends(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize backends", zap.Error(err))
		return err
	}
	defer backends.Close()

	// Initialize usecase services
	translationService := usecase.NewTranslationService(backends.translator, logger)
	speechService := usecase.NewSpeechService(backends.detector, backends.textToSpeech, cfg.TTSFallbackLanguage, logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	api.UseMiddleware(e, logger)

	// Initialize API routes
	api.InitRoutes(e, translationService, speechService, api.NewDocs(cfg.DocsFile), logger)

	logger.Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("translator", cfg.TranslatorProvider),
		zap.String("detector", cfg.DetectorProvider),
		zap.String("tts", cfg.TTSProvider))

	// Wait for interrupt signal to gracefully shutdown the server
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runServer(ctx, e, ":"+cfg.Port, logger)
}

// runServer serves e on addr until ctx is done, then shuts it down. A failure
// to start is returned so deferred cleanup in the caller still runs.
func runServer(ctx context.Context, e *echo.Echo, addr string, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed to start", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server exited")
	return nil
}
