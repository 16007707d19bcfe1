package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/suara/usecase"
)

// InitRoutes initializes all API routes
func InitRoutes(
	e *echo.Echo,
	translation *usecase.TranslationService,
	speech *usecase.SpeechService,
	docs *Docs,
	logger *zap.Logger,
) {
	h := &handler{
		translation: translation,
		speech:      speech,
		docs:        docs,
		logger:      logger,
	}

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:  "ok",
			Service: serviceName,
		})
	})

	e.GET("/", h.root)
	e.GET("/languages", h.languages)
	e.POST("/translate", h.translate)
	e.POST("/tts", h.textToSpeech)
}
