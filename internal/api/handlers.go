package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/usecase"
)

type handler struct {
	translation *usecase.TranslationService
	speech      *usecase.SpeechService
	docs        *Docs
	logger      *zap.Logger
}

func (h *handler) root(c echo.Context) error {
	page, err := h.docs.Page()
	if err != nil {
		h.logger.Error("Failed to load documentation page", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   errProcessingFailed,
			Message: "Documentation is unavailable",
		})
	}
	return c.HTMLBlob(http.StatusOK, page)
}

func (h *handler) translate(c echo.Context) error {
	var req domain.TranslationRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind translate request", zap.Error(err))
		return invalidRequest(c, "Invalid request format")
	}

	resp, err := h.translation.Translate(c.Request().Context(), req)
	if err == nil {
		return c.JSON(http.StatusOK, resp)
	}

	var ule *domain.UnsupportedLanguageError
	switch {
	case errors.Is(err, domain.ErrEmptyText):
		return invalidRequest(c, "Input text cannot be empty.")
	case errors.Is(err, domain.ErrEmptyTargetLanguage):
		return invalidRequest(c, "Target language cannot be empty.")
	case errors.As(err, &ule):
		h.logger.Warn("Rejected target language", zap.String("target", ule.Code))
		return invalidRequest(c, fmt.Sprintf(
			"Invalid target language: '%s'. Please provide a valid language code (e.g., 'en', 'es', 'fr', 'de').",
			ule.Code))
	case errors.Is(err, domain.ErrEmptyTranslation):
		h.logger.Error("Translator returned an empty result", zap.String("target", req.TargetLanguage))
		return processingFailed(c, "Translation failed. The translator returned an empty result.")
	default:
		h.logger.Error("Translation failed", zap.String("target", req.TargetLanguage), zap.Error(err))
		return processingFailed(c, "An error occurred during translation: "+err.Error())
	}
}

func (h *handler) textToSpeech(c echo.Context) error {
	var req domain.SpeechRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind tts request", zap.Error(err))
		return invalidRequest(c, "Invalid request format")
	}

	result, err := h.speech.Synthesize(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyText) {
			return invalidRequest(c, "Input text cannot be empty.")
		}
		h.logger.Error("TTS generation failed", zap.Error(err))
		return processingFailed(c, "An error occurred during TTS generation: "+err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+result.Filename())
	return c.Blob(http.StatusOK, result.ContentType, result.Audio)
}

func (h *handler) languages(c echo.Context) error {
	ctx := c.Request().Context()

	translation, err := h.translation.SupportedLanguages(ctx)
	if err != nil {
		h.logger.Error("Failed to list translation languages", zap.Error(err))
		return processingFailed(c, "Failed to list translation languages: "+err.Error())
	}
	tts, err := h.speech.SupportedLanguages(ctx)
	if err != nil {
		h.logger.Error("Failed to list speech languages", zap.Error(err))
		return processingFailed(c, "Failed to list speech languages: "+err.Error())
	}

	return c.JSON(http.StatusOK, domain.LanguagesResponse{
		Translation: translation,
		TTS:         tts,
	})
}

func invalidRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   errInvalidRequest,
		Message: message,
	})
}

func processingFailed(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   errProcessingFailed,
		Message: message,
	})
}
