package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/askgemini/api/http/middleware"
	"github.com/artem13815/askgemini/api/http/presenter"
	"github.com/artem13815/askgemini/pkg/ask"
	"github.com/artem13815/askgemini/pkg/llm"
	"github.com/artem13815/askgemini/pkg/markup"
)

// Messages returned to callers. Upstream details stay in the server log.
const (
	msgPromptRequired = "Prompt is required"
	msgNotConfigured  = "Gemini API key not configured"
	msgUpstream       = "Failed to get response from Gemini AI"
	msgEmptyResponse  = "No response from Gemini AI"
	msgInternal       = "Internal server error"
	msgInvalidJSON    = "invalid JSON payload"
)

type AskHandler struct {
	uc  ask.UseCase
	log *zap.Logger
}

func NewAskHandler(uc ask.UseCase, log *zap.Logger) *AskHandler {
	return &AskHandler{uc: uc, log: log}
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

type askResponse struct {
	Response string `json:"response"`
	HTML     string `json:"html"`
	Model    string `json:"model,omitempty"`
}

// Ask relays a question to Gemini and returns the first candidate's text.
// @Summary Ask Gemini a question
// @Description Wraps the prompt in a formatting instruction, forwards it to Gemini and returns the answer as plain text and as escaped HTML.
// @Tags    ask
// @Accept  json
// @Produce json
// @Param   input body askRequest true "question"
// @Success 200 {object} askResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse "upstream status is passed through"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /ask [post]
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var req askRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, msgInvalidJSON)
		}
	}

	res, err := h.uc.Ask(c.Context(), ask.Query{Prompt: req.Prompt})
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, askResponse{
		Response: res.Text,
		HTML:     markup.Format(res.Text),
		Model:    res.Model,
	})
}

func (h *AskHandler) fail(c *fiber.Ctx, err error) error {
	reqID := zap.String("request_id", middleware.RequestID(c))
	var upErr *llm.UpstreamError
	switch {
	case errors.Is(err, ask.ErrEmptyPrompt):
		return presenter.Error(c, http.StatusBadRequest, msgPromptRequired)
	case errors.Is(err, ask.ErrNotConfigured):
		h.log.Error("gemini api key not configured", reqID)
		return presenter.Error(c, http.StatusInternalServerError, msgNotConfigured)
	case errors.As(err, &upErr):
		h.log.Error("gemini api error",
			reqID,
			zap.Int("status", upErr.Status),
			zap.String("body", upErr.Body),
		)
		return presenter.Error(c, upErr.Status, msgUpstream)
	case errors.Is(err, ask.ErrEmptyResponse):
		h.log.Warn("gemini returned no candidates", reqID)
		return presenter.Error(c, http.StatusInternalServerError, msgEmptyResponse)
	default:
		h.log.Error("ask failed", reqID, zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, msgInternal)
	}
}
