package http

import (
	"net/http"

	"go.uber.org/zap"

	"financing-agent/domain"
	"financing-agent/service"
)

type QuoteHandler struct {
	service *service.QuoteService
	logger  *zap.Logger
}

func NewQuoteHandler(service *service.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{service: service, logger: logger}
}

func (h *QuoteHandler) CalculateQuote(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.QuoteInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.service.CalculateQuote(input)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, h.logger, http.StatusOK, quote)
}
