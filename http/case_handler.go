package http

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"financing-agent/service"
)

type CaseHandler struct {
	service *service.CatalogService
	logger  *zap.Logger
}

func NewCaseHandler(service *service.CatalogService, logger *zap.Logger) *CaseHandler {
	return &CaseHandler{service: service, logger: logger}
}

func (h *CaseHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	cases := h.service.Cases()
	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(cases),
		"data":    cases,
	})
}

func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "case id must be an integer")
		return
	}

	c, err := h.service.Case(id)
	if err != nil {
		writeError(w, h.logger, statusFor(err), fmt.Sprintf("Case with ID %d not found", id))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    c,
	})
}

func (h *CaseHandler) CasesByDeviceType(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	deviceType := r.PathValue("type")
	cases := h.service.CasesByDeviceType(deviceType)
	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success":    true,
		"deviceType": deviceType,
		"count":      len(cases),
		"data":       cases,
	})
}

func (h *CaseHandler) CasesByCreditScore(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	min, errMin := strconv.Atoi(r.PathValue("min"))
	max, errMax := strconv.Atoi(r.PathValue("max"))
	if errMin != nil || errMax != nil {
		writeError(w, h.logger, http.StatusBadRequest, service.ErrInvalidRange.Error())
		return
	}

	cases, err := h.service.CasesByCreditScore(min, max)
	if err != nil {
		writeError(w, h.logger, statusFor(err), service.ErrInvalidRange.Error())
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success":          true,
		"creditScoreRange": map[string]int{"min": min, "max": max},
		"count":            len(cases),
		"data":             cases,
	})
}

func (h *CaseHandler) ExportTrainingData(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    h.service.ExportTrainingData(),
	})
}
