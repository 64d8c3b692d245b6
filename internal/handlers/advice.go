package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"farmadvice-backend/internal/models"
)

const maxAdviceBodyBytes = 64 << 10

type adviceService interface {
	GetAdvice(ctx context.Context, q models.Query) models.AdviceResult
}

type AdviceHandler struct {
	advisor adviceService
}

func NewAdviceHandler(advisor adviceService) *AdviceHandler {
	return &AdviceHandler{advisor: advisor}
}

func (h *AdviceHandler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	var req models.AdviceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAdviceBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Query) == "" || strings.TrimSpace(req.Language) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing query or language", r))
		return
	}

	result := h.advisor.GetAdvice(r.Context(), models.Query{
		Text:     req.Query,
		Language: strings.ToLower(strings.TrimSpace(req.Language)),
	})

	resp := models.AdviceResponse{
		Response: result.Text,
		Origin:   result.Origin,
	}
	if result.Origin == models.OriginFallback {
		resp.FromFallback = true
		resp.Error = result.ErrorDetail
	}

	writeJSON(w, http.StatusOK, resp)
}
