package painel

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/painel/uso", h.handleUso)
}

func (h *Handler) handleUso(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.service.Montar(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("painel handler error")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "erro interno")
		return
	}
	writeJSON(w, http.StatusOK, resumo)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": payload, "error": nil})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data":  nil,
		"error": map[string]any{"code": code, "message": message},
	})
}
