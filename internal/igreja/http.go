package igreja

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/registrodaime/api/internal/util"
)

// Handler orquestra rotas do cadastro de igrejas.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/igrejas", func(r chi.Router) {
		r.Get("/", h.handleListar)
		r.Post("/", h.handleCriar)
		r.Patch("/{id}", h.handleAtualizar)
		r.Delete("/{id}", h.handleRemover)
	})
}

func (h *Handler) handleListar(w http.ResponseWriter, r *http.Request) {
	igrejas, err := h.service.Listar(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"igrejas": igrejas})
}

func (h *Handler) handleCriar(w http.ResponseWriter, r *http.Request) {
	var payload CriarInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "payload inválido")
		return
	}

	ig, err := h.service.Criar(r.Context(), payload)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"igreja": ig})
}

func (h *Handler) handleAtualizar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch util.Doc
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "payload inválido")
		return
	}

	ig, err := h.service.Atualizar(r.Context(), id, patch)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"igreja": ig})
}

func (h *Handler) handleRemover(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remover(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidacao):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, errNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "igreja não encontrada")
	default:
		writeInternalError(w, err)
	}
}

func writeInternalError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("igreja handler error")
	writeError(w, http.StatusInternalServerError, "INTERNAL", "erro interno")
}

// Helpers de resposta JSON compatíveis com o resto do projeto.
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
