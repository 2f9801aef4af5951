package perfil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	httpmiddleware "github.com/registrodaime/api/internal/http/middleware"
)

// Handler orquestra rotas de perfil e do diretório de pessoas.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/perfil", h.handleObter)
	r.Put("/perfil", h.handleAtualizar)
	r.Get("/pessoas", h.handleListar)
}

func (h *Handler) handleObter(w http.ResponseWriter, r *http.Request) {
	uid := httpmiddleware.GetSubject(r.Context())
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "AUTH", "identificação inválida")
		return
	}

	p, err := h.service.Obter(r.Context(), uid)
	if err != nil {
		if errors.Is(err, errNotFound) {
			// Primeira visita: ainda não há perfil gravado.
			writeJSON(w, http.StatusOK, map[string]any{"perfil": nil})
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"perfil": p})
}

func (h *Handler) handleAtualizar(w http.ResponseWriter, r *http.Request) {
	uid := httpmiddleware.GetSubject(r.Context())
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "AUTH", "identificação inválida")
		return
	}

	var payload AtualizarInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "payload inválido")
		return
	}

	p, err := h.service.Atualizar(r.Context(), uid, payload)
	if err != nil {
		if errors.Is(err, ErrValidacao) {
			writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"perfil": p})
}

func (h *Handler) handleListar(w http.ResponseWriter, r *http.Request) {
	perfis, err := h.service.Listar(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pessoas": perfis})
}

func writeInternalError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("perfil handler error")
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
