package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/registrodaime/api/internal/auth"
	"github.com/registrodaime/api/internal/bebida"
	"github.com/registrodaime/api/internal/config"
	"github.com/registrodaime/api/internal/http/middleware"
	"github.com/registrodaime/api/internal/igreja"
	"github.com/registrodaime/api/internal/painel"
	"github.com/registrodaime/api/internal/perfil"
	"github.com/registrodaime/api/internal/trabalho"
)

// Handler agrega dependências compartilhadas das rotas de infraestrutura.
type Handler struct {
	cfg   *config.Config
	pool  *pgxpool.Pool
	redis *redis.Client
}

// NewRouter monta o roteador completo da aplicação.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) http.Handler {
	h := &Handler{cfg: cfg, pool: pool, redis: redisClient}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTTL)

	igrejaService := igreja.NewService(igreja.NewRepository(pool))
	igrejaHandler := igreja.NewHandler(igrejaService)

	perfilService := perfil.NewService(perfil.NewRepository(pool))
	perfilHandler := perfil.NewHandler(perfilService)

	trabalhoService := trabalho.NewService(trabalho.NewRepository(pool))
	trabalhoHandler := trabalho.NewHandler(trabalhoService)

	bebidaHandler := bebida.NewHandler(bebida.NewService(bebida.NewRepository(pool)))

	painelService := painel.NewService(trabalhoService, perfilService, igrejaService, redisClient, cfg.PainelCacheTTL)
	painelHandler := painel.NewHandler(painelService)

	publicLimiter := middleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst)
	authLimiter := middleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.AllowOrigins))

	r.Group(func(r chi.Router) {
		r.Use(middleware.IPRateLimit(publicLimiter))
		r.Get("/health", h.handleHealth)
		r.Get("/ready", h.handleReady)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager))
		r.Use(middleware.UserRateLimit(authLimiter))

		igrejaHandler.RegisterRoutes(r)
		perfilHandler.RegisterRoutes(r)
		trabalhoHandler.RegisterRoutes(r)
		bebidaHandler.RegisterRoutes(r)
		painelHandler.RegisterRoutes(r)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady confirma conectividade com Postgres e Redis antes de aceitar
// tráfego.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.Ping(r.Context()); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "banco indisponível", nil)
		return
	}
	if err := h.redis.Ping(r.Context()).Err(); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "redis indisponível", nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
