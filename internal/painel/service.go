package painel

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/registrodaime/api/internal/igreja"
	"github.com/registrodaime/api/internal/perfil"
	"github.com/registrodaime/api/internal/trabalho"
)

const cacheKey = "painel:uso"

// FonteTrabalhos fornece os trabalhos normalizados para agregação.
type FonteTrabalhos interface {
	Listar(ctx context.Context) ([]trabalho.Trabalho, error)
}

// FontePerfis fornece os perfis normalizados para agregação.
type FontePerfis interface {
	Listar(ctx context.Context) ([]perfil.Perfil, error)
}

// FonteIgrejas fornece o diretório de igrejas para o painel exibir nomes.
type FonteIgrejas interface {
	Listar(ctx context.Context) ([]igreja.Igreja, error)
}

// Resumo é a resposta do painel: contadores por id de igreja mais o
// diretório para resolução dos nomes.
type Resumo struct {
	Uso     map[string]Uso  `json:"uso"`
	Igrejas []igreja.Igreja `json:"igrejas"`
}

// Service monta o painel de uso por igreja, com cache opcional.
type Service struct {
	trabalhos FonteTrabalhos
	perfis    FontePerfis
	igrejas   FonteIgrejas
	cache     *redis.Client
	cacheTTL  time.Duration
}

func NewService(trabalhos FonteTrabalhos, perfis FontePerfis, igrejas FonteIgrejas, cache *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{trabalhos: trabalhos, perfis: perfis, igrejas: igrejas, cache: cache, cacheTTL: cacheTTL}
}

// Uso devolve os contadores por igreja. O resultado é derivado, então o
// cache pode servir uma visão de até cacheTTL atrás sem comprometer o
// cadastro.
func (s *Service) Uso(ctx context.Context) (map[string]Uso, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var uso map[string]Uso
			if json.Unmarshal(data, &uso) == nil {
				return uso, nil
			}
		}
	}

	trabalhos, err := s.trabalhos.Listar(ctx)
	if err != nil {
		return nil, err
	}
	perfis, err := s.perfis.Listar(ctx)
	if err != nil {
		return nil, err
	}

	uso := Agregar(trabalhos, perfis)

	if s.cache != nil {
		if payload, err := json.Marshal(uso); err == nil {
			_ = s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err()
		}
	}

	return uso, nil
}

// Montar junta os contadores com o diretório de igrejas. O diretório sai
// sempre fresco; só a agregação passa pelo cache.
func (s *Service) Montar(ctx context.Context) (Resumo, error) {
	uso, err := s.Uso(ctx)
	if err != nil {
		return Resumo{}, err
	}
	igrejas, err := s.igrejas.Listar(ctx)
	if err != nil {
		return Resumo{}, err
	}
	return Resumo{Uso: uso, Igrejas: igrejas}, nil
}
