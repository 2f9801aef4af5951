package painel

import (
	"context"
	"testing"
	"time"

	"github.com/registrodaime/api/internal/igreja"
	"github.com/registrodaime/api/internal/perfil"
	"github.com/registrodaime/api/internal/trabalho"
)

type stubTrabalhos struct {
	itens    []trabalho.Trabalho
	chamadas int
}

func (s *stubTrabalhos) Listar(ctx context.Context) ([]trabalho.Trabalho, error) {
	s.chamadas++
	return s.itens, nil
}

type stubPerfis struct {
	itens []perfil.Perfil
}

func (s *stubPerfis) Listar(ctx context.Context) ([]perfil.Perfil, error) {
	return s.itens, nil
}

type stubIgrejas struct {
	itens []igreja.Igreja
}

func (s *stubIgrejas) Listar(ctx context.Context) ([]igreja.Igreja, error) {
	return s.itens, nil
}

func TestUsoSemCache(t *testing.T) {
	trabalhos := &stubTrabalhos{itens: []trabalho.Trabalho{{ID: "t1", LocalID: "c1"}}}
	perfis := &stubPerfis{itens: []perfil.Perfil{{UID: "u1", IgrejaAtualID: "c1"}}}
	igrejas := &stubIgrejas{itens: []igreja.Igreja{{ID: "c1", Nome: "Céu do Mapiá"}}}

	svc := NewService(trabalhos, perfis, igrejas, nil, time.Minute)

	uso, err := svc.Uso(context.Background())
	if err != nil {
		t.Fatalf("Uso: %v", err)
	}
	if uso["c1"].Sediados != 1 || uso["c1"].MembrosAtuais != 1 {
		t.Fatalf("uso[c1] = %+v", uso["c1"])
	}

	if _, err := svc.Uso(context.Background()); err != nil {
		t.Fatalf("Uso: %v", err)
	}
	if trabalhos.chamadas != 2 {
		t.Fatalf("sem cache cada chamada deve recalcular, chamadas = %d", trabalhos.chamadas)
	}
}

func TestMontarIncluiDiretorio(t *testing.T) {
	trabalhos := &stubTrabalhos{itens: []trabalho.Trabalho{{ID: "t1", LocalID: "c1"}}}
	perfis := &stubPerfis{}
	igrejas := &stubIgrejas{itens: []igreja.Igreja{{ID: "c1", Nome: "Céu do Mapiá"}}}

	svc := NewService(trabalhos, perfis, igrejas, nil, time.Minute)

	resumo, err := svc.Montar(context.Background())
	if err != nil {
		t.Fatalf("Montar: %v", err)
	}
	if resumo.Uso["c1"].Sediados != 1 {
		t.Fatalf("uso = %+v", resumo.Uso)
	}
	if len(resumo.Igrejas) != 1 || resumo.Igrejas[0].Nome != "Céu do Mapiá" {
		t.Fatalf("igrejas = %+v", resumo.Igrejas)
	}
}
