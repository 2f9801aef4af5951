package trabalho

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/registrodaime/api/internal/util"
)

// ErrValidacao marca erros de entrada do cliente.
var ErrValidacao = errors.New("erro de validação")

// Store abstrai a persistência de documentos brutos de trabalho.
type Store interface {
	ListRaw(ctx context.Context) ([]RawDoc, error)
	GetRaw(ctx context.Context, id string) (util.Doc, error)
	Put(ctx context.Context, id string, doc util.Doc) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CriarInput é o formulário de criação de trabalho.
type CriarInput struct {
	Titulo             string   `json:"titulo"`
	Data               string   `json:"data"`
	HorarioInicio      string   `json:"horarioInicio"`
	DuracaoEsperadaMin *int     `json:"duracaoEsperadaMin"`
	DuracaoEfetivaMin  *int     `json:"duracaoEfetivaMin"`
	Anotacoes          string   `json:"anotacoes"`
	Hinarios           []string `json:"hinarios"`

	LocalID    string `json:"localId"`
	LocalNome  string `json:"localNome"`
	LocalTexto string `json:"localTexto"`

	IgrejasResponsaveisIDs   []string `json:"igrejasResponsaveisIds"`
	IgrejasResponsaveisTexto string   `json:"igrejasResponsaveisTexto"`
	IgrejasResponsaveisNomes []string `json:"igrejasResponsaveisNomes"`

	Participantes *Participantes `json:"participantes"`
	Bebida        *Bebida        `json:"bebida"`
}

func (s *Service) Listar(ctx context.Context) ([]Trabalho, error) {
	docs, err := s.store.ListRaw(ctx)
	if err != nil {
		return nil, err
	}
	trabalhos := make([]Trabalho, 0, len(docs))
	for _, d := range docs {
		trabalhos = append(trabalhos, Normalizar(d.ID, d.Doc))
	}
	return trabalhos, nil
}

// Criar grava um trabalho novo. createdBy vem da identidade autenticada,
// nunca do corpo da requisição.
func (s *Service) Criar(ctx context.Context, criadoPor string, input CriarInput) (Trabalho, error) {
	if strings.TrimSpace(input.Titulo) == "" {
		return Trabalho{}, fmt.Errorf("%w: título é obrigatório", ErrValidacao)
	}

	agora := time.Now().UTC().Format(time.RFC3339)
	doc := util.Doc{
		"titulo":    strings.TrimSpace(input.Titulo),
		"createdBy": criadoPor,
		"createdAt": agora,
		"updatedAt": agora,
	}

	// data e horário ausentes ficam gravados como nulos explícitos,
	// distinguindo "sem data" de documento incompleto.
	doc["data"] = valorOuNulo(input.Data)
	doc["horarioInicio"] = valorOuNulo(input.HorarioInicio)
	if input.DuracaoEsperadaMin != nil {
		doc["duracaoEsperadaMin"] = *input.DuracaoEsperadaMin
	} else {
		doc["duracaoEsperadaMin"] = nil
	}
	if input.DuracaoEfetivaMin != nil {
		doc["duracaoEfetivaMin"] = *input.DuracaoEfetivaMin
	} else {
		doc["duracaoEfetivaMin"] = nil
	}

	setSePresente(doc, "anotacoes", input.Anotacoes)
	setSePresente(doc, "localId", input.LocalID)
	setSePresente(doc, "localNome", input.LocalNome)
	setSePresente(doc, "localTexto", input.LocalTexto)
	setSePresente(doc, "igrejasResponsaveisTexto", input.IgrejasResponsaveisTexto)

	if len(input.Hinarios) > 0 {
		doc["hinarios"] = input.Hinarios
	}
	if len(input.IgrejasResponsaveisIDs) > 0 {
		doc["igrejasResponsaveisIds"] = input.IgrejasResponsaveisIDs
	}
	if len(input.IgrejasResponsaveisNomes) > 0 {
		doc["igrejasResponsaveisNomes"] = input.IgrejasResponsaveisNomes
	}
	if input.Participantes != nil {
		doc["participantes"] = participantesDoc(input.Participantes)
	}
	if input.Bebida != nil {
		doc["bebida"] = bebidaDoc(input.Bebida)
	}

	id := uuid.NewString()
	if err := s.store.Put(ctx, id, doc); err != nil {
		return Trabalho{}, err
	}
	return Normalizar(id, doc), nil
}

// camposProtegidos nunca são alterados por atualização parcial.
var camposProtegidos = []string{"id", "createdBy", "createdAt", "updatedAt"}

// Atualizar aplica um patch parcial sobre um trabalho existente. Chave
// ausente não mexe no campo; chave presente com nulo apaga o valor.
func (s *Service) Atualizar(ctx context.Context, id string, patch util.Doc) (Trabalho, error) {
	existente, err := s.store.GetRaw(ctx, id)
	if err != nil {
		return Trabalho{}, err
	}

	limpo := util.Doc{}
	for k, v := range patch {
		limpo[k] = v
	}
	for _, campo := range camposProtegidos {
		delete(limpo, campo)
	}

	doc := util.MergeDoc(existente, limpo)
	doc["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.store.Put(ctx, id, doc); err != nil {
		return Trabalho{}, err
	}
	return Normalizar(id, doc), nil
}

func valorOuNulo(v string) any {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return v
}

func setSePresente(doc util.Doc, campo, valor string) {
	valor = strings.TrimSpace(valor)
	if valor != "" {
		doc[campo] = valor
	}
}

func participantesDoc(p *Participantes) util.Doc {
	doc := util.Doc{
		"total":    p.Total,
		"fardados": p.Fardados,
		"homens":   p.Homens,
		"mulheres": p.Mulheres,
		"criancas": p.Criancas,
		"outros":   p.Outros,
	}
	if p.OutrosDescricao != "" {
		doc["outrosDescricao"] = p.OutrosDescricao
	}
	return doc
}

func bebidaDoc(b *Bebida) util.Doc {
	doc := util.Doc{}
	if b.LoteID != "" {
		doc["loteId"] = b.LoteID
	}
	if b.LoteDescricao != "" {
		doc["loteDescricao"] = b.LoteDescricao
	}
	if b.LoteTexto != "" {
		doc["loteTexto"] = b.LoteTexto
	}
	if b.QuantidadeLitros != nil {
		doc["quantidadeLitros"] = *b.QuantidadeLitros
	}
	return doc
}
