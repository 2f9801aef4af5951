package igreja

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/registrodaime/api/internal/util"
)

// Store abstrai a coleção de igrejas para o serviço.
type Store interface {
	ListRaw(ctx context.Context) ([]RawDoc, error)
	GetRaw(ctx context.Context, id string) (util.Doc, error)
	Put(ctx context.Context, id string, doc util.Doc) error
	Delete(ctx context.Context, id string) error
}

// Service contém as regras do cadastro de igrejas.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CriarInput são os campos aceitos no cadastro.
type CriarInput struct {
	Nome        string   `json:"nome"`
	Cidade      string   `json:"cidade"`
	Estado      string   `json:"estado"`
	Pais        string   `json:"pais"`
	Linhagem    string   `json:"linhagem"`
	Observacoes string   `json:"observacoes"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// Listar devolve todas as igrejas normalizadas.
func (s *Service) Listar(ctx context.Context) ([]Igreja, error) {
	docs, err := s.store.ListRaw(ctx)
	if err != nil {
		return nil, err
	}

	igrejas := make([]Igreja, 0, len(docs))
	for _, d := range docs {
		igrejas = append(igrejas, Normalizar(d.ID, d.Doc))
	}
	return igrejas, nil
}

// Criar valida e grava uma igreja nova.
func (s *Service) Criar(ctx context.Context, input CriarInput) (Igreja, error) {
	agora := time.Now().UTC().Format(time.RFC3339)

	doc := util.Doc{
		"nome":      input.Nome,
		"createdAt": agora,
		"updatedAt": agora,
	}
	setSePresente(doc, "cidade", input.Cidade)
	setSePresente(doc, "estado", input.Estado)
	setSePresente(doc, "pais", input.Pais)
	setSePresente(doc, "linhagem", input.Linhagem)
	setSePresente(doc, "observacoes", input.Observacoes)
	if input.Lat != nil {
		doc["lat"] = *input.Lat
	}
	if input.Lng != nil {
		doc["lng"] = *input.Lng
	}

	if err := validarDoc(doc); err != nil {
		return Igreja{}, err
	}

	id := uuid.NewString()
	if err := s.store.Put(ctx, id, doc); err != nil {
		return Igreja{}, err
	}
	return Normalizar(id, doc), nil
}

// Atualizar aplica um patch parcial. Valida o estado resultante, nunca o
// patch isolado.
func (s *Service) Atualizar(ctx context.Context, id string, patch util.Doc) (Igreja, error) {
	existente, err := s.store.GetRaw(ctx, id)
	if err != nil {
		return Igreja{}, err
	}

	limpo := sanitizarPatch(patch)
	doc := util.MergeDoc(existente, limpo)
	doc["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	if err := validarDoc(doc); err != nil {
		return Igreja{}, err
	}

	if err := s.store.Put(ctx, id, doc); err != nil {
		return Igreja{}, err
	}
	return Normalizar(id, doc), nil
}

// Remover apaga definitivamente. Trabalhos antigos mantêm o nome
// desnormalizado que gravaram na época.
func (s *Service) Remover(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

var camposPermitidos = map[string]struct{}{
	"nome": {}, "cidade": {}, "estado": {}, "pais": {},
	"linhagem": {}, "observacoes": {}, "lat": {}, "lng": {},
}

func sanitizarPatch(patch util.Doc) util.Doc {
	limpo := util.Doc{}
	for k, v := range patch {
		if _, ok := camposPermitidos[k]; ok {
			limpo[k] = v
		}
	}
	return limpo
}

func setSePresente(doc util.Doc, campo, valor string) {
	if valor != "" {
		doc[campo] = valor
	}
}
