package perfil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/registrodaime/api/internal/util"
)

// Store abstrai a coleção de perfis para o serviço.
type Store interface {
	ListRaw(ctx context.Context) ([]RawDoc, error)
	GetRaw(ctx context.Context, uid string) (util.Doc, error)
	Put(ctx context.Context, uid string, doc util.Doc) error
}

// Service contém as regras do perfil por identidade.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AtualizarInput é o formulário completo de perfil. Campos de texto vazios
// significam limpeza explícita; as listas de padrinho e papéis chegam como
// texto separado por vírgula.
type AtualizarInput struct {
	DisplayName      string `json:"displayName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	AvatarURL        string `json:"avatarUrl"`
	Cidade           string `json:"cidade"`
	Estado           string `json:"estado"`
	Pais             string `json:"pais"`
	IgrejaAtualID    string `json:"igrejaAtualId"`
	IgrejaAtualNome  string `json:"igrejaAtualNome"`
	IgrejaOrigemNome string `json:"igrejaOrigemNome"`

	Fardado              bool   `json:"fardado"`
	FardamentoData       string `json:"fardamentoData"`
	FardamentoLocal      string `json:"fardamentoLocal"`
	FardamentoIgrejaID   string `json:"fardamentoIgrejaId"`
	FardamentoIgrejaNome string `json:"fardamentoIgrejaNome"`
	FardadorNome         string `json:"fardadorNome"`
	FardadoComQuem       string `json:"fardadoComQuem"`

	PadrinhoMadrinha     bool     `json:"padrinhoMadrinha"`
	PadrinhoIgrejasIDs   []string `json:"padrinhoIgrejasIds"`
	PadrinhoIgrejasTexto string   `json:"padrinhoIgrejasTexto"`

	PapeisTexto string `json:"papeisTexto"`
	Observacoes string `json:"observacoes"`
}

// Obter carrega o perfil da identidade. Ausência não é erro de domínio para
// o fluxo de gravação, mas aqui devolve errNotFound para o handler decidir.
func (s *Service) Obter(ctx context.Context, uid string) (Perfil, error) {
	doc, err := s.store.GetRaw(ctx, uid)
	if err != nil {
		return Perfil{}, err
	}
	return Normalizar(uid, doc), nil
}

// Listar devolve o diretório de pessoas.
func (s *Service) Listar(ctx context.Context) ([]Perfil, error) {
	docs, err := s.store.ListRaw(ctx)
	if err != nil {
		return nil, err
	}

	perfis := make([]Perfil, 0, len(docs))
	for _, d := range docs {
		perfis = append(perfis, Normalizar(d.UID, d.Doc))
	}
	return perfis, nil
}

// Atualizar grava o perfil da identidade: primeira gravação carimba
// createdAt uma única vez; gravações seguintes fazem merge por campo. As
// invariantes de fardamento/padrinho são aplicadas sobre o estado mesclado.
func (s *Service) Atualizar(ctx context.Context, uid string, input AtualizarInput) (Perfil, error) {
	if err := util.ValidateEmail(input.Email); err != nil {
		return Perfil{}, fmt.Errorf("%w: %s", ErrValidacao, err.Error())
	}

	existente, err := s.store.GetRaw(ctx, uid)
	if err != nil && !errors.Is(err, errNotFound) {
		return Perfil{}, err
	}

	patch := montarPatch(input)
	doc := MontarUpsert(uid, patch, existente, time.Now())
	doc = AplicarRegras(doc)

	if err := s.store.Put(ctx, uid, doc); err != nil {
		return Perfil{}, err
	}
	return Normalizar(uid, doc), nil
}

func montarPatch(input AtualizarInput) util.Doc {
	patch := util.Doc{
		"fardado":          input.Fardado,
		"padrinhoMadrinha": input.PadrinhoMadrinha,
	}

	texto := func(campo, valor string) {
		if valor == "" {
			patch[campo] = nil
			return
		}
		patch[campo] = valor
	}

	texto("displayName", input.DisplayName)
	texto("email", input.Email)
	texto("phone", input.Phone)
	texto("avatarUrl", input.AvatarURL)
	texto("cidade", input.Cidade)
	texto("estado", input.Estado)
	texto("pais", input.Pais)
	texto("igrejaAtualId", input.IgrejaAtualID)
	texto("igrejaAtualNome", input.IgrejaAtualNome)
	texto("igrejaOrigemNome", input.IgrejaOrigemNome)
	texto("fardamentoData", input.FardamentoData)
	texto("fardamentoLocal", input.FardamentoLocal)
	texto("fardamentoIgrejaId", input.FardamentoIgrejaID)
	texto("fardamentoIgrejaNome", input.FardamentoIgrejaNome)
	texto("fardadorNome", input.FardadorNome)
	texto("fardadoComQuem", input.FardadoComQuem)
	texto("observacoes", input.Observacoes)

	lista := func(campo string, itens []string) {
		if len(itens) == 0 {
			patch[campo] = nil
			return
		}
		patch[campo] = itens
	}

	var ids []string
	for _, id := range input.PadrinhoIgrejasIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}
	lista("padrinhoIgrejasIds", ids)
	lista("padrinhoIgrejasNomes", util.SplitLista(input.PadrinhoIgrejasTexto))
	lista("papeisDoutrina", util.SplitLista(input.PapeisTexto))

	return patch
}
