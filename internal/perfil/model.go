package perfil

import (
	"errors"
	"time"

	"github.com/registrodaime/api/internal/util"
)

var (
	// ErrValidacao indica perfil recusado antes de qualquer escrita.
	ErrValidacao = errors.New("dados inválidos")

	errNotFound = errors.New("perfil não encontrado")
)

// Perfil é o registro por identidade autenticada. O uid vem do provedor de
// identidade externo; este sistema nunca o gera.
type Perfil struct {
	UID              string `json:"uid"`
	DisplayName      string `json:"displayName,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	AvatarURL        string `json:"avatarUrl,omitempty"`
	Cidade           string `json:"cidade,omitempty"`
	Estado           string `json:"estado,omitempty"`
	Pais             string `json:"pais,omitempty"`
	IgrejaAtualID    string `json:"igrejaAtualId,omitempty"`
	IgrejaAtualNome  string `json:"igrejaAtualNome,omitempty"`
	IgrejaOrigemNome string `json:"igrejaOrigemNome,omitempty"`

	Fardado              bool   `json:"fardado"`
	FardamentoData       string `json:"fardamentoData,omitempty"`
	FardamentoLocal      string `json:"fardamentoLocal,omitempty"`
	FardamentoIgrejaID   string `json:"fardamentoIgrejaId,omitempty"`
	FardamentoIgrejaNome string `json:"fardamentoIgrejaNome,omitempty"`
	FardadorNome         string `json:"fardadorNome,omitempty"`
	FardadoComQuem       string `json:"fardadoComQuem,omitempty"`

	PadrinhoMadrinha     bool     `json:"padrinhoMadrinha"`
	PadrinhoIgrejasIDs   []string `json:"padrinhoIgrejasIds,omitempty"`
	PadrinhoIgrejasNomes []string `json:"padrinhoIgrejasNomes,omitempty"`

	PapeisDoutrina []string `json:"papeisDoutrina,omitempty"`
	Observacoes    string   `json:"observacoes,omitempty"`

	CriadoEm     *time.Time `json:"createdAt,omitempty"`
	AtualizadoEm *time.Time `json:"updatedAt,omitempty"`
}

// Normalizar converte um documento bruto na forma canônica. Total: nunca
// falha; timestamps ausentes viram nil explícito, nunca campo indefinido.
func Normalizar(uid string, raw util.Doc) Perfil {
	p := Perfil{UID: uid}

	p.DisplayName = util.DocString(raw, "displayName")
	p.Email = util.DocString(raw, "email")
	p.Phone = util.DocString(raw, "phone")
	p.AvatarURL = util.DocString(raw, "avatarUrl")
	p.Cidade = util.DocString(raw, "cidade")
	p.Estado = util.DocString(raw, "estado")
	p.Pais = util.DocString(raw, "pais")
	p.IgrejaAtualID = util.DocString(raw, "igrejaAtualId")
	p.IgrejaAtualNome = util.DocString(raw, "igrejaAtualNome")
	p.IgrejaOrigemNome = util.DocString(raw, "igrejaOrigemNome")

	p.Fardado = util.DocBool(raw, "fardado")
	p.FardamentoData = util.DocString(raw, "fardamentoData")
	p.FardamentoLocal = util.DocString(raw, "fardamentoLocal")
	p.FardamentoIgrejaID = util.DocString(raw, "fardamentoIgrejaId")
	p.FardamentoIgrejaNome = util.DocString(raw, "fardamentoIgrejaNome")
	p.FardadorNome = util.DocString(raw, "fardadorNome")
	p.FardadoComQuem = util.DocString(raw, "fardadoComQuem")

	p.PadrinhoMadrinha = util.DocBool(raw, "padrinhoMadrinha")
	p.PadrinhoIgrejasIDs = util.DocStrings(raw, "padrinhoIgrejasIds")
	p.PadrinhoIgrejasNomes = util.DocStrings(raw, "padrinhoIgrejasNomes")

	p.PapeisDoutrina = util.DocStrings(raw, "papeisDoutrina")
	p.Observacoes = util.DocString(raw, "observacoes")

	p.CriadoEm = util.DocTime(raw, "createdAt")
	p.AtualizadoEm = util.DocTime(raw, "updatedAt")

	return p
}
