package trabalho

import (
	"errors"
	"time"

	"github.com/registrodaime/api/internal/util"
)

var errNotFound = errors.New("trabalho não encontrado")

// Participantes é o detalhamento de presença de um trabalho.
type Participantes struct {
	Total           int    `json:"total"`
	Fardados        int    `json:"fardados,omitempty"`
	Homens          int    `json:"homens,omitempty"`
	Mulheres        int    `json:"mulheres,omitempty"`
	Criancas        int    `json:"criancas,omitempty"`
	Outros          int    `json:"outros,omitempty"`
	OutrosDescricao string `json:"outrosDescricao,omitempty"`
}

// Bebida registra o uso de Daime no trabalho.
type Bebida struct {
	LoteID           string   `json:"loteId,omitempty"`
	LoteDescricao    string   `json:"loteDescricao,omitempty"`
	LoteTexto        string   `json:"loteTexto,omitempty"`
	QuantidadeLitros *float64 `json:"quantidadeLitros,omitempty"`
}

// Trabalho é o registro canônico de um trabalho. Referências de igreja são
// instantâneos desnormalizados: renomear uma igreja não reescreve o
// histórico.
type Trabalho struct {
	ID            string     `json:"id"`
	Titulo        string     `json:"titulo,omitempty"`
	Data          *time.Time `json:"data"`
	HorarioInicio *time.Time `json:"horarioInicio"`

	DuracaoEsperadaMin *int `json:"duracaoEsperadaMin,omitempty"`
	DuracaoEfetivaMin  *int `json:"duracaoEfetivaMin,omitempty"`

	Anotacoes     string         `json:"anotacoes,omitempty"`
	Participantes *Participantes `json:"participantes,omitempty"`
	Hinarios      []string       `json:"hinarios,omitempty"`

	LocalID    string `json:"localId,omitempty"`
	LocalNome  string `json:"localNome,omitempty"`
	LocalTexto string `json:"localTexto,omitempty"`

	IgrejasResponsaveisIDs   []string `json:"igrejasResponsaveisIds,omitempty"`
	IgrejasResponsaveisNomes []string `json:"igrejasResponsaveisNomes,omitempty"`
	IgrejasResponsaveisTexto string   `json:"igrejasResponsaveisTexto,omitempty"`

	Bebida *Bebida `json:"bebida,omitempty"`

	CreatedBy    string     `json:"createdBy,omitempty"`
	CriadoEm     *time.Time `json:"createdAt,omitempty"`
	AtualizadoEm *time.Time `json:"updatedAt,omitempty"`
}

// Normalizar reconcilia as formas histórica e atual de um documento bruto
// em uma visão canônica. Total: nunca falha.
//
// Regras herdadas de duas gerações de esquema que convivem na coleção:
//   - horário sem data não significa nada: data ausente anula horarioInicio
//     mesmo que haja valor gravado;
//   - total de participantes gravado é confiado como está (registros
//     antigos têm totais digitados à mão); ausente, soma as quatro
//     categorias tratando ausência como zero;
//   - local e igrejas responsáveis aceitam a forma antiga (texto livre
//     único, lista plana de nomes) e a nova (referências + nomes
//     desnormalizados + texto), sem descartar nenhuma das duas;
//   - bebida tenta a forma nova primeiro e interpreta o loteRef antigo
//     como id.
func Normalizar(id string, raw util.Doc) Trabalho {
	t := Trabalho{ID: id}

	t.Titulo = util.DocString(raw, "titulo")
	t.Anotacoes = util.DocString(raw, "anotacoes")
	t.Hinarios = util.DocStrings(raw, "hinarios")

	t.Data = util.DocTime(raw, "data")
	if t.Data != nil {
		t.HorarioInicio = util.DocTime(raw, "horarioInicio")
	}

	if v, ok := util.DocInt(raw, "duracaoEsperadaMin"); ok {
		t.DuracaoEsperadaMin = &v
	}
	if v, ok := util.DocInt(raw, "duracaoEfetivaMin"); ok {
		t.DuracaoEfetivaMin = &v
	}

	if p := util.DocChild(raw, "participantes"); p != nil {
		t.Participantes = normalizarParticipantes(p)
	}

	t.LocalID = util.DocString(raw, "localId")
	t.LocalNome = util.DocString(raw, "localNome")
	t.LocalTexto = util.DocString(raw, "localTexto")
	if t.LocalTexto == "" {
		// forma antiga: um único campo de texto livre
		t.LocalTexto = util.DocString(raw, "local")
	}

	t.IgrejasResponsaveisIDs = util.DocStrings(raw, "igrejasResponsaveisIds")
	t.IgrejasResponsaveisNomes = util.DocStrings(raw, "igrejasResponsaveisNomes")
	if len(t.IgrejasResponsaveisNomes) == 0 {
		// forma antiga: lista plana de nomes sem referência
		t.IgrejasResponsaveisNomes = util.DocStrings(raw, "igrejasResponsaveis")
	}
	t.IgrejasResponsaveisTexto = util.DocString(raw, "igrejasResponsaveisTexto")

	if b := util.DocChild(raw, "bebida"); b != nil {
		t.Bebida = normalizarBebida(b)
	}

	t.CreatedBy = util.DocString(raw, "createdBy")
	t.CriadoEm = util.DocTime(raw, "createdAt")
	t.AtualizadoEm = util.DocTime(raw, "updatedAt")

	return t
}

func normalizarParticipantes(p util.Doc) *Participantes {
	part := &Participantes{}
	part.Fardados, _ = util.DocInt(p, "fardados")
	part.Homens, _ = util.DocInt(p, "homens")
	part.Mulheres, _ = util.DocInt(p, "mulheres")
	part.Criancas, _ = util.DocInt(p, "criancas")
	part.Outros, _ = util.DocInt(p, "outros")
	part.OutrosDescricao = util.DocString(p, "outrosDescricao")

	if total, ok := util.DocInt(p, "total"); ok {
		part.Total = total
	} else {
		part.Total = part.Homens + part.Mulheres + part.Criancas + part.Outros
	}
	return part
}

func normalizarBebida(b util.Doc) *Bebida {
	beb := &Bebida{}
	beb.LoteID = util.DocString(b, "loteId")
	if beb.LoteID == "" {
		beb.LoteID = util.DocString(b, "loteRef")
	}
	beb.LoteDescricao = util.DocString(b, "loteDescricao")
	beb.LoteTexto = util.DocString(b, "loteTexto")
	if q, ok := util.DocFloat(b, "quantidadeLitros"); ok {
		beb.QuantidadeLitros = &q
	}
	return beb
}
