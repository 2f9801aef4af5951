package bebida

import (
	"fmt"
	"strings"

	"github.com/registrodaime/api/internal/util"
)

// Lote é a visão resumida de um lote de Daime, pronta para seleção em
// formulários.
type Lote struct {
	ID        string `json:"id"`
	Descricao string `json:"descricao"`
}

// Normalizar monta a descrição exibível de um lote. Quando o documento não
// traz descrição pronta, sintetiza uma a partir de grau, concentração, ano
// e localidade; grau ausente vira "?" para não esconder o lote da listagem.
func Normalizar(id string, raw util.Doc) Lote {
	l := Lote{ID: id}

	l.Descricao = util.DocString(raw, "descricao")
	if l.Descricao != "" {
		return l
	}

	grau := util.FormatarNumero(raw["grau"])
	if grau == "" {
		grau = "?"
	}
	partes := fmt.Sprintf("%sº grau, %s %s %s",
		grau,
		util.DocString(raw, "concentracao"),
		util.FormatarNumero(raw["ano"]),
		util.DocString(raw, "localidade"))
	l.Descricao = strings.Join(strings.Fields(partes), " ")
	return l
}
