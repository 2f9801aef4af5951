package perfil

import "github.com/registrodaime/api/internal/util"

// Campos que só existem quando a flag que os governa é verdadeira. No
// armazenamento eles devem estar ausentes, não apenas vazios.
var (
	camposFardamento = []string{
		"fardamentoData",
		"fardamentoLocal",
		"fardamentoIgrejaId",
		"fardamentoIgrejaNome",
		"fardadorNome",
		"fardadoComQuem",
	}
	camposPadrinho = []string{
		"padrinhoIgrejasIds",
		"padrinhoIgrejasNomes",
	}
)

// AplicarRegras força as invariantes dos campos condicionais sobre o estado
// pós-merge de um perfil, devolvendo documento novo:
//
//  1. fardado=false zera padrinhoMadrinha e remove todos os campos de
//     fardamento e de padrinho, independente do que o chamador enviou;
//  2. fardado=true com padrinhoMadrinha=false remove apenas os campos de
//     padrinho.
//
// Roda igual para substituição integral ou patch parcial, porque sempre
// recebe o documento já mesclado.
func AplicarRegras(doc util.Doc) util.Doc {
	out := make(util.Doc, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if !util.DocBool(out, "fardado") {
		out["fardado"] = false
		out["padrinhoMadrinha"] = false
		removerCampos(out, camposFardamento)
		removerCampos(out, camposPadrinho)
		return out
	}

	if !util.DocBool(out, "padrinhoMadrinha") {
		out["padrinhoMadrinha"] = false
		removerCampos(out, camposPadrinho)
	}

	return out
}

func removerCampos(doc util.Doc, campos []string) {
	for _, campo := range campos {
		delete(doc, campo)
	}
}
