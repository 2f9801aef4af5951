package perfil

import (
	"time"

	"github.com/registrodaime/api/internal/util"
)

// MontarUpsert decide entre primeira gravação e merge subsequente. Função
// pura: o registro existente vem de uma leitura prévia do chamador.
//
//   - updatedAt recebe sempre o instante atual;
//   - createdAt é carimbado somente quando não há registro existente; se
//     houver, o valor armazenado prevalece e qualquer createdAt vindo no
//     patch é descartado;
//   - merge por campo: chave ausente no patch mantém o valor armazenado,
//     chave com nil remove o campo;
//   - o uid é forçado ao id endereçado, sobrescrevendo o patch.
//
// Duas gravações concorrentes de primeira via podem carimbar createdAt em
// dobro; resolver isso é responsabilidade do armazenamento.
func MontarUpsert(uid string, patch, existente util.Doc, agora time.Time) util.Doc {
	p := make(util.Doc, len(patch))
	for k, v := range patch {
		p[k] = v
	}
	delete(p, "createdAt")
	delete(p, "updatedAt")

	base := existente
	if base == nil {
		base = util.Doc{}
	}

	doc := util.MergeDoc(base, p)
	doc["uid"] = uid
	doc["updatedAt"] = agora.UTC().Format(time.RFC3339)
	if existente == nil {
		doc["createdAt"] = agora.UTC().Format(time.RFC3339)
	}

	return doc
}
