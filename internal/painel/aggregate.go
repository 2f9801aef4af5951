package painel

import (
	"github.com/registrodaime/api/internal/perfil"
	"github.com/registrodaime/api/internal/trabalho"
)

// Uso são os contadores de vínculo de uma igreja com o restante do
// cadastro.
type Uso struct {
	Sediados      int `json:"sediados"`
	Responsaveis  int `json:"responsaveis"`
	MembrosAtuais int `json:"membrosAtuais"`
	Fardamentos   int `json:"fardamentos"`
}

// Agregar cruza trabalhos e perfis e conta, por id de igreja:
// trabalhos sediados, responsabilidades, membros atuais e fardamentos.
// Referências só por nome (forma antiga, sem id) não contam — o painel
// mede vínculos rastreáveis, não texto livre.
func Agregar(trabalhos []trabalho.Trabalho, perfis []perfil.Perfil) map[string]Uso {
	uso := map[string]Uso{}

	for _, t := range trabalhos {
		if t.LocalID != "" {
			u := uso[t.LocalID]
			u.Sediados++
			uso[t.LocalID] = u
		}
		for _, id := range t.IgrejasResponsaveisIDs {
			if id == "" {
				continue
			}
			u := uso[id]
			u.Responsaveis++
			uso[id] = u
		}
	}

	for _, p := range perfis {
		if p.IgrejaAtualID != "" {
			u := uso[p.IgrejaAtualID]
			u.MembrosAtuais++
			uso[p.IgrejaAtualID] = u
		}
		if p.FardamentoIgrejaID != "" {
			u := uso[p.FardamentoIgrejaID]
			u.Fardamentos++
			uso[p.FardamentoIgrejaID] = u
		}
	}

	return uso
}
