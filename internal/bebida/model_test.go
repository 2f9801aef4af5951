package bebida

import (
	"testing"

	"github.com/registrodaime/api/internal/util"
)

func TestNormalizarDescricaoPronta(t *testing.T) {
	got := Normalizar("l1", util.Doc{
		"descricao": "Feitio de São João 2022",
		"grau":      float64(3),
	})

	if got.Descricao != "Feitio de São João 2022" {
		t.Fatalf("descricao = %q, want valor gravado", got.Descricao)
	}
}

func TestNormalizarSinteticaCompleta(t *testing.T) {
	got := Normalizar("l1", util.Doc{
		"grau":         float64(3),
		"concentracao": "forte",
		"ano":          float64(2022),
		"localidade":   "Céu do Mapiá",
	})

	if got.Descricao != "3º grau, forte 2022 Céu do Mapiá" {
		t.Fatalf("descricao = %q", got.Descricao)
	}
}

func TestNormalizarGrauAusente(t *testing.T) {
	got := Normalizar("l1", util.Doc{
		"ano": float64(2020),
	})

	if got.Descricao != "?º grau, 2020" {
		t.Fatalf("descricao = %q, want grau desconhecido sinalizado", got.Descricao)
	}
}
