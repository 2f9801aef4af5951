package trabalho

import (
	"reflect"
	"testing"

	"github.com/registrodaime/api/internal/util"
)

func TestNormalizarTotalGravadoPrevalece(t *testing.T) {
	raw := util.Doc{
		"participantes": map[string]any{
			"total":    float64(50),
			"homens":   float64(10),
			"mulheres": float64(10),
			"criancas": float64(3),
			"outros":   float64(2),
		},
	}

	got := Normalizar("t1", raw)

	if got.Participantes == nil || got.Participantes.Total != 50 {
		t.Fatalf("total = %+v, want 50 (valor gravado)", got.Participantes)
	}
}

func TestNormalizarTotalSomado(t *testing.T) {
	raw := util.Doc{
		"participantes": map[string]any{
			"homens":   float64(10),
			"mulheres": float64(10),
			"criancas": float64(3),
			"outros":   float64(2),
		},
	}

	got := Normalizar("t1", raw)

	if got.Participantes.Total != 25 {
		t.Fatalf("total = %d, want 25 (soma das categorias)", got.Participantes.Total)
	}
}

func TestNormalizarHorarioSemData(t *testing.T) {
	raw := util.Doc{
		"horarioInicio": "2024-06-01T19:00:00Z",
	}

	got := Normalizar("t1", raw)

	if got.Data != nil {
		t.Fatalf("data = %v, want nil", got.Data)
	}
	if got.HorarioInicio != nil {
		t.Fatal("horarioInicio deveria ser anulado quando não há data")
	}
}

func TestNormalizarFormaAntigaDeLocal(t *testing.T) {
	raw := util.Doc{"local": "Sede provisória"}

	got := Normalizar("t1", raw)

	if got.LocalTexto != "Sede provisória" {
		t.Fatalf("localTexto = %q", got.LocalTexto)
	}
	if got.LocalID != "" || got.LocalNome != "" {
		t.Fatal("forma antiga não tem referência de igreja")
	}
}

func TestNormalizarFormaNovaDeLocalPrevalece(t *testing.T) {
	raw := util.Doc{
		"local":      "texto antigo",
		"localId":    "c1",
		"localNome":  "Céu do Mapiá",
		"localTexto": "Céu do Mapiá (sede)",
	}

	got := Normalizar("t1", raw)

	if got.LocalTexto != "Céu do Mapiá (sede)" {
		t.Fatalf("localTexto = %q, want forma nova", got.LocalTexto)
	}
	if got.LocalID != "c1" || got.LocalNome != "Céu do Mapiá" {
		t.Fatalf("referência = %q/%q", got.LocalID, got.LocalNome)
	}
}

func TestNormalizarFormaAntigaDeResponsaveis(t *testing.T) {
	raw := util.Doc{
		"igrejasResponsaveis": []any{"Céu do Mapiá", "Alto Santo"},
	}

	got := Normalizar("t1", raw)

	want := []string{"Céu do Mapiá", "Alto Santo"}
	if !reflect.DeepEqual(got.IgrejasResponsaveisNomes, want) {
		t.Fatalf("nomes = %v, want %v", got.IgrejasResponsaveisNomes, want)
	}
	if got.IgrejasResponsaveisIDs != nil {
		t.Fatal("forma antiga não tem ids")
	}
}

func TestNormalizarBebidaLoteRefAntigo(t *testing.T) {
	raw := util.Doc{
		"bebida": map[string]any{
			"loteRef":          "l1",
			"quantidadeLitros": float64(2.5),
		},
	}

	got := Normalizar("t1", raw)

	if got.Bebida == nil || got.Bebida.LoteID != "l1" {
		t.Fatalf("bebida = %+v, want loteRef interpretado como id", got.Bebida)
	}
	if got.Bebida.QuantidadeLitros == nil || *got.Bebida.QuantidadeLitros != 2.5 {
		t.Fatalf("quantidadeLitros = %v", got.Bebida.QuantidadeLitros)
	}
}

func TestNormalizarBebidaLoteIdPrevalece(t *testing.T) {
	raw := util.Doc{
		"bebida": map[string]any{
			"loteRef": "antigo",
			"loteId":  "novo",
		},
	}

	got := Normalizar("t1", raw)

	if got.Bebida.LoteID != "novo" {
		t.Fatalf("loteId = %q, want forma nova", got.Bebida.LoteID)
	}
}
