package util

import (
	"reflect"
	"testing"
)

func TestSplitLista(t *testing.T) {
	tests := []struct {
		name  string
		texto string
		want  []string
	}{
		{"vazio", "", nil},
		{"apenas virgulas", " , ,, ", nil},
		{"apara espacos", " Céu do Mapiá , Alto Santo ", []string{"Céu do Mapiá", "Alto Santo"}},
		{"preserva ordem e repetidos", "b,a,b", []string{"b", "a", "b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLista(tc.texto)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitLista(%q) = %v, want %v", tc.texto, got, tc.want)
			}
		})
	}
}

func TestMergeDoc(t *testing.T) {
	base := Doc{"a": "1", "b": "2", "c": "3"}
	patch := Doc{"b": "alterado", "c": nil, "d": "novo"}

	got := MergeDoc(base, patch)

	want := Doc{"a": "1", "b": "alterado", "d": "novo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MergeDoc = %v, want %v", got, want)
	}
	if _, ok := base["d"]; ok {
		t.Fatal("MergeDoc alterou o documento base")
	}
}

func TestDocTime(t *testing.T) {
	doc := Doc{
		"ok":        "2024-05-01T10:00:00Z",
		"malformed": "01/05/2024",
		"vazio":     "",
	}

	if got := DocTime(doc, "ok"); got == nil || got.Year() != 2024 {
		t.Fatalf("DocTime(ok) = %v", got)
	}
	if got := DocTime(doc, "malformed"); got != nil {
		t.Fatalf("DocTime(malformed) = %v, want nil", got)
	}
	if got := DocTime(doc, "vazio"); got != nil {
		t.Fatalf("DocTime(vazio) = %v, want nil", got)
	}
	if got := DocTime(doc, "ausente"); got != nil {
		t.Fatalf("DocTime(ausente) = %v, want nil", got)
	}
}

func TestDocStrings(t *testing.T) {
	doc := Doc{
		"decodificado": []any{"a", 2, "b"},
		"memoria":      []string{"x", "y"},
	}

	if got := DocStrings(doc, "decodificado"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("DocStrings(decodificado) = %v", got)
	}
	if got := DocStrings(doc, "memoria"); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("DocStrings(memoria) = %v", got)
	}
	if got := DocStrings(doc, "ausente"); got != nil {
		t.Fatalf("DocStrings(ausente) = %v", got)
	}
}

func TestFormatarNumero(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{float64(2020), "2020"},
		{2.5, "2.5"},
		{7, "7"},
		{"forte", "forte"},
		{nil, ""},
	}

	for _, tc := range tests {
		if got := FormatarNumero(tc.in); got != tc.want {
			t.Fatalf("FormatarNumero(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
