package util

import (
	"strconv"
	"strings"
	"time"
)

// Doc representa um registro bruto vindo do armazenamento, sem esquema fixo.
// Coleções antigas e novas convivem no mesmo formato; os normalizadores de
// cada módulo leem os campos com os acessores abaixo.
type Doc = map[string]any

// MergeDoc aplica um patch raso sobre um documento existente e devolve um
// documento novo. Chave ausente no patch mantém o valor armazenado; chave
// presente com valor nil remove o campo (limpeza explícita).
func MergeDoc(base, patch Doc) Doc {
	out := make(Doc, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// SplitLista converte texto separado por vírgula em lista: divide, apara
// cada item, descarta vazios, preserva ordem e não deduplica.
func SplitLista(texto string) []string {
	var itens []string
	for _, parte := range strings.Split(texto, ",") {
		parte = strings.TrimSpace(parte)
		if parte != "" {
			itens = append(itens, parte)
		}
	}
	return itens
}

// DocString lê campo texto; valores ausentes ou de outro tipo viram "".
func DocString(doc Doc, campo string) string {
	val, _ := doc[campo].(string)
	return val
}

// DocBool lê campo booleano com default false.
func DocBool(doc Doc, campo string) bool {
	val, _ := doc[campo].(bool)
	return val
}

// DocFloat lê campo numérico. O segundo retorno indica presença.
func DocFloat(doc Doc, campo string) (float64, bool) {
	switch v := doc[campo].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// DocInt lê campo numérico truncado para inteiro.
func DocInt(doc Doc, campo string) (int, bool) {
	f, ok := DocFloat(doc, campo)
	return int(f), ok
}

// DocStrings lê lista de textos, ignorando itens de outro tipo. Aceita
// tanto a forma decodificada do armazenamento ([]any) quanto documentos
// montados em memória ([]string).
func DocStrings(doc Doc, campo string) []string {
	switch bruto := doc[campo].(type) {
	case []string:
		return bruto
	case []any:
		var itens []string
		for _, item := range bruto {
			if s, ok := item.(string); ok {
				itens = append(itens, s)
			}
		}
		return itens
	}
	return nil
}

// DocChild lê um sub-documento (mapa aninhado).
func DocChild(doc Doc, campo string) Doc {
	child, _ := doc[campo].(map[string]any)
	return child
}

// DocTime interpreta campo de data/hora em RFC3339. Ausência ou valor
// malformado degradam para nil, nunca para erro.
func DocTime(doc Doc, campo string) *time.Time {
	val, ok := doc[campo].(string)
	if !ok || val == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil
	}
	return &t
}

// FormatarNumero devolve representação textual de um valor numérico ou
// textual bruto, usada na síntese de descrições.
func FormatarNumero(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	}
	return ""
}
