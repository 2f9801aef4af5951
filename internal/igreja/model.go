package igreja

import (
	"errors"
	"fmt"
	"time"

	"github.com/registrodaime/api/internal/util"
)

var (
	// ErrValidacao indica registro recusado antes de qualquer escrita.
	ErrValidacao = errors.New("dados inválidos")

	errNotFound = errors.New("igreja não encontrada")
)

// Igreja representa uma casa ou igreja cadastrada.
type Igreja struct {
	ID           string     `json:"id"`
	Nome         string     `json:"nome"`
	Cidade       string     `json:"cidade,omitempty"`
	Estado       string     `json:"estado,omitempty"`
	Pais         string     `json:"pais,omitempty"`
	Linhagem     string     `json:"linhagem,omitempty"`
	Observacoes  string     `json:"observacoes,omitempty"`
	Lat          *float64   `json:"lat,omitempty"`
	Lng          *float64   `json:"lng,omitempty"`
	CriadoEm     *time.Time `json:"createdAt,omitempty"`
	AtualizadoEm *time.Time `json:"updatedAt,omitempty"`
}

// Normalizar converte um documento bruto na forma canônica. Total: campos
// ausentes ou malformados degradam para defaults. Nome vazio cai para o id
// do documento; coordenadas só existem em par.
func Normalizar(id string, raw util.Doc) Igreja {
	ig := Igreja{ID: id}

	ig.Nome = util.DocString(raw, "nome")
	if ig.Nome == "" {
		ig.Nome = id
	}
	ig.Cidade = util.DocString(raw, "cidade")
	ig.Estado = util.DocString(raw, "estado")
	ig.Pais = util.DocString(raw, "pais")
	ig.Linhagem = util.DocString(raw, "linhagem")
	ig.Observacoes = util.DocString(raw, "observacoes")

	lat, okLat := util.DocFloat(raw, "lat")
	lng, okLng := util.DocFloat(raw, "lng")
	if okLat && okLng {
		ig.Lat = &lat
		ig.Lng = &lng
	}

	ig.CriadoEm = util.DocTime(raw, "createdAt")
	ig.AtualizadoEm = util.DocTime(raw, "updatedAt")

	return ig
}

func validarDoc(doc util.Doc) error {
	if err := util.RequireString(util.DocString(doc, "nome"), "nome"); err != nil {
		return fmt.Errorf("%w: %s", ErrValidacao, err.Error())
	}
	_, okLat := util.DocFloat(doc, "lat")
	_, okLng := util.DocFloat(doc, "lng")
	if okLat != okLng {
		return fmt.Errorf("%w: lat e lng devem ser informados juntos", ErrValidacao)
	}
	return nil
}
