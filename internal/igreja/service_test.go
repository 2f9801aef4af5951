package igreja

import (
	"context"
	"errors"
	"testing"

	"github.com/registrodaime/api/internal/util"
)

type stubStore struct {
	docs    map[string]util.Doc
	deleted []string
}

func newStubStore() *stubStore {
	return &stubStore{docs: map[string]util.Doc{}}
}

func (s *stubStore) ListRaw(ctx context.Context) ([]RawDoc, error) {
	var out []RawDoc
	for id, doc := range s.docs {
		out = append(out, RawDoc{ID: id, Doc: doc})
	}
	return out, nil
}

func (s *stubStore) GetRaw(ctx context.Context, id string) (util.Doc, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, errNotFound
	}
	return doc, nil
}

func (s *stubStore) Put(ctx context.Context, id string, doc util.Doc) error {
	s.docs[id] = doc
	return nil
}

func (s *stubStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.docs[id]; !ok {
		return errNotFound
	}
	delete(s.docs, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func TestCriarIgreja(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)

	lat, lng := -8.16, -66.84
	ig, err := svc.Criar(context.Background(), CriarInput{
		Nome: "Céu do Mapiá", Cidade: "Pauini", Estado: "AM", Pais: "Brasil",
		Lat: &lat, Lng: &lng,
	})
	if err != nil {
		t.Fatalf("Criar: %v", err)
	}
	if ig.ID == "" {
		t.Fatal("id não gerado")
	}
	if ig.Lat == nil || *ig.Lat != lat {
		t.Fatalf("lat = %v", ig.Lat)
	}
	if ig.CriadoEm == nil || ig.AtualizadoEm == nil {
		t.Fatal("timestamps ausentes")
	}
}

func TestCriarIgrejaSemNome(t *testing.T) {
	svc := NewService(newStubStore())

	_, err := svc.Criar(context.Background(), CriarInput{Nome: "   "})
	if !errors.Is(err, ErrValidacao) {
		t.Fatalf("err = %v, want ErrValidacao", err)
	}
}

func TestCriarIgrejaCoordenadaIncompleta(t *testing.T) {
	svc := NewService(newStubStore())

	lat := -8.16
	_, err := svc.Criar(context.Background(), CriarInput{Nome: "Céu do Mapiá", Lat: &lat})
	if !errors.Is(err, ErrValidacao) {
		t.Fatalf("err = %v, want ErrValidacao", err)
	}
}

func TestAtualizarIgrejaDescartaCamposDesconhecidos(t *testing.T) {
	store := newStubStore()
	store.docs["c1"] = util.Doc{"nome": "Céu do Mapiá", "createdAt": "2020-01-01T00:00:00Z"}
	svc := NewService(store)

	_, err := svc.Atualizar(context.Background(), "c1", util.Doc{
		"cidade":    "Pauini",
		"id":        "c2",
		"createdAt": "1999-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("Atualizar: %v", err)
	}

	doc := store.docs["c1"]
	if doc["cidade"] != "Pauini" {
		t.Fatalf("cidade = %v", doc["cidade"])
	}
	if doc["createdAt"] != "2020-01-01T00:00:00Z" {
		t.Fatal("createdAt não pode ser sobrescrito por patch")
	}
	if _, ok := doc["id"]; ok {
		t.Fatal("campo desconhecido deveria ser descartado")
	}
}

func TestAtualizarIgrejaValidaEstadoResultante(t *testing.T) {
	store := newStubStore()
	store.docs["c1"] = util.Doc{"nome": "Céu do Mapiá"}
	svc := NewService(store)

	// remover o nome por patch deixa o documento inválido
	_, err := svc.Atualizar(context.Background(), "c1", util.Doc{"nome": nil})
	if !errors.Is(err, ErrValidacao) {
		t.Fatalf("err = %v, want ErrValidacao", err)
	}
	if _, ok := store.docs["c1"]["nome"]; !ok {
		t.Fatal("documento não pode ser gravado quando a validação falha")
	}
}

func TestRemoverIgrejaInexistente(t *testing.T) {
	svc := NewService(newStubStore())

	err := svc.Remover(context.Background(), "nao-existe")
	if !errors.Is(err, errNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestNormalizarNomeCaiParaID(t *testing.T) {
	ig := Normalizar("c1", util.Doc{})
	if ig.Nome != "c1" {
		t.Fatalf("nome = %q, want id como fallback", ig.Nome)
	}
}
