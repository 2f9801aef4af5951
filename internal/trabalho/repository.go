package trabalho

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registrodaime/api/internal/util"
)

const dbTimeout = 3 * time.Second

// RawDoc é o documento bruto de um trabalho, sem normalização.
type RawDoc struct {
	ID  string
	Doc util.Doc
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListRaw(ctx context.Context) ([]RawDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, doc FROM trabalhos ORDER BY doc->>'data' DESC NULLS LAST, id`)
	if err != nil {
		return nil, fmt.Errorf("listar trabalhos: %w", err)
	}
	defer rows.Close()

	var docs []RawDoc
	for rows.Next() {
		var (
			id  string
			buf []byte
		)
		if err := rows.Scan(&id, &buf); err != nil {
			return nil, fmt.Errorf("ler trabalho: %w", err)
		}
		var doc util.Doc
		if err := json.Unmarshal(buf, &doc); err != nil {
			return nil, fmt.Errorf("decodificar trabalho %s: %w", id, err)
		}
		docs = append(docs, RawDoc{ID: id, Doc: doc})
	}
	return docs, rows.Err()
}

func (r *Repository) GetRaw(ctx context.Context, id string) (util.Doc, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var buf []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM trabalhos WHERE id = $1`, id).Scan(&buf)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errNotFound
		}
		return nil, fmt.Errorf("buscar trabalho: %w", err)
	}
	var doc util.Doc
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("decodificar trabalho %s: %w", id, err)
	}
	return doc, nil
}

func (r *Repository) Put(ctx context.Context, id string, doc util.Doc) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `
        INSERT INTO trabalhos (id, doc) VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`,
		id, doc)
	if err != nil {
		return fmt.Errorf("gravar trabalho: %w", err)
	}
	return nil
}
