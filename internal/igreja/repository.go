package igreja

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registrodaime/api/internal/util"
)

const dbTimeout = 3 * time.Second

// RawDoc é um registro bruto da coleção, como armazenado.
type RawDoc struct {
	ID  string
	Doc util.Doc
}

// Repository fornece acesso à coleção de igrejas.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListRaw(ctx context.Context) ([]RawDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, doc FROM igrejas`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []RawDoc
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		doc := util.Doc{}
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, RawDoc{ID: id, Doc: doc})
	}
	return docs, rows.Err()
}

func (r *Repository) GetRaw(ctx context.Context, id string) (util.Doc, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM igrejas WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}

	doc := util.Doc{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *Repository) Put(ctx context.Context, id string, doc util.Doc) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO igrejas (id, doc)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`, id, doc)
	return err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM igrejas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}
