package bebida

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registrodaime/api/internal/util"
)

const dbTimeout = 3 * time.Second

// RawDoc é o documento bruto de um lote.
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

	rows, err := r.db.Query(ctx, `SELECT id, doc FROM bebida_lotes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listar lotes: %w", err)
	}
	defer rows.Close()

	var docs []RawDoc
	for rows.Next() {
		var (
			id  string
			buf []byte
		)
		if err := rows.Scan(&id, &buf); err != nil {
			return nil, fmt.Errorf("ler lote: %w", err)
		}
		var doc util.Doc
		if err := json.Unmarshal(buf, &doc); err != nil {
			return nil, fmt.Errorf("decodificar lote %s: %w", id, err)
		}
		docs = append(docs, RawDoc{ID: id, Doc: doc})
	}
	return docs, rows.Err()
}
