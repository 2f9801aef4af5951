package perfil

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

// RawDoc é um registro bruto da coleção de usuários.
type RawDoc struct {
	UID string
	Doc util.Doc
}

// Repository fornece acesso à coleção de perfis.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListRaw(ctx context.Context) ([]RawDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT uid, doc FROM usuarios`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []RawDoc
	for rows.Next() {
		var uid string
		var payload []byte
		if err := rows.Scan(&uid, &payload); err != nil {
			return nil, err
		}
		doc := util.Doc{}
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, RawDoc{UID: uid, Doc: doc})
	}
	return docs, rows.Err()
}

func (r *Repository) GetRaw(ctx context.Context, uid string) (util.Doc, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM usuarios WHERE uid = $1`, uid).Scan(&payload)
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

func (r *Repository) Put(ctx context.Context, uid string, doc util.Doc) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO usuarios (uid, doc)
		VALUES ($1, $2)
		ON CONFLICT (uid) DO UPDATE SET doc = EXCLUDED.doc
	`, uid, doc)
	return err
}
