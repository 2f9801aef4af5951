package bebida

import "context"

// Store abstrai a persistência de documentos brutos de lote.
type Store interface {
	ListRaw(ctx context.Context) ([]RawDoc, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Listar(ctx context.Context) ([]Lote, error) {
	docs, err := s.store.ListRaw(ctx)
	if err != nil {
		return nil, err
	}
	lotes := make([]Lote, 0, len(docs))
	for _, d := range docs {
		lotes = append(lotes, Normalizar(d.ID, d.Doc))
	}
	return lotes, nil
}
