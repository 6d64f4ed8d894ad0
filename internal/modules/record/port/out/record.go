package out

import (
	"context"

	"pombar/internal/modules/record/domain"
)

// Store persists the record file as a whole: one full load and one full
// overwrite per update, never partial writes.
type Store interface {
	EnsureExists(ctx context.Context) error
	Load(ctx context.Context) (domain.Store, error)
	Save(ctx context.Context, store domain.Store) error
	Raw(ctx context.Context) (string, error)
}
