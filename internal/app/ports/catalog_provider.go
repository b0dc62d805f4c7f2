package ports

import (
	"context"

	"orrery/internal/domain/board"
)

// CatalogProvider assembles the full object catalog for a game: the printed
// board plus any extras injected so far.
type CatalogProvider interface {
	CatalogForGame(ctx context.Context, gameID string) (board.Catalog, error)
}
