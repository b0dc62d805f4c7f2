package staticboard

import (
	"context"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

// Provider builds a game's catalog from the printed board plus whatever
// objects have been injected into that game so far.
type Provider struct {
	Extras ports.ExtraObjectRepository
}

func (p Provider) CatalogForGame(ctx context.Context, gameID string) (board.Catalog, error) {
	var extras []board.CelestialObject
	if p.Extras != nil {
		var err error
		extras, err = p.Extras.ListByGameID(ctx, gameID)
		if err != nil {
			return board.Catalog{}, err
		}
	}
	return board.NewCatalog(StandardCatalog(), extras...)
}
