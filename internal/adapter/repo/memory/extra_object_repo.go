package memory

import (
	"context"

	"orrery/internal/domain/board"
)

type ExtraObjectRepo struct {
	store *Store
}

func NewExtraObjectRepo(store *Store) ExtraObjectRepo {
	return ExtraObjectRepo{store: store}
}

func (r ExtraObjectRepo) Append(_ context.Context, gameID string, obj board.CelestialObject) error {
	r.store.extras[gameID] = append(r.store.extras[gameID], obj)
	return nil
}

func (r ExtraObjectRepo) ListByGameID(_ context.Context, gameID string) ([]board.CelestialObject, error) {
	extras := r.store.extras[gameID]
	out := make([]board.CelestialObject, len(extras))
	copy(out, extras)
	return out, nil
}
