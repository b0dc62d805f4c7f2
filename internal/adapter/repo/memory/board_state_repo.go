package memory

import (
	"context"

	"orrery/internal/app/ports"
)

type BoardStateRepo struct {
	store *Store
}

func NewBoardStateRepo(store *Store) BoardStateRepo {
	return BoardStateRepo{store: store}
}

func (r BoardStateRepo) Get(_ context.Context, gameID string) (ports.BoardState, error) {
	state, ok := r.store.boards[gameID]
	if !ok {
		return ports.BoardState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r BoardStateRepo) SaveWithVersion(_ context.Context, state ports.BoardState, expectedVersion int64) error {
	current, ok := r.store.boards[state.GameID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.boards[state.GameID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.boards[state.GameID] = state
	return nil
}
