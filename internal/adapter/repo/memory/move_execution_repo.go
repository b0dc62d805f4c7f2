package memory

import (
	"context"

	"orrery/internal/app/ports"
)

type MoveExecutionRepo struct {
	store *Store
}

func NewMoveExecutionRepo(store *Store) MoveExecutionRepo {
	return MoveExecutionRepo{store: store}
}

func (r MoveExecutionRepo) GetByIdempotencyKey(_ context.Context, gameID, key string) (*ports.MoveExecutionRecord, error) {
	rec, ok := r.store.executions[execKey(gameID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := rec
	return &out, nil
}

func (r MoveExecutionRepo) SaveExecution(_ context.Context, execution ports.MoveExecutionRecord) error {
	k := execKey(execution.GameID, execution.IdempotencyKey)
	if _, exists := r.store.executions[k]; exists {
		return ports.ErrConflict
	}
	r.store.executions[k] = execution
	return nil
}
