package memory

import (
	"context"

	"orrery/internal/domain/board"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, gameID string, events []board.DomainEvent) error {
	r.store.events[gameID] = append(r.store.events[gameID], events...)
	return nil
}

func (r EventRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]board.DomainEvent, error) {
	events := r.store.events[gameID]
	if limit > 0 && limit < len(events) {
		events = events[:limit]
	}
	out := make([]board.DomainEvent, len(events))
	copy(out, events)
	return out, nil
}
