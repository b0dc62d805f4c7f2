package ports

import (
	"context"
	"time"

	"orrery/internal/domain/board"
)

// BoardState is the persisted rotating part of one game's board, guarded by
// an optimistic version.
type BoardState struct {
	GameID            string
	Rotation          board.RotationState
	NextRotationLevel int
	Version           int64
}

type BoardStateRepository interface {
	Get(ctx context.Context, gameID string) (BoardState, error)
	// SaveWithVersion creates the row when expectedVersion is 0, otherwise
	// replaces it only if the stored version matches; ErrConflict when it
	// does not.
	SaveWithVersion(ctx context.Context, state BoardState, expectedVersion int64) error
}

type ProbeRepository interface {
	GetByID(ctx context.Context, gameID, probeID string) (board.Probe, error)
	ListByGameID(ctx context.Context, gameID string) ([]board.Probe, error)
	Create(ctx context.Context, gameID string, probe board.Probe) error
	// UpdatePosition rewrites the stored native triple; this is the only
	// operation that does, and only probe movement calls it.
	UpdatePosition(ctx context.Context, gameID, probeID string, pos board.NativePosition) error
}

// ExtraObjectRepository is the append-only registry for celestial objects
// injected at runtime by game effects; the static catalog is never mutated.
type ExtraObjectRepository interface {
	Append(ctx context.Context, gameID string, obj board.CelestialObject) error
	ListByGameID(ctx context.Context, gameID string) ([]board.CelestialObject, error)
}

type MoveResult struct {
	Probe  board.Probe
	From   board.Address
	To     board.Address
	Cost   int
	Events []board.DomainEvent
}

type MoveExecutionRecord struct {
	GameID         string
	ProbeID        string
	IdempotencyKey string
	Budget         int
	Result         MoveResult
	AppliedAt      time.Time
}

type MoveExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, gameID, key string) (*MoveExecutionRecord, error)
	SaveExecution(ctx context.Context, execution MoveExecutionRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, gameID string, events []board.DomainEvent) error
	// ListByGameID returns events oldest first; limit 0 means no limit.
	ListByGameID(ctx context.Context, gameID string, limit int) ([]board.DomainEvent, error)
}
