package memory

import (
	"sync"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

// Store backs every in-memory repository; the TxManager's lock makes a group
// of repository calls atomic the way a database transaction would.
type Store struct {
	mu         sync.RWMutex
	boards     map[string]ports.BoardState
	probes     map[string][]board.Probe
	extras     map[string][]board.CelestialObject
	executions map[string]ports.MoveExecutionRecord
	events     map[string][]board.DomainEvent
}

func NewStore() *Store {
	return &Store{
		boards:     make(map[string]ports.BoardState),
		probes:     make(map[string][]board.Probe),
		extras:     make(map[string][]board.CelestialObject),
		executions: make(map[string]ports.MoveExecutionRecord),
		events:     make(map[string][]board.DomainEvent),
	}
}

func execKey(gameID, key string) string {
	return gameID + "::" + key
}
