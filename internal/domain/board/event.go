package board

import "time"

// DomainEvent is an append-only record of something that happened on the
// board. The core only produces the data; bonus resolution and scoring
// interpret it upstream.
type DomainEvent struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventProbeLaunched   = "probe_launched"
	EventProbeMoved      = "probe_moved"
	EventRotationApplied = "rotation_applied"
	EventProbeShifted    = "probe_shifted"
	EventObjectInjected  = "object_injected"
)
