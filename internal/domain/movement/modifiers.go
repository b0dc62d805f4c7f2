package movement

// Modifiers is the typed cost-modifier context for one query. The flags are
// named after the game effects that grant them; the engine never reaches into
// player state to discover them.
type Modifiers struct {
	// IgnoreAsteroidExit waives the +1 surcharge for leaving an
	// asteroid-field cell.
	IgnoreAsteroidExit bool `json:"ignore_asteroid_exit,omitempty"`
	// RestrictSameRing marks an active effect that forbids travel along a
	// ring this turn; only cross-ring edges remain.
	RestrictSameRing bool `json:"restrict_same_ring,omitempty"`
	// IgnoreSameRingRestriction waives RestrictSameRing for the acting
	// party.
	IgnoreSameRingRestriction bool `json:"ignore_same_ring_restriction,omitempty"`
}

func (m Modifiers) sameRingBlocked() bool {
	return m.RestrictSameRing && !m.IgnoreSameRingRestriction
}
