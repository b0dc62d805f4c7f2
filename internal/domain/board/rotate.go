package board

import "errors"

var ErrInvalidRotationLevel = errors.New("rotation level outside 1..3")

// Board is the rotating part of the game state: the current rotation snapshot
// and the outer disk's pointer to the level that rotates next.
type Board struct {
	Rotation          RotationState `json:"rotation"`
	NextRotationLevel int           `json:"next_rotation_level"`
}

// ProbeShift is one probe's absolute address before and after a rotation,
// emitted so external bonus resolution can compare the two. The probe's stored
// native coordinates are untouched.
type ProbeShift struct {
	ProbeID string  `json:"probe_id"`
	From    Address `json:"from"`
	To      Address `json:"to"`
}

type RotationOutcome struct {
	Level             int           `json:"level"`
	Old               RotationState `json:"old"`
	New               RotationState `json:"new"`
	NextRotationLevel int           `json:"next_rotation_level"`
	Shifts            []ProbeShift  `json:"shifts"`
}

// ApplyRotation turns rings 1 up to level by -45 degrees simultaneously and
// cycles the next-level pointer 1 -> 2 -> 3 -> 1 from the applied level. Both
// rotation snapshots are fully materialized before any shift is derived, and
// the receiver is never modified: on failure the board is unchanged, on
// success the caller builds the new board from the outcome.
func (b Board) ApplyRotation(level int, probes []Probe) (RotationOutcome, error) {
	if level < 1 || level > 3 {
		return RotationOutcome{}, ErrInvalidRotationLevel
	}
	old := b.Rotation
	next := old.rotated(level)

	shifts := make([]ProbeShift, 0, len(probes))
	for _, probe := range probes {
		from, err := probe.Position.AbsoluteAddress(old)
		if err != nil {
			return RotationOutcome{}, err
		}
		to, err := probe.Position.AbsoluteAddress(next)
		if err != nil {
			return RotationOutcome{}, err
		}
		shifts = append(shifts, ProbeShift{ProbeID: probe.ID, From: from, To: to})
	}

	return RotationOutcome{
		Level:             level,
		Old:               old,
		New:               next,
		NextRotationLevel: level%3 + 1,
		Shifts:            shifts,
	}, nil
}
