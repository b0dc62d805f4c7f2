package board

import "errors"

var ErrInvalidAngle = errors.New("rotation angle is not a multiple of 45 degrees")

// RotationState is the snapshot of the three rotating rings' angles in
// degrees, normalized to [0,360). It is a value: rotations produce a fresh
// state and never mutate an existing one.
type RotationState struct {
	Angle1 int `json:"angle1"`
	Angle2 int `json:"angle2"`
	Angle3 int `json:"angle3"`
}

func NewRotationState(a1, a2, a3 int) (RotationState, error) {
	angles := [3]int{normalizeAngle(a1), normalizeAngle(a2), normalizeAngle(a3)}
	for _, a := range angles {
		if a%45 != 0 {
			return RotationState{}, ErrInvalidAngle
		}
	}
	return RotationState{Angle1: angles[0], Angle2: angles[1], Angle3: angles[2]}, nil
}

// AngleForRing is the current angle of the ring; the fixed disk is always 0.
func (s RotationState) AngleForRing(r Ring) int {
	switch r {
	case RingLevel1:
		return s.Angle1
	case RingLevel2:
		return s.Angle2
	case RingLevel3:
		return s.Angle3
	default:
		return 0
	}
}

// stepsForRing is the ring's angle expressed in 45-degree slots.
func (s RotationState) stepsForRing(r Ring) int {
	return s.AngleForRing(r) / 45
}

// rotated turns rings 1 up to level by -45 degrees simultaneously. Callers
// validate the level; see Board.ApplyRotation.
func (s RotationState) rotated(level int) RotationState {
	out := s
	if level >= 1 {
		out.Angle1 = normalizeAngle(out.Angle1 - 45)
	}
	if level >= 2 {
		out.Angle2 = normalizeAngle(out.Angle2 - 45)
	}
	if level >= 3 {
		out.Angle3 = normalizeAngle(out.Angle3 - 45)
	}
	return out
}

func normalizeAngle(a int) int {
	return ((a % 360) + 360) % 360
}
