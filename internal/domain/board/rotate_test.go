package board

import (
	"errors"
	"testing"
)

func TestApplyRotationLevel2Compounds(t *testing.T) {
	b := Board{NextRotationLevel: 2}
	out, err := b.ApplyRotation(2, nil)
	if err != nil {
		t.Fatalf("ApplyRotation error: %v", err)
	}
	if out.New.Angle1 != 315 || out.New.Angle2 != 315 || out.New.Angle3 != 0 {
		t.Fatalf("level-2 rotation must turn rings 1 and 2 by -45: %+v", out.New)
	}
	if out.NextRotationLevel != 3 {
		t.Fatalf("pointer must cycle 2 -> 3, got %d", out.NextRotationLevel)
	}
	if out.Old != (RotationState{}) {
		t.Fatalf("old snapshot must be the pre-rotation state: %+v", out.Old)
	}
}

func TestApplyRotationPointerWrapsAfterLevel3(t *testing.T) {
	out, err := Board{NextRotationLevel: 3}.ApplyRotation(3, nil)
	if err != nil {
		t.Fatalf("ApplyRotation error: %v", err)
	}
	if out.NextRotationLevel != 1 {
		t.Fatalf("pointer must cycle 3 -> 1, got %d", out.NextRotationLevel)
	}
	if out.New.Angle1 != 315 || out.New.Angle2 != 315 || out.New.Angle3 != 315 {
		t.Fatalf("level-3 rotation must turn all rings: %+v", out.New)
	}
}

func TestApplyRotationRejectsBadLevel(t *testing.T) {
	b := Board{Rotation: RotationState{Angle1: 45}, NextRotationLevel: 1}
	for _, level := range []int{0, 4, -1} {
		if _, err := b.ApplyRotation(level, nil); !errors.Is(err, ErrInvalidRotationLevel) {
			t.Fatalf("expected ErrInvalidRotationLevel for %d, got %v", level, err)
		}
	}
	if b.Rotation.Angle1 != 45 {
		t.Fatalf("board must be unchanged after a rejected rotation")
	}
}

func TestApplyRotationEmitsShiftsWithoutTouchingNatives(t *testing.T) {
	probes := []Probe{
		{ID: "p1", Position: NativePosition{Ring: RingLevel1, Sector: 3}},
		{ID: "p2", Position: NativePosition{Ring: RingFixed, Sector: 5}},
	}
	out, err := Board{NextRotationLevel: 1}.ApplyRotation(1, probes)
	if err != nil {
		t.Fatalf("ApplyRotation error: %v", err)
	}
	if len(out.Shifts) != 2 {
		t.Fatalf("expected one shift per probe, got %d", len(out.Shifts))
	}
	if out.Shifts[0].From.Sector != 3 || out.Shifts[0].To.Sector != 4 {
		t.Fatalf("rotating-ring probe shift wrong: %+v", out.Shifts[0])
	}
	if out.Shifts[1].From != out.Shifts[1].To {
		t.Fatalf("fixed-disk probe must not shift: %+v", out.Shifts[1])
	}
	if probes[0].Position.Sector != 3 {
		t.Fatalf("stored native coordinates must never be rewritten")
	}
}
