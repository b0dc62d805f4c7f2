package board

import (
	"errors"
	"testing"
)

func TestSlotLabelRoundTrip(t *testing.T) {
	for label := 1; label <= 8; label++ {
		slot, err := SlotFromLabel(label)
		if err != nil {
			t.Fatalf("SlotFromLabel(%d) error: %v", label, err)
		}
		if got := LabelFromSlot(slot); got != label {
			t.Fatalf("round trip for label %d: slot %d back to %d", label, slot, got)
		}
	}
}

func TestSlotFromLabelMatchesBoardPrint(t *testing.T) {
	want := map[int]int{1: 0, 8: 1, 7: 2, 6: 3, 5: 4, 4: 5, 3: 6, 2: 7}
	for label, slot := range want {
		got, err := SlotFromLabel(label)
		if err != nil {
			t.Fatalf("SlotFromLabel(%d) error: %v", label, err)
		}
		if got != slot {
			t.Fatalf("label %d: expected slot %d, got %d", label, slot, got)
		}
	}
}

func TestSlotFromLabelRejectsUnprintedLabels(t *testing.T) {
	for _, label := range []int{0, 9, -1, 100} {
		if _, err := SlotFromLabel(label); !errors.Is(err, ErrOutOfBoundsCell) {
			t.Fatalf("expected ErrOutOfBoundsCell for label %d, got %v", label, err)
		}
	}
}

func TestLabelFromSlotWrapsNegativeSlots(t *testing.T) {
	if got := LabelFromSlot(-1); got != 2 {
		t.Fatalf("slot -1 should wrap to slot 7 (label 2), got %d", got)
	}
	if got := LabelFromSlot(13); got != 4 {
		t.Fatalf("slot 13 should wrap to slot 5 (label 4), got %d", got)
	}
}

func TestNativeAngle(t *testing.T) {
	slot, _ := SlotFromLabel(3)
	if got := NativeAngle(slot); got != 270 {
		t.Fatalf("label 3 sits at 270 degrees, got %d", got)
	}
}
