package board

import "errors"

var ErrOutOfBoundsCell = errors.New("cell outside the board")

// The printed sector numbers do not increase with angle. This table is a fact
// of the physical board, not a formula: label 1 sits at slot 0 (0 degrees) and
// the remaining labels run backwards around the disk.
var slotByLabel = map[int]int{
	1: 0,
	8: 1,
	7: 2,
	6: 3,
	5: 4,
	4: 5,
	3: 6,
	2: 7,
}

var labelBySlot = [SectorsPerRing]int{1, 8, 7, 6, 5, 4, 3, 2}

// SlotFromLabel translates a printed sector label (1..8) to its angular slot
// (0..7, slot x 45 degrees).
func SlotFromLabel(label int) (int, error) {
	slot, ok := slotByLabel[label]
	if !ok {
		return 0, ErrOutOfBoundsCell
	}
	return slot, nil
}

// LabelFromSlot translates an angular slot back to the printed label. The slot
// is taken modulo 8 so rotation arithmetic can feed it directly.
func LabelFromSlot(slot int) int {
	return labelBySlot[((slot%SectorsPerRing)+SectorsPerRing)%SectorsPerRing]
}

// NativeAngle is the angle in degrees of a slot in its ring's own frame.
func NativeAngle(slot int) int {
	return ((slot%SectorsPerRing)+SectorsPerRing)%SectorsPerRing * 45
}
