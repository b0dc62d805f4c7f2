package board

type Ring string

const (
	RingFixed  Ring = "fixed"
	RingLevel1 Ring = "level1"
	RingLevel2 Ring = "level2"
	RingLevel3 Ring = "level3"
)

const SectorsPerRing = 8

var ringOrder = [...]Ring{RingFixed, RingLevel1, RingLevel2, RingLevel3}

func Rings() []Ring {
	out := make([]Ring, len(ringOrder))
	copy(out, ringOrder[:])
	return out
}

func (r Ring) Valid() bool {
	return r.index() >= 0
}

func (r Ring) Rotates() bool {
	return r.Valid() && r != RingFixed
}

// Level is the rotation level of the ring: 0 for the fixed disk, 1..3 for the
// rotating disks, -1 for an unknown ring.
func (r Ring) Level() int {
	return r.index()
}

func RingForLevel(level int) (Ring, bool) {
	if level < 1 || level > 3 {
		return "", false
	}
	return ringOrder[level], true
}

// Inward reports the radially neighboring ring toward the sun, if any.
func (r Ring) Inward() (Ring, bool) {
	i := r.index()
	if i <= 0 {
		return "", false
	}
	return ringOrder[i-1], true
}

// Outward reports the radially neighboring ring away from the sun, if any.
func (r Ring) Outward() (Ring, bool) {
	i := r.index()
	if i < 0 || i == len(ringOrder)-1 {
		return "", false
	}
	return ringOrder[i+1], true
}

func (r Ring) index() int {
	for i, candidate := range ringOrder {
		if candidate == r {
			return i
		}
	}
	return -1
}
