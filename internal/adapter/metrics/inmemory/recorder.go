package inmemory

import (
	"strconv"
	"sync"
)

type Snapshot struct {
	MoveTotal       uint64            `json:"move_total"`
	MoveRejected    uint64            `json:"move_rejected"`
	MoveCostTotal   uint64            `json:"move_cost_total"`
	MovesByCost     map[string]uint64 `json:"moves_by_cost"`
	RotationTotal   uint64            `json:"rotation_total"`
	RotationByLevel map[string]uint64 `json:"rotation_by_level"`
}

type Recorder struct {
	mu        sync.Mutex
	moves     uint64
	rejected  uint64
	costTotal uint64
	byCost    map[string]uint64
	rotations uint64
	byLevel   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byCost:  map[string]uint64{},
		byLevel: map[string]uint64{},
	}
}

func (r *Recorder) RecordMove(cost int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves++
	if cost > 0 {
		r.costTotal += uint64(cost)
	}
	r.byCost[strconv.Itoa(cost)]++
}

func (r *Recorder) RecordRotation(level int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rotations++
	r.byLevel[strconv.Itoa(level)]++
}

func (r *Recorder) RecordRejection() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		MoveTotal:       r.moves,
		MoveRejected:    r.rejected,
		MoveCostTotal:   r.costTotal,
		MovesByCost:     make(map[string]uint64, len(r.byCost)),
		RotationTotal:   r.rotations,
		RotationByLevel: make(map[string]uint64, len(r.byLevel)),
	}
	for k, v := range r.byCost {
		out.MovesByCost[k] = v
	}
	for k, v := range r.byLevel {
		out.RotationByLevel[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
