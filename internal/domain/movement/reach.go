package movement

import (
	"sort"

	"orrery/internal/domain/board"
)

// Map is the ephemeral result of one reachability query: every address whose
// exact minimal cost from the origin fits the budget, keyed by address.
type Map struct {
	origin board.Address
	costs  map[board.Address]int
}

func (m Map) Origin() board.Address {
	return m.origin
}

func (m Map) CostTo(addr board.Address) (int, bool) {
	cost, ok := m.costs[addr]
	return cost, ok
}

func (m Map) Contains(addr board.Address) bool {
	_, ok := m.costs[addr]
	return ok
}

func (m Map) Len() int {
	return len(m.costs)
}

type ReachableCell struct {
	Address board.Address `json:"address"`
	Cost    int           `json:"cost"`
}

// Cells lists the reachable addresses ordered by cost, then ring (inner
// first), then sector label, so callers get a stable enumeration.
func (m Map) Cells() []ReachableCell {
	out := make([]ReachableCell, 0, len(m.costs))
	for addr, cost := range m.costs {
		out = append(out, ReachableCell{Address: addr, Cost: cost})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		if out[i].Address.Ring != out[j].Address.Ring {
			return out[i].Address.Ring.Level() < out[j].Address.Ring.Level()
		}
		return out[i].Address.Sector < out[j].Address.Sector
	})
	return out
}

// ReachableFrom runs a budgeted shortest-path expansion over the board's
// adjacency graph. Base edge cost is 1; leaving an asteroid-field cell costs
// one more unless waived, floored at 1. Edge weights are 1 or 2, so a bucket
// queue per cost suffices; FIFO order within a bucket plus the same-ring-first
// neighbor order from AdjacentCells keeps the expansion deterministic. The
// result is pure in its inputs and monotonic in the budget.
func ReachableFrom(origin board.Address, budget int, rotation board.RotationState, catalog board.Catalog, mods Modifiers) (Map, error) {
	if err := origin.Validate(); err != nil {
		return Map{}, err
	}
	costs := map[board.Address]int{}
	if budget < 0 {
		return Map{origin: origin, costs: costs}, nil
	}
	costs[origin] = 0

	buckets := make([][]board.Address, budget+1)
	buckets[0] = []board.Address{origin}
	for c := 0; c <= budget; c++ {
		for i := 0; i < len(buckets[c]); i++ {
			cur := buckets[c][i]
			if costs[cur] != c {
				// Superseded by a cheaper path.
				continue
			}
			cell, err := catalog.CellAt(cur, rotation)
			if err != nil {
				return Map{}, err
			}
			exit := 1
			if cell.Terrain.AsteroidField && !mods.IgnoreAsteroidExit {
				exit = 2
			}
			if exit < 1 {
				exit = 1
			}
			next := c + exit
			if next > budget {
				continue
			}
			neighbors, err := board.AdjacentCells(cur)
			if err != nil {
				return Map{}, err
			}
			for _, nb := range neighbors {
				if mods.sameRingBlocked() && nb.Ring == cur.Ring {
					continue
				}
				if known, ok := costs[nb]; ok && known <= next {
					continue
				}
				costs[nb] = next
				buckets[next] = append(buckets[next], nb)
			}
		}
	}
	return Map{origin: origin, costs: costs}, nil
}
