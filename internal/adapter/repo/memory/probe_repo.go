package memory

import (
	"context"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

type ProbeRepo struct {
	store *Store
}

func NewProbeRepo(store *Store) ProbeRepo {
	return ProbeRepo{store: store}
}

func (r ProbeRepo) GetByID(_ context.Context, gameID, probeID string) (board.Probe, error) {
	for _, probe := range r.store.probes[gameID] {
		if probe.ID == probeID {
			return probe, nil
		}
	}
	return board.Probe{}, ports.ErrNotFound
}

func (r ProbeRepo) ListByGameID(_ context.Context, gameID string) ([]board.Probe, error) {
	probes := r.store.probes[gameID]
	out := make([]board.Probe, len(probes))
	copy(out, probes)
	return out, nil
}

func (r ProbeRepo) Create(_ context.Context, gameID string, probe board.Probe) error {
	for _, existing := range r.store.probes[gameID] {
		if existing.ID == probe.ID {
			return ports.ErrConflict
		}
	}
	r.store.probes[gameID] = append(r.store.probes[gameID], probe)
	return nil
}

func (r ProbeRepo) UpdatePosition(_ context.Context, gameID, probeID string, pos board.NativePosition) error {
	probes := r.store.probes[gameID]
	for i := range probes {
		if probes[i].ID == probeID {
			probes[i].Position = pos
			return nil
		}
	}
	return ports.ErrNotFound
}
