package status

import (
	"context"
	"errors"
	"testing"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

type stubBoardRepo struct {
	state ports.BoardState
}

func (s stubBoardRepo) Get(ctx context.Context, gameID string) (ports.BoardState, error) {
	if gameID != s.state.GameID {
		return ports.BoardState{}, ports.ErrNotFound
	}
	return s.state, nil
}

func (s stubBoardRepo) SaveWithVersion(ctx context.Context, state ports.BoardState, expectedVersion int64) error {
	return nil
}

type stubProbeRepo struct {
	probes []board.Probe
}

func (s stubProbeRepo) GetByID(ctx context.Context, gameID, probeID string) (board.Probe, error) {
	return board.Probe{}, ports.ErrNotFound
}

func (s stubProbeRepo) ListByGameID(ctx context.Context, gameID string) ([]board.Probe, error) {
	return s.probes, nil
}

func (s stubProbeRepo) Create(ctx context.Context, gameID string, probe board.Probe) error {
	return nil
}

func (s stubProbeRepo) UpdatePosition(ctx context.Context, gameID, probeID string, pos board.NativePosition) error {
	return nil
}

func TestExecuteReportsRotationAndProbes(t *testing.T) {
	rotation, err := board.NewRotationState(315, 0, 0)
	if err != nil {
		t.Fatalf("NewRotationState: %v", err)
	}
	uc := UseCase{
		BoardRepo: stubBoardRepo{state: ports.BoardState{
			GameID:            "g1",
			Rotation:          rotation,
			NextRotationLevel: 2,
			Version:           7,
		}},
		ProbeRepo: stubProbeRepo{probes: []board.Probe{
			{ID: "p1", Position: board.NativePosition{Ring: board.RingLevel1, Sector: 3}},
		}},
	}

	resp, err := uc.Execute(context.Background(), Request{GameID: "g1"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.NextRotationLevel != 2 || resp.Version != 7 {
		t.Fatalf("resp = %+v", resp)
	}
	if len(resp.Probes) != 1 {
		t.Fatalf("probes = %+v", resp.Probes)
	}
	got := resp.Probes[0]
	if got.Probe.Position.Sector != 3 {
		t.Fatalf("native sector = %d, want 3 untouched", got.Probe.Position.Sector)
	}
	if got.Absolute != (board.Address{Ring: board.RingLevel1, Sector: 4}) {
		t.Fatalf("absolute = %+v, want label 4 after one turn", got.Absolute)
	}
}

func TestExecuteValidatesRequest(t *testing.T) {
	uc := UseCase{BoardRepo: stubBoardRepo{}, ProbeRepo: stubProbeRepo{}}
	if _, err := uc.Execute(context.Background(), Request{GameID: "  "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
	if _, err := uc.Execute(context.Background(), Request{GameID: "missing"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
