package reach

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
	probe board.Probe
}

func (s stubProbeRepo) GetByID(ctx context.Context, gameID, probeID string) (board.Probe, error) {
	if probeID != s.probe.ID {
		return board.Probe{}, ports.ErrNotFound
	}
	return s.probe, nil
}

func (s stubProbeRepo) ListByGameID(ctx context.Context, gameID string) ([]board.Probe, error) {
	return []board.Probe{s.probe}, nil
}

func (s stubProbeRepo) Create(ctx context.Context, gameID string, probe board.Probe) error {
	return nil
}

func (s stubProbeRepo) UpdatePosition(ctx context.Context, gameID, probeID string, pos board.NativePosition) error {
	return nil
}

type stubCatalogProvider struct {
	catalog board.Catalog
}

func (s stubCatalogProvider) CatalogForGame(ctx context.Context, gameID string) (board.Catalog, error) {
	return s.catalog, nil
}

func newTestUseCase(t *testing.T) UseCase {
	t.Helper()
	catalog, err := board.NewCatalog([]board.CelestialObject{
		{ID: "sun", Name: "Sun", Category: board.CategorySun, Ring: board.RingFixed, Sector: 1},
		{ID: "earth", Name: "Earth", Category: board.CategoryEarth, Ring: board.RingFixed, Sector: 5},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return UseCase{
		BoardRepo: stubBoardRepo{state: ports.BoardState{GameID: "g1", NextRotationLevel: 1, Version: 1}},
		ProbeRepo: stubProbeRepo{probe: board.Probe{
			ID:       "p1",
			Position: board.NativePosition{Ring: board.RingFixed, Sector: 5},
		}},
		Catalog: stubCatalogProvider{catalog: catalog},
	}
}

func TestExecuteFromProbe(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), Request{GameID: "g1", ProbeID: "p1", Budget: 1})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Origin != (board.Address{Ring: board.RingFixed, Sector: 5}) {
		t.Fatalf("origin = %+v", resp.Origin)
	}
	// Origin plus its three neighbors on an empty identity-rotation board.
	if len(resp.Cells) != 4 {
		t.Fatalf("cells = %+v", resp.Cells)
	}
	if resp.Cells[0].Cost != 0 || resp.Cells[0].Address != resp.Origin {
		t.Fatalf("first cell = %+v, want origin at cost 0", resp.Cells[0])
	}
}

func TestExecuteFromExplicitOrigin(t *testing.T) {
	uc := newTestUseCase(t)

	origin := board.Address{Ring: board.RingLevel3, Sector: 1}
	resp, err := uc.Execute(context.Background(), Request{GameID: "g1", Origin: &origin, Budget: 0})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(resp.Cells) != 1 || resp.Cells[0].Address != origin {
		t.Fatalf("cells = %+v, want origin only", resp.Cells)
	}
}

func TestExecuteDestinationCheck(t *testing.T) {
	uc := newTestUseCase(t)

	near := board.Address{Ring: board.RingFixed, Sector: 6}
	resp, err := uc.Execute(context.Background(), Request{
		GameID: "g1", ProbeID: "p1", Budget: 1, Destination: &near,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Destination == nil || !resp.Destination.Reachable || resp.Destination.Cost != 1 {
		t.Fatalf("destination = %+v", resp.Destination)
	}

	far := board.Address{Ring: board.RingFixed, Sector: 1}
	resp, err = uc.Execute(context.Background(), Request{
		GameID: "g1", ProbeID: "p1", Budget: 1, Destination: &far,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Destination == nil || resp.Destination.Reachable {
		t.Fatalf("destination = %+v, want unreachable", resp.Destination)
	}
}

func TestExecuteValidatesRequest(t *testing.T) {
	uc := newTestUseCase(t)
	origin := board.Address{Ring: board.RingFixed, Sector: 1}

	cases := []Request{
		{ProbeID: "p1"},
		{GameID: "g1"},
		{GameID: "g1", ProbeID: "p1", Origin: &origin},
	}
	for i, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("case %d: err = %v, want ErrInvalidRequest", i, err)
		}
	}

	bad := board.Address{Ring: "warp", Sector: 1}
	if _, err := uc.Execute(context.Background(), Request{GameID: "g1", Origin: &bad}); !errors.Is(err, board.ErrOutOfBoundsCell) {
		t.Fatalf("err = %v, want ErrOutOfBoundsCell", err)
	}
}
