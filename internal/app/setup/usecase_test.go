package setup

import (
	"context"
	"errors"
	"testing"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

type stubBoardRepo struct {
	saved  *ports.BoardState
	expect int64
	err    error
}

func (s *stubBoardRepo) Get(ctx context.Context, gameID string) (ports.BoardState, error) {
	if s.saved == nil {
		return ports.BoardState{}, ports.ErrNotFound
	}
	return *s.saved, nil
}

func (s *stubBoardRepo) SaveWithVersion(ctx context.Context, state ports.BoardState, expectedVersion int64) error {
	if s.err != nil {
		return s.err
	}
	s.saved = &state
	s.expect = expectedVersion
	return nil
}

func TestExecuteCreatesBoardState(t *testing.T) {
	repo := &stubBoardRepo{}
	uc := UseCase{BoardRepo: repo}

	resp, err := uc.Execute(context.Background(), Request{GameID: "g1", Angle1: 315, Angle2: 90})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := board.RotationState{Angle1: 315, Angle2: 90, Angle3: 0}
	if resp.Rotation != want || resp.NextRotationLevel != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if repo.saved == nil || repo.saved.Version != 1 || repo.expect != 0 {
		t.Fatalf("saved = %+v expect = %d", repo.saved, repo.expect)
	}
}

func TestExecuteNormalizesAngles(t *testing.T) {
	repo := &stubBoardRepo{}
	uc := UseCase{BoardRepo: repo}

	resp, err := uc.Execute(context.Background(), Request{GameID: "g1", Angle1: -45, Angle2: 405, Angle3: 720})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := board.RotationState{Angle1: 315, Angle2: 45, Angle3: 0}
	if resp.Rotation != want {
		t.Fatalf("rotation = %+v, want %+v", resp.Rotation, want)
	}
}

func TestExecuteRejectsBadInput(t *testing.T) {
	uc := UseCase{BoardRepo: &stubBoardRepo{}}

	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
	if _, err := uc.Execute(context.Background(), Request{GameID: "g1", Angle1: 30}); !errors.Is(err, board.ErrInvalidAngle) {
		t.Fatalf("err = %v, want ErrInvalidAngle", err)
	}
}

func TestExecutePropagatesConflict(t *testing.T) {
	uc := UseCase{BoardRepo: &stubBoardRepo{err: ports.ErrConflict}}
	if _, err := uc.Execute(context.Background(), Request{GameID: "g1"}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}
