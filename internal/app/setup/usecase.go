package setup

import (
	"context"
	"errors"
	"strings"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

var ErrInvalidRequest = errors.New("invalid setup request")

// UseCase establishes a game's board: the initial (possibly randomized)
// rotation state and the first rotation-level pointer. Called once per game.
type UseCase struct {
	BoardRepo ports.BoardStateRepository
}

type Request struct {
	GameID string
	Angle1 int
	Angle2 int
	Angle3 int
}

type Response struct {
	Rotation          board.RotationState `json:"rotation"`
	NextRotationLevel int                 `json:"next_rotation_level"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	rotation, err := board.NewRotationState(req.Angle1, req.Angle2, req.Angle3)
	if err != nil {
		return Response{}, err
	}
	state := ports.BoardState{
		GameID:            req.GameID,
		Rotation:          rotation,
		NextRotationLevel: 1,
		Version:           1,
	}
	if err := u.BoardRepo.SaveWithVersion(ctx, state, 0); err != nil {
		return Response{}, err
	}
	return Response{Rotation: rotation, NextRotationLevel: state.NextRotationLevel}, nil
}
