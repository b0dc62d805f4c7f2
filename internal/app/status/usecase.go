package status

import (
	"context"
	"errors"
	"strings"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

var ErrInvalidRequest = errors.New("invalid status request")

type Request struct {
	GameID string `json:"game_id"`
}

type ProbeStatus struct {
	Probe    board.Probe   `json:"probe"`
	Absolute board.Address `json:"absolute"`
}

type Response struct {
	Rotation          board.RotationState `json:"rotation"`
	NextRotationLevel int                 `json:"next_rotation_level"`
	Version           int64               `json:"version"`
	Probes            []ProbeStatus       `json:"probes"`
}

// UseCase reports the current rotating state of one game together with every
// probe's stored native position and its derived absolute address.
type UseCase struct {
	BoardRepo ports.BoardStateRepository
	ProbeRepo ports.ProbeRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	if req.GameID == "" {
		return Response{}, ErrInvalidRequest
	}

	state, err := u.BoardRepo.Get(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}
	probes, err := u.ProbeRepo.ListByGameID(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}

	statuses := make([]ProbeStatus, 0, len(probes))
	for _, probe := range probes {
		abs, err := probe.Position.AbsoluteAddress(state.Rotation)
		if err != nil {
			return Response{}, err
		}
		statuses = append(statuses, ProbeStatus{Probe: probe, Absolute: abs})
	}

	return Response{
		Rotation:          state.Rotation,
		NextRotationLevel: state.NextRotationLevel,
		Version:           state.Version,
		Probes:            statuses,
	}, nil
}
