package reach

import (
	"context"
	"errors"
	"strings"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
	"orrery/internal/domain/movement"
)

var ErrInvalidRequest = errors.New("invalid reachability request")

// Request asks which cells a budget can buy. The origin is either a probe's
// current cell (ProbeID) or an arbitrary absolute address (Origin), for
// what-if queries before a probe is even launched.
type Request struct {
	GameID      string             `json:"game_id"`
	ProbeID     string             `json:"probe_id,omitempty"`
	Origin      *board.Address     `json:"origin,omitempty"`
	Budget      int                `json:"budget"`
	Modifiers   movement.Modifiers `json:"modifiers"`
	Destination *board.Address     `json:"destination,omitempty"`
}

// DestinationCheck reports whether the requested destination is in the set,
// and at what cost when it is.
type DestinationCheck struct {
	Address   board.Address `json:"address"`
	Reachable bool          `json:"reachable"`
	Cost      int           `json:"cost,omitempty"`
}

type Response struct {
	Origin      board.Address            `json:"origin"`
	Budget      int                      `json:"budget"`
	Rotation    board.RotationState      `json:"rotation"`
	Cells       []movement.ReachableCell `json:"cells"`
	Destination *DestinationCheck        `json:"destination,omitempty"`
}

type UseCase struct {
	BoardRepo ports.BoardStateRepository
	ProbeRepo ports.ProbeRepository
	Catalog   ports.CatalogProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	req.ProbeID = strings.TrimSpace(req.ProbeID)
	if req.GameID == "" {
		return Response{}, ErrInvalidRequest
	}
	if (req.ProbeID == "") == (req.Origin == nil) {
		return Response{}, ErrInvalidRequest
	}

	state, err := u.BoardRepo.Get(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}

	var origin board.Address
	if req.Origin != nil {
		origin = *req.Origin
	} else {
		probe, err := u.ProbeRepo.GetByID(ctx, req.GameID, req.ProbeID)
		if err != nil {
			return Response{}, err
		}
		origin, err = probe.Position.AbsoluteAddress(state.Rotation)
		if err != nil {
			return Response{}, err
		}
	}

	catalog, err := u.Catalog.CatalogForGame(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}
	reachable, err := movement.ReachableFrom(origin, req.Budget, state.Rotation, catalog, req.Modifiers)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		Origin:   origin,
		Budget:   req.Budget,
		Rotation: state.Rotation,
		Cells:    reachable.Cells(),
	}
	if req.Destination != nil {
		if err := req.Destination.Validate(); err != nil {
			return Response{}, err
		}
		check := DestinationCheck{Address: *req.Destination}
		check.Cost, check.Reachable = reachable.CostTo(*req.Destination)
		resp.Destination = &check
	}
	return resp, nil
}
