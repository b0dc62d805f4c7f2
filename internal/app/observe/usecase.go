package observe

import (
	"context"
	"errors"
	"strings"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type UseCase struct {
	BoardRepo ports.BoardStateRepository
	ProbeRepo ports.ProbeRepository
	Catalog   ports.CatalogProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" || strings.TrimSpace(req.ProbeID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.BoardRepo.Get(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}
	probe, err := u.ProbeRepo.GetByID(ctx, req.GameID, req.ProbeID)
	if err != nil {
		return Response{}, err
	}
	catalog, err := u.Catalog.CatalogForGame(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}

	address, err := probe.Position.AbsoluteAddress(state.Rotation)
	if err != nil {
		return Response{}, err
	}
	cell, err := catalog.CellAt(address, state.Rotation)
	if err != nil {
		return Response{}, err
	}
	neighbors, err := board.AdjacentCells(address)
	if err != nil {
		return Response{}, err
	}
	adjacent := make([]board.Cell, 0, len(neighbors))
	for _, nb := range neighbors {
		nbCell, err := catalog.CellAt(nb, state.Rotation)
		if err != nil {
			return Response{}, err
		}
		adjacent = append(adjacent, nbCell)
	}

	objects := []ObservedObject{}
	for _, obj := range catalog.AllObjects() {
		if obj.Placeholder() {
			continue
		}
		pos, err := catalog.AbsolutePosition(obj, state.Rotation)
		if err != nil {
			return Response{}, err
		}
		objects = append(objects, ObservedObject{
			ID:       obj.ID,
			Name:     obj.Name,
			Category: obj.Category,
			Position: pos,
		})
	}

	return Response{
		Probe:    probe,
		Rotation: state.Rotation,
		Address:  address,
		Cell:     cell,
		Adjacent: adjacent,
		Objects:  objects,
	}, nil
}
