package action

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
	"orrery/internal/domain/movement"
)

// UseCase moves a probe to a destination cell. The core only answers "what is
// reachable at what cost"; whether the spent budget is legal under game rules
// is the caller's concern, so the budget arrives in the request.
type UseCase struct {
	TxManager ports.TxManager
	BoardRepo ports.BoardStateRepository
	ProbeRepo ports.ProbeRepository
	MoveRepo  ports.MoveExecutionRepository
	EventRepo ports.EventRepository
	Catalog   ports.CatalogProvider
	Metrics   ports.GameMetrics
	NewID     func() string
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	req.ProbeID = strings.TrimSpace(req.ProbeID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.GameID == "" || req.ProbeID == "" || req.IdempotencyKey == "" || req.Budget < 0 {
		return Response{}, ErrInvalidRequest
	}
	if err := req.Target.Validate(); err != nil {
		return Response{}, err
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.MoveRepo.GetByIdempotencyKey(txCtx, req.GameID, req.IdempotencyKey)
		if err == nil && exec != nil {
			out = Response{
				Probe:  exec.Result.Probe,
				From:   exec.Result.From,
				To:     exec.Result.To,
				Cost:   exec.Result.Cost,
				Events: exec.Result.Events,
			}
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		state, err := u.BoardRepo.Get(txCtx, req.GameID)
		if err != nil {
			return err
		}
		probe, err := u.ProbeRepo.GetByID(txCtx, req.GameID, req.ProbeID)
		if err != nil {
			return err
		}
		catalog, err := u.Catalog.CatalogForGame(txCtx, req.GameID)
		if err != nil {
			return err
		}

		origin, err := probe.Position.AbsoluteAddress(state.Rotation)
		if err != nil {
			return err
		}
		reachable, err := movement.ReachableFrom(origin, req.Budget, state.Rotation, catalog, req.Modifiers)
		if err != nil {
			return err
		}
		cost, ok := reachable.CostTo(req.Target)
		if !ok {
			if u.Metrics != nil {
				u.Metrics.RecordRejection()
			}
			return &DestinationUnreachableError{Target: req.Target, Budget: req.Budget}
		}

		native, err := board.NativeFromAbsolute(req.Target, state.Rotation)
		if err != nil {
			return err
		}
		if err := u.ProbeRepo.UpdatePosition(txCtx, req.GameID, req.ProbeID, native); err != nil {
			return err
		}
		probe.Position = native

		events := []board.DomainEvent{{
			ID:         newID(),
			Type:       board.EventProbeMoved,
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"probe_id":    probe.ID,
				"owner":       probe.Owner,
				"from_ring":   string(origin.Ring),
				"from_sector": origin.Sector,
				"to_ring":     string(req.Target.Ring),
				"to_sector":   req.Target.Sector,
				"cost":        cost,
			},
		}}
		if err := u.EventRepo.Append(txCtx, req.GameID, events); err != nil {
			return err
		}

		execution := ports.MoveExecutionRecord{
			GameID:         req.GameID,
			ProbeID:        req.ProbeID,
			IdempotencyKey: req.IdempotencyKey,
			Budget:         req.Budget,
			Result: ports.MoveResult{
				Probe:  probe,
				From:   origin,
				To:     req.Target,
				Cost:   cost,
				Events: events,
			},
			AppliedAt: nowFn(),
		}
		if err := u.MoveRepo.SaveExecution(txCtx, execution); err != nil {
			return err
		}

		if u.Metrics != nil {
			u.Metrics.RecordMove(cost)
		}
		out = Response{Probe: probe, From: origin, To: req.Target, Cost: cost, Events: events}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
