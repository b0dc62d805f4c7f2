package launch

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

var ErrInvalidRequest = errors.New("invalid launch request")

// UseCase places a new probe on the board at an absolute address. The stored
// position is the native triple derived from the current rotation, so later
// rotations move the probe with its ring.
type UseCase struct {
	TxManager ports.TxManager
	BoardRepo ports.BoardStateRepository
	ProbeRepo ports.ProbeRepository
	EventRepo ports.EventRepository
	NewID     func() string
	Now       func() time.Time
}

type Request struct {
	GameID string
	Owner  string
	Target board.Address
}

type Response struct {
	Probe    board.Probe   `json:"probe"`
	Absolute board.Address `json:"absolute"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" || strings.TrimSpace(req.Owner) == "" {
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
		state, err := u.BoardRepo.Get(txCtx, req.GameID)
		if err != nil {
			return err
		}
		native, err := board.NativeFromAbsolute(req.Target, state.Rotation)
		if err != nil {
			return err
		}
		probe := board.Probe{ID: newID(), Owner: req.Owner, Position: native}
		if err := u.ProbeRepo.Create(txCtx, req.GameID, probe); err != nil {
			return err
		}
		event := board.DomainEvent{
			ID:         newID(),
			Type:       board.EventProbeLaunched,
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"probe_id": probe.ID,
				"owner":    probe.Owner,
				"ring":     string(req.Target.Ring),
				"sector":   req.Target.Sector,
			},
		}
		if err := u.EventRepo.Append(txCtx, req.GameID, []board.DomainEvent{event}); err != nil {
			return err
		}
		out = Response{Probe: probe, Absolute: req.Target}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
