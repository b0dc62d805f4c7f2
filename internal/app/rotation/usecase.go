package rotation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

var ErrInvalidRequest = errors.New("invalid rotation request")

// Request triggers a rotation event. Level 0 means "whatever the outer disk
// points at"; an explicit 1..3 overrides the pointer for scripted events.
type Request struct {
	GameID string `json:"game_id"`
	Level  int    `json:"level"`
}

type Response struct {
	Outcome board.RotationOutcome `json:"outcome"`
	Version int64                 `json:"version"`
}

// UseCase applies one rotation event inside a transaction. Concurrent events
// on the same game are serialized by the board state's optimistic version.
type UseCase struct {
	TxManager ports.TxManager
	BoardRepo ports.BoardStateRepository
	ProbeRepo ports.ProbeRepository
	EventRepo ports.EventRepository
	Metrics   ports.GameMetrics
	NewID     func() string
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	// Out-of-range positive levels are left to the board so callers see
	// ErrInvalidRotationLevel rather than a generic request error.
	if req.GameID == "" || req.Level < 0 {
		return Response{}, ErrInvalidRequest
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
		probes, err := u.ProbeRepo.ListByGameID(txCtx, req.GameID)
		if err != nil {
			return err
		}

		level := req.Level
		if level == 0 {
			level = state.NextRotationLevel
		}
		b := board.Board{Rotation: state.Rotation, NextRotationLevel: state.NextRotationLevel}
		outcome, err := b.ApplyRotation(level, probes)
		if err != nil {
			return err
		}

		next := ports.BoardState{
			GameID:            state.GameID,
			Rotation:          outcome.New,
			NextRotationLevel: outcome.NextRotationLevel,
			Version:           state.Version + 1,
		}
		if err := u.BoardRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}

		now := nowFn()
		events := make([]board.DomainEvent, 0, 1+len(outcome.Shifts))
		events = append(events, board.DomainEvent{
			ID:         newID(),
			Type:       board.EventRotationApplied,
			OccurredAt: now,
			Payload: map[string]any{
				"level":               outcome.Level,
				"old":                 outcome.Old,
				"new":                 outcome.New,
				"next_rotation_level": outcome.NextRotationLevel,
			},
		})
		for _, shift := range outcome.Shifts {
			if shift.From == shift.To {
				continue
			}
			events = append(events, board.DomainEvent{
				ID:         newID(),
				Type:       board.EventProbeShifted,
				OccurredAt: now,
				Payload: map[string]any{
					"probe_id":    shift.ProbeID,
					"from_ring":   string(shift.From.Ring),
					"from_sector": shift.From.Sector,
					"to_ring":     string(shift.To.Ring),
					"to_sector":   shift.To.Sector,
				},
			})
		}
		if err := u.EventRepo.Append(txCtx, req.GameID, events); err != nil {
			return err
		}

		if u.Metrics != nil {
			u.Metrics.RecordRotation(outcome.Level)
		}
		out = Response{Outcome: outcome, Version: next.Version}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
