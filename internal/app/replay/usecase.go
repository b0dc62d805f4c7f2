package replay

import (
	"context"
	"errors"
	"strings"
	"time"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Request fetches a game's event history, oldest first. The time bounds are
// inclusive on From and exclusive on To.
type Request struct {
	GameID string     `json:"game_id"`
	Limit  int        `json:"limit"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

type Response struct {
	Events []board.DomainEvent `json:"events"`
}

type UseCase struct {
	EventRepo ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	if req.GameID == "" || req.Limit < 0 || req.Limit > maxLimit {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	// Time filtering happens here rather than in the repository so both the
	// gorm and the in-memory implementations stay a plain append log. Fetch
	// unbounded when a window is set, then trim.
	fetch := limit
	if req.From != nil || req.To != nil {
		fetch = 0
	}
	events, err := u.EventRepo.ListByGameID(ctx, req.GameID, fetch)
	if err != nil {
		return Response{}, err
	}

	out := make([]board.DomainEvent, 0, len(events))
	for _, ev := range events {
		if req.From != nil && ev.OccurredAt.Before(*req.From) {
			continue
		}
		if req.To != nil && !ev.OccurredAt.Before(*req.To) {
			continue
		}
		out = append(out, ev)
		if len(out) == limit {
			break
		}
	}
	return Response{Events: out}, nil
}
