package registry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"orrery/internal/app/ports"
	"orrery/internal/domain/board"
)

var ErrInvalidRequest = errors.New("invalid object registry request")

// InjectRequest adds a celestial object to a running game on top of the
// printed board. The address is native to its ring: on a rotating ring the
// object turns with the disk from then on, like everything printed there.
type InjectRequest struct {
	GameID   string         `json:"game_id"`
	Name     string         `json:"name"`
	Category board.Category `json:"category"`
	Ring     board.Ring     `json:"ring"`
	Sector   int            `json:"sector"`
}

type InjectResponse struct {
	Object board.CelestialObject `json:"object"`
}

// ListedObject is a catalog entry with its position resolved against the
// current rotation.
type ListedObject struct {
	Object   board.CelestialObject `json:"object"`
	Position board.ObjectPosition  `json:"position"`
}

type ListResponse struct {
	Objects []ListedObject `json:"objects"`
}

// UseCase manages the per-game object registry: the static catalog plus
// runtime extras.
type UseCase struct {
	TxManager ports.TxManager
	BoardRepo ports.BoardStateRepository
	ExtraRepo ports.ExtraObjectRepository
	EventRepo ports.EventRepository
	Catalog   ports.CatalogProvider
	NewID     func() string
	Now       func() time.Time
}

func (u UseCase) Inject(ctx context.Context, req InjectRequest) (InjectResponse, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	req.Name = strings.TrimSpace(req.Name)
	if req.GameID == "" || req.Name == "" {
		return InjectResponse{}, ErrInvalidRequest
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	obj := board.CelestialObject{
		ID:       newID(),
		Name:     req.Name,
		Category: req.Category,
		Ring:     req.Ring,
		Sector:   req.Sector,
	}
	if err := obj.Validate(); err != nil {
		return InjectResponse{}, err
	}
	if obj.Placeholder() {
		return InjectResponse{}, ErrInvalidRequest
	}

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.BoardRepo.Get(txCtx, req.GameID); err != nil {
			return err
		}
		if err := u.ExtraRepo.Append(txCtx, req.GameID, obj); err != nil {
			return err
		}
		event := board.DomainEvent{
			ID:         newID(),
			Type:       board.EventObjectInjected,
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"object_id": obj.ID,
				"name":      obj.Name,
				"category":  string(obj.Category),
				"ring":      string(obj.Ring),
				"sector":    obj.Sector,
			},
		}
		return u.EventRepo.Append(txCtx, req.GameID, []board.DomainEvent{event})
	})
	if err != nil {
		return InjectResponse{}, err
	}
	return InjectResponse{Object: obj}, nil
}

func (u UseCase) List(ctx context.Context, gameID string) (ListResponse, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return ListResponse{}, ErrInvalidRequest
	}

	state, err := u.BoardRepo.Get(ctx, gameID)
	if err != nil {
		return ListResponse{}, err
	}
	catalog, err := u.Catalog.CatalogForGame(ctx, gameID)
	if err != nil {
		return ListResponse{}, err
	}

	all := catalog.AllObjects()
	listed := make([]ListedObject, 0, len(all))
	for _, obj := range all {
		if obj.Placeholder() {
			continue
		}
		pos, err := catalog.AbsolutePosition(obj, state.Rotation)
		if err != nil {
			return ListResponse{}, err
		}
		listed = append(listed, ListedObject{Object: obj, Position: pos})
	}
	return ListResponse{Objects: listed}, nil
}
