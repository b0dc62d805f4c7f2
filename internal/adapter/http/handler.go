package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"orrery/internal/app/action"
	"orrery/internal/app/launch"
	"orrery/internal/app/observe"
	"orrery/internal/app/ports"
	"orrery/internal/app/reach"
	"orrery/internal/app/registry"
	"orrery/internal/app/replay"
	"orrery/internal/app/rotation"
	"orrery/internal/app/setup"
	"orrery/internal/app/status"
	"orrery/internal/domain/board"
	"orrery/internal/domain/movement"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
)

const gameIDHeader = "X-Game-ID"

type Handler struct {
	SetupUC    setup.UseCase
	LaunchUC   launch.UseCase
	ObserveUC  observe.UseCase
	MoveUC     action.UseCase
	RotationUC rotation.UseCase
	ReachUC    reach.UseCase
	StatusUC   status.UseCase
	ReplayUC   replay.UseCase
	RegistryUC registry.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	game := s.Group("/api/game")
	game.POST("/new", h.newGame)
	game.POST("/probes", h.launchProbe)
	game.POST("/observe", h.observe)
	game.POST("/move", h.move)
	game.POST("/rotate", h.rotate)
	game.POST("/reachable", h.reachable)
	game.GET("/status", h.status)
	game.GET("/replay", h.replay)

	objects := s.Group("/api/board")
	objects.GET("/objects", h.listObjects)
	objects.POST("/objects", h.injectObject)

	s.GET("/ops/kpi", h.kpi)
}

type newGameRequest struct {
	Angle1 int `json:"angle1"`
	Angle2 int `json:"angle2"`
	Angle3 int `json:"angle3"`
}

type newGameResponse struct {
	GameID            string              `json:"game_id"`
	Rotation          board.RotationState `json:"rotation"`
	NextRotationLevel int                 `json:"next_rotation_level"`
}

func (h Handler) newGame(c context.Context, ctx *app.RequestContext) {
	var body newGameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	gameID := uuid.NewString()
	resp, err := h.SetupUC.Execute(c, setup.Request{
		GameID: gameID,
		Angle1: body.Angle1,
		Angle2: body.Angle2,
		Angle3: body.Angle3,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, newGameResponse{
		GameID:            gameID,
		Rotation:          resp.Rotation,
		NextRotationLevel: resp.NextRotationLevel,
	})
}

type launchRequest struct {
	Owner  string        `json:"owner"`
	Target board.Address `json:"target"`
}

func (h Handler) launchProbe(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body launchRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.LaunchUC.Execute(c, launch.Request{
		GameID: gameID,
		Owner:  body.Owner,
		Target: body.Target,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

type observeRequest struct {
	ProbeID string `json:"probe_id"`
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body observeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ObserveUC.Execute(c, observe.Request{GameID: gameID, ProbeID: body.ProbeID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type moveRequest struct {
	ProbeID        string        `json:"probe_id"`
	IdempotencyKey string        `json:"idempotency_key"`
	Target         board.Address `json:"target"`
	Budget         int           `json:"budget"`
	Modifiers      moveModifiers `json:"modifiers"`
}

type moveModifiers struct {
	IgnoreAsteroidExit        bool `json:"ignore_asteroid_exit,omitempty"`
	RestrictSameRing          bool `json:"restrict_same_ring,omitempty"`
	IgnoreSameRingRestriction bool `json:"ignore_same_ring_restriction,omitempty"`
}

func (h Handler) move(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body moveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.MoveUC.Execute(c, action.Request{
		GameID:         gameID,
		ProbeID:        body.ProbeID,
		IdempotencyKey: body.IdempotencyKey,
		Target:         body.Target,
		Budget:         body.Budget,
		Modifiers:      body.Modifiers.toDomain(),
	})
	if err != nil {
		if writeMoveRejectedFromErr(ctx, err) {
			return
		}
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type rotateRequest struct {
	Level int `json:"level"`
}

func (h Handler) rotate(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body rotateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.RotationUC.Execute(c, rotation.Request{GameID: gameID, Level: body.Level})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type reachableRequest struct {
	ProbeID     string         `json:"probe_id,omitempty"`
	Origin      *board.Address `json:"origin,omitempty"`
	Budget      int            `json:"budget"`
	Modifiers   moveModifiers  `json:"modifiers"`
	Destination *board.Address `json:"destination,omitempty"`
}

func (h Handler) reachable(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body reachableRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ReachUC.Execute(c, reach.Request{
		GameID:      gameID,
		ProbeID:     body.ProbeID,
		Origin:      body.Origin,
		Budget:      body.Budget,
		Modifiers:   body.Modifiers.toDomain(),
		Destination: body.Destination,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.StatusUC.Execute(c, status.Request{GameID: gameID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	req := replay.Request{GameID: gameID, Limit: limit}
	if from, err := parseQueryTime(ctx, "occurred_from"); err == nil && from != nil {
		req.From = from
	}
	if to, err := parseQueryTime(ctx, "occurred_to"); err == nil && to != nil {
		req.To = to
	}

	resp, err := h.ReplayUC.Execute(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listObjects(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.RegistryUC.List(c, gameID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type injectObjectRequest struct {
	Name     string         `json:"name"`
	Category board.Category `json:"category"`
	Ring     board.Ring     `json:"ring"`
	Sector   int            `json:"sector"`
}

func (h Handler) injectObject(c context.Context, ctx *app.RequestContext) {
	gameID, err := requireGameID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body injectObjectRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.RegistryUC.Inject(c, registry.InjectRequest{
		GameID:   gameID,
		Name:     body.Name,
		Category: body.Category,
		Ring:     body.Ring,
		Sector:   body.Sector,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func parseQueryTime(ctx *app.RequestContext, key string) (*time.Time, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return nil, nil
	}
	if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
		t := time.Unix(unix, 0).UTC()
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (m moveModifiers) toDomain() movement.Modifiers {
	return movement.Modifiers{
		IgnoreAsteroidExit:        m.IgnoreAsteroidExit,
		RestrictSameRing:          m.RestrictSameRing,
		IgnoreSameRingRestriction: m.IgnoreSameRingRestriction,
	}
}

var ErrMissingGameIDHeader = errors.New("missing x-game-id header")

func requireGameID(ctx *app.RequestContext) (string, error) {
	gameID := strings.TrimSpace(string(ctx.GetHeader(gameIDHeader)))
	if gameID == "" {
		return "", ErrMissingGameIDHeader
	}
	return gameID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingGameIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_game_id", err.Error())
	case errors.Is(err, board.ErrInvalidAngle):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_angle", err.Error())
	case errors.Is(err, board.ErrInvalidRotationLevel):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_rotation_level", err.Error())
	case errors.Is(err, board.ErrOutOfBoundsCell):
		writeErrorBody(ctx, consts.StatusBadRequest, "out_of_bounds_cell", err.Error())
	case errors.Is(err, board.ErrInvalidObject):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_object", err.Error())
	case errors.Is(err, action.ErrDestinationUnreachable):
		writeErrorBody(ctx, consts.StatusConflict, "destination_unreachable", err.Error())
	case errors.Is(err, setup.ErrInvalidRequest),
		errors.Is(err, launch.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, rotation.ErrInvalidRequest),
		errors.Is(err, reach.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, registry.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeMoveRejectedFromErr(ctx *app.RequestContext, err error) bool {
	var unreachable *action.DestinationUnreachableError
	if errors.As(err, &unreachable) && unreachable != nil {
		ctx.JSON(consts.StatusConflict, map[string]any{
			"error": map[string]any{
				"code":    "destination_unreachable",
				"message": err.Error(),
				"details": map[string]any{
					"target": unreachable.Target,
					"budget": unreachable.Budget,
				},
			},
		})
		return true
	}
	return false
}
