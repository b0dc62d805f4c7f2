package gormrepo

import (
	"context"
	"errors"
	"time"

	"orrery/internal/adapter/repo/gorm/model"
	"orrery/internal/app/ports"
	"orrery/internal/domain/board"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProbeRepo struct {
	db *gorm.DB
}

func NewProbeRepo(db *gorm.DB) ProbeRepo {
	return ProbeRepo{db: db}
}

func (r ProbeRepo) GetByID(ctx context.Context, gameID, probeID string) (board.Probe, error) {
	var m model.Probe
	err := getDBFromCtx(ctx, r.db).
		Where("game_id = ? AND id = ?", gameID, probeID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return board.Probe{}, ports.ErrNotFound
		}
		return board.Probe{}, err
	}
	return probeFromRow(m), nil
}

func (r ProbeRepo) ListByGameID(ctx context.Context, gameID string) ([]board.Probe, error) {
	rows := []model.Probe{}
	err := getDBFromCtx(ctx, r.db).
		Where("game_id = ?", gameID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}}},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]board.Probe, 0, len(rows))
	for _, row := range rows {
		out = append(out, probeFromRow(row))
	}
	return out, nil
}

func (r ProbeRepo) Create(ctx context.Context, gameID string, probe board.Probe) error {
	now := time.Now()
	m := model.Probe{
		ID:           probe.ID,
		GameID:       gameID,
		Owner:        probe.Owner,
		Ring:         string(probe.Position.Ring),
		NativeSector: int32(probe.Position.Sector),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func (r ProbeRepo) UpdatePosition(ctx context.Context, gameID, probeID string, pos board.NativePosition) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Probe{}).
		Where("game_id = ? AND id = ?", gameID, probeID).
		Updates(map[string]any{
			"ring":          string(pos.Ring),
			"native_sector": int32(pos.Sector),
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func probeFromRow(m model.Probe) board.Probe {
	return board.Probe{
		ID:    m.ID,
		Owner: m.Owner,
		Position: board.NativePosition{
			Ring:   board.Ring(m.Ring),
			Sector: int(m.NativeSector),
		},
	}
}
