package gormrepo

import (
	"context"
	"errors"
	"time"

	"orrery/internal/adapter/repo/gorm/model"
	"orrery/internal/app/ports"
	"orrery/internal/domain/board"

	"gorm.io/gorm"
)

type BoardStateRepo struct {
	db *gorm.DB
}

func NewBoardStateRepo(db *gorm.DB) BoardStateRepo {
	return BoardStateRepo{db: db}
}

func (r BoardStateRepo) Get(ctx context.Context, gameID string) (ports.BoardState, error) {
	var m model.BoardState
	if err := getDBFromCtx(ctx, r.db).Where("game_id = ?", gameID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.BoardState{}, ports.ErrNotFound
		}
		return ports.BoardState{}, err
	}
	rotation, err := board.NewRotationState(int(m.Angle1), int(m.Angle2), int(m.Angle3))
	if err != nil {
		return ports.BoardState{}, err
	}
	return ports.BoardState{
		GameID:            m.GameID,
		Rotation:          rotation,
		NextRotationLevel: int(m.NextRotationLevel),
		Version:           m.Version,
	}, nil
}

func (r BoardStateRepo) SaveWithVersion(ctx context.Context, state ports.BoardState, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := model.BoardState{
			GameID:            state.GameID,
			Angle1:            int32(state.Rotation.Angle1),
			Angle2:            int32(state.Rotation.Angle2),
			Angle3:            int32(state.Rotation.Angle3),
			NextRotationLevel: int32(state.NextRotationLevel),
			Version:           state.Version,
			UpdatedAt:         time.Now(),
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		return nil
	}

	updates := map[string]any{
		"angle1":              int32(state.Rotation.Angle1),
		"angle2":              int32(state.Rotation.Angle2),
		"angle3":              int32(state.Rotation.Angle3),
		"next_rotation_level": int32(state.NextRotationLevel),
		"version":             state.Version,
		"updated_at":          time.Now(),
	}

	res := db.Model(&model.BoardState{}).
		Where("game_id = ? AND version = ?", state.GameID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
