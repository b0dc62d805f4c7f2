package gormrepo

import (
	"context"
	"time"

	"orrery/internal/adapter/repo/gorm/model"
	"orrery/internal/domain/board"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExtraObjectRepo struct {
	db *gorm.DB
}

func NewExtraObjectRepo(db *gorm.DB) ExtraObjectRepo {
	return ExtraObjectRepo{db: db}
}

func (r ExtraObjectRepo) Append(ctx context.Context, gameID string, obj board.CelestialObject) error {
	m := model.ExtraObject{
		ID:        obj.ID,
		GameID:    gameID,
		Name:      obj.Name,
		Category:  string(obj.Category),
		Ring:      string(obj.Ring),
		Sector:    int32(obj.Sector),
		CreatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func (r ExtraObjectRepo) ListByGameID(ctx context.Context, gameID string) ([]board.CelestialObject, error) {
	rows := []model.ExtraObject{}
	err := getDBFromCtx(ctx, r.db).
		Where("game_id = ?", gameID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}}},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]board.CelestialObject, 0, len(rows))
	for _, row := range rows {
		out = append(out, board.CelestialObject{
			ID:       row.ID,
			Name:     row.Name,
			Category: board.Category(row.Category),
			Ring:     board.Ring(row.Ring),
			Sector:   int(row.Sector),
		})
	}
	return out, nil
}
