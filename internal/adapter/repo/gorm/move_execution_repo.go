package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"orrery/internal/adapter/repo/gorm/model"
	"orrery/internal/app/ports"

	"gorm.io/gorm"
)

type MoveExecutionRepo struct {
	db *gorm.DB
}

func NewMoveExecutionRepo(db *gorm.DB) MoveExecutionRepo {
	return MoveExecutionRepo{db: db}
}

func (r MoveExecutionRepo) GetByIdempotencyKey(ctx context.Context, gameID, key string) (*ports.MoveExecutionRecord, error) {
	var m model.MoveExecution
	err := getDBFromCtx(ctx, r.db).
		Where("game_id = ? AND idempotency_key = ?", gameID, key).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var result ports.MoveResult
	if len(m.Result) > 0 {
		_ = json.Unmarshal(m.Result, &result)
	}
	return &ports.MoveExecutionRecord{
		GameID:         m.GameID,
		ProbeID:        m.ProbeID,
		IdempotencyKey: m.IdempotencyKey,
		Budget:         int(m.Budget),
		Result:         result,
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r MoveExecutionRepo) SaveExecution(ctx context.Context, execution ports.MoveExecutionRecord) error {
	resultJSON, _ := json.Marshal(execution.Result)
	m := model.MoveExecution{
		GameID:         execution.GameID,
		ProbeID:        execution.ProbeID,
		IdempotencyKey: execution.IdempotencyKey,
		Budget:         int32(execution.Budget),
		Result:         resultJSON,
		AppliedAt:      execution.AppliedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}
