package model

import "time"

// Row types mirror the migrations under migrations/. Regenerate with
// tools/modelgen after a schema change.

type BoardState struct {
	GameID            string `gorm:"primaryKey"`
	Angle1            int32
	Angle2            int32
	Angle3            int32
	NextRotationLevel int32
	Version           int64
	UpdatedAt         time.Time
}

func (BoardState) TableName() string { return "board_states" }

type Probe struct {
	ID           string `gorm:"primaryKey"`
	GameID       string
	Owner        string
	Ring         string
	NativeSector int32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Probe) TableName() string { return "probes" }

type ExtraObject struct {
	ID        string `gorm:"primaryKey"`
	GameID    string
	Name      string
	Category  string
	Ring      string
	Sector    int32
	CreatedAt time.Time
}

func (ExtraObject) TableName() string { return "extra_objects" }

type MoveExecution struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	GameID         string
	ProbeID        string
	IdempotencyKey string
	Budget         int32
	Result         []byte `gorm:"type:jsonb"`
	AppliedAt      time.Time
}

func (MoveExecution) TableName() string { return "move_executions" }

type DomainEvent struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	EventID    string `gorm:"column:event_id"`
	GameID     string
	Type       string
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
