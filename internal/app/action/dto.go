package action

import (
	"orrery/internal/domain/board"
	"orrery/internal/domain/movement"
)

type Request struct {
	GameID         string
	ProbeID        string
	IdempotencyKey string
	Target         board.Address
	Budget         int
	Modifiers      movement.Modifiers
}

type Response struct {
	Probe  board.Probe         `json:"probe"`
	From   board.Address       `json:"from"`
	To     board.Address       `json:"to"`
	Cost   int                 `json:"cost"`
	Events []board.DomainEvent `json:"events"`
}
