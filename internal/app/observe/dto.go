package observe

import "orrery/internal/domain/board"

type Request struct {
	GameID  string
	ProbeID string
}

type Response struct {
	Probe    board.Probe         `json:"probe"`
	Rotation board.RotationState `json:"rotation"`
	Address  board.Address       `json:"address"`
	Cell     board.Cell          `json:"cell"`
	Adjacent []board.Cell        `json:"adjacent"`
	Objects  []ObservedObject    `json:"objects"`
}

// ObservedObject is a cataloged object with its address resolved against the
// game's current rotation.
type ObservedObject struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Category board.Category       `json:"category"`
	Position board.ObjectPosition `json:"position"`
}
