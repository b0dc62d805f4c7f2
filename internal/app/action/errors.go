package action

import (
	"errors"
	"fmt"

	"orrery/internal/domain/board"
)

var (
	ErrInvalidRequest         = errors.New("invalid move request")
	ErrDestinationUnreachable = errors.New("destination unreachable within budget")
)

// DestinationUnreachableError is the ordinary negative outcome of a move
// request: the destination's minimal cost exceeds the budget. Nothing is
// persisted when it is returned.
type DestinationUnreachableError struct {
	Target board.Address
	Budget int
}

func (e *DestinationUnreachableError) Error() string {
	return fmt.Sprintf("destination %s/%d unreachable within budget %d", e.Target.Ring, e.Target.Sector, e.Budget)
}

func (e *DestinationUnreachableError) Unwrap() error {
	return ErrDestinationUnreachable
}
