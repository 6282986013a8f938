package grid

import (
	"fmt"
	"strconv"

	"github.com/zeu5/gridworld/types"
)

// Action moves the agent by one cell along a single axis
type Action int

const (
	IncreaseRow Action = iota
	DecreaseRow
	IncreaseCol
	DecreaseCol
)

// NumActions is the size of the declared action space
const NumActions = 4

var _ types.Action = IncreaseRow

var AllActions = []types.Action{
	IncreaseRow,
	DecreaseRow,
	IncreaseCol,
	DecreaseCol,
}

func (a Action) Hash() string {
	return strconv.Itoa(int(a))
}

func (a Action) Valid() bool {
	return a >= IncreaseRow && a <= DecreaseCol
}

func (a Action) String() string {
	switch a {
	case IncreaseRow:
		return "IncreaseRow"
	case DecreaseRow:
		return "DecreaseRow"
	case IncreaseCol:
		return "IncreaseCol"
	case DecreaseCol:
		return "DecreaseCol"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction converts a raw integer, failing for values outside the action space
func ParseAction(v int) (Action, error) {
	a := Action(v)
	if !a.Valid() {
		return a, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidAction, v, NumActions)
	}
	return a, nil
}

// apply the move to p, clamping at the grid edges
func (a Action) apply(p Position, rows, cols int) Position {
	next := p
	switch a {
	case IncreaseRow:
		next.Row = min(rows-1, p.Row+1)
	case DecreaseRow:
		next.Row = max(0, p.Row-1)
	case IncreaseCol:
		next.Col = min(cols-1, p.Col+1)
	case DecreaseCol:
		next.Col = max(0, p.Col-1)
	}
	return next
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
