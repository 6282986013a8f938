package grid

import (
	"fmt"

	"github.com/zeu5/gridworld/types"
)

// Position of the agent on the grid
type Position struct {
	Row int
	Col int
}

var _ types.State = Position{}

func (p Position) Hash() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func (p Position) Eq(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Actions returns every move, moves into a wall are clamped rather than removed
func (p Position) Actions() []types.Action {
	return AllActions
}

// Vector form used as the observation on the wire
func (p Position) Vector() []int {
	return []int{p.Row, p.Col}
}

func (p Position) String() string {
	return p.Hash()
}

func inside(p Position, rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}
