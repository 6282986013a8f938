package grid

import "strings"

const (
	markAgent  = "*"
	markTarget = "w"
	markDeath  = "D"
	markEmpty  = "_"
)

// Render returns the grid one row per line, cells separated by a space.
// The agent marker wins over the target and death markers.
func (g *GridEnvironment) Render() string {
	var b strings.Builder
	for i := 0; i < g.config.Rows; i++ {
		for j := 0; j < g.config.Cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.mark(Position{Row: i, Col: j}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *GridEnvironment) mark(p Position) string {
	switch {
	case g.started && p.Eq(g.position):
		return markAgent
	case p.Eq(g.config.Target):
		return markTarget
	case g.deaths[p]:
		return markDeath
	}
	return markEmpty
}
