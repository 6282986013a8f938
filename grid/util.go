package grid

import (
	"fmt"

	"github.com/zeu5/gridworld/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// VisitDataSet counts how often each cell was occupied across traces
type VisitDataSet struct {
	Visits [][]int
	Rows   int
	Cols   int
	// Episodes that ended on the target
	Reached int
	// Steps that landed on a death cell
	DeathHits int
	Episodes  int
}

var _ plotter.GridXYZ = &VisitDataSet{}

func NewVisitDataSet(rows, cols int) *VisitDataSet {
	visits := make([][]int, rows)
	for i := range visits {
		visits[i] = make([]int, cols)
	}
	return &VisitDataSet{Visits: visits, Rows: rows, Cols: cols}
}

func (v *VisitDataSet) Dims() (int, int) {
	return v.Cols, v.Rows
}

func (v *VisitDataSet) Z(c, r int) float64 {
	return float64(v.Visits[r][c])
}

func (v *VisitDataSet) X(c int) float64 {
	return float64(c)
}

func (v *VisitDataSet) Y(r int) float64 {
	return float64(r)
}

func (v *VisitDataSet) Max() int {
	max := 0
	for _, row := range v.Visits {
		for _, count := range row {
			if count > max {
				max = count
			}
		}
	}
	return max
}

func (v *VisitDataSet) visit(p Position) {
	if !inside(p, v.Rows, v.Cols) {
		return
	}
	v.Visits[p.Row][p.Col]++
}

// VisitAnalyzer counts the cells occupied by the agent in g's traces,
// including the initial position of every episode
func VisitAnalyzer(g *GridEnvironment) types.Analyzer {
	return func(traces []*types.Trace) types.DataSet {
		dataSet := NewVisitDataSet(g.config.Rows, g.config.Cols)
		dataSet.Episodes = len(traces)
		for _, trace := range traces {
			for i := 0; i < trace.Len(); i++ {
				state, _, _, next, _ := trace.Get(i)
				if i == 0 {
					dataSet.visit(state.(Position))
				}
				nextPos := next.(Position)
				dataSet.visit(nextPos)
				if g.IsDeath(nextPos) {
					dataSet.DeathHits++
				}
			}
			if _, _, _, last, ok := trace.Last(); ok && last.(Position).Eq(g.config.Target) {
				dataSet.Reached++
			}
		}
		return dataSet
	}
}

// SaveHeatmap plots the visit counts to figPath, the format follows the extension
func SaveHeatmap(dataSet *VisitDataSet, title, figPath string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"

	heatMap := plotter.NewHeatMap(dataSet, palette.Heat(12, 1))
	p.Add(heatMap)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, figPath); err != nil {
		return fmt.Errorf("saving heatmap: %w", err)
	}
	return nil
}
