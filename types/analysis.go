package types

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// DataSet produced by an Analyzer, interpreted by the caller
type DataSet interface{}

// Analyzer summarizes the traces of a run
type Analyzer func(traces []*Trace) DataSet

// ReturnStats of a run
type ReturnStats struct {
	Episodes   int
	MeanReturn float64
	StdReturn  float64
	MeanSteps  float64
	StdSteps   float64
	MinReturn  int
	MaxReturn  int
}

func (r *ReturnStats) String() string {
	return fmt.Sprintf(
		"episodes=%d return=%.2f±%.2f [%d, %d] steps=%.2f±%.2f",
		r.Episodes, r.MeanReturn, r.StdReturn, r.MinReturn, r.MaxReturn, r.MeanSteps, r.StdSteps,
	)
}

// ReturnsAnalyzer computes mean and standard deviation of episode returns and lengths
func ReturnsAnalyzer() Analyzer {
	return func(traces []*Trace) DataSet {
		stats := &ReturnStats{Episodes: len(traces)}
		if len(traces) == 0 {
			return stats
		}
		returns := make([]float64, len(traces))
		steps := make([]float64, len(traces))
		stats.MinReturn = traces[0].Return()
		stats.MaxReturn = stats.MinReturn
		for i, t := range traces {
			ret := t.Return()
			returns[i] = float64(ret)
			steps[i] = float64(t.Len())
			if ret < stats.MinReturn {
				stats.MinReturn = ret
			}
			if ret > stats.MaxReturn {
				stats.MaxReturn = ret
			}
		}
		if len(traces) == 1 {
			stats.MeanReturn = returns[0]
			stats.MeanSteps = steps[0]
			return stats
		}
		stats.MeanReturn, stats.StdReturn = stat.MeanStdDev(returns, nil)
		stats.MeanSteps, stats.StdSteps = stat.MeanStdDev(steps, nil)
		return stats
	}
}

// PureCoverage counts the distinct abstract states seen after each trace
func PureCoverage(abstractor StateAbstractor) Analyzer {
	return func(traces []*Trace) DataSet {
		uniqueStates := make(map[string]bool)
		numUniqueStates := make([]int, 0, len(traces))
		for _, trace := range traces {
			for j := 0; j < trace.Len(); j++ {
				s, _, _, next, _ := trace.Get(j)
				uniqueStates[abstractor(s)] = true
				uniqueStates[abstractor(next)] = true
			}
			numUniqueStates = append(numUniqueStates, len(uniqueStates))
		}
		return numUniqueStates
	}
}
