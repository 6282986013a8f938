package types

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Discrete is a space of N integer values {0, ..., N-1}
type Discrete struct {
	N int
}

// Contains reports whether v is a member of the space
func (d Discrete) Contains(v int) bool {
	return v >= 0 && v < d.N
}

// Sample draws a member of the space uniformly using src.
// Returns false for an empty space.
func (d Discrete) Sample(src rand.Source) (int, bool) {
	if d.N <= 0 {
		return 0, false
	}
	weights := make([]float64, d.N)
	for i := range weights {
		weights[i] = 1
	}
	return sampleuv.NewWeighted(weights, src).Take()
}

func (d Discrete) String() string {
	return fmt.Sprintf("Discrete(%d)", d.N)
}

// Box is an axis aligned integer region, bounds inclusive
type Box struct {
	Low  []int
	High []int
}

// Contains reports whether the point lies inside the box
func (b Box) Contains(point []int) bool {
	if len(point) != len(b.Low) || len(point) != len(b.High) {
		return false
	}
	for i, v := range point {
		if v < b.Low[i] || v > b.High[i] {
			return false
		}
	}
	return true
}

func (b Box) String() string {
	return fmt.Sprintf("Box(low=%v, high=%v)", b.Low, b.High)
}

// RewardRange declared by an environment, bounds inclusive
type RewardRange struct {
	Min int
	Max int
}

func (r RewardRange) Contains(reward int) bool {
	return reward >= r.Min && reward <= r.Max
}
