// Package stats summarizes numeric values pulled out of a roster.
package stats

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrEmpty = errors.New("stats: no values")

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Mean is computed in float64 so integer inputs are not truncated.
func Mean[T Number](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return float64(Sum(values)) / float64(len(values)), nil
}

func MinMax[T Number](values []T) (lo, hi T, err error) {
	if len(values) == 0 {
		return lo, hi, ErrEmpty
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, nil
}

func Floats[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Summary bundles the figures printed by the stats command.
type Summary struct {
	Count int
	Sum   float64
	Mean  float64
	Min   float64
	Max   float64
}

func Summarize[T Number](values []T) (Summary, error) {
	mean, err := Mean(values)
	if err != nil {
		return Summary{}, err
	}
	lo, hi, _ := MinMax(values)
	return Summary{
		Count: len(values),
		Sum:   float64(Sum(values)),
		Mean:  mean,
		Min:   float64(lo),
		Max:   float64(hi),
	}, nil
}
