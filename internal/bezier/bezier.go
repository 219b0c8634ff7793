// Package bezier evaluates and samples the cubic Bezier curves that shape
// aggressiveness profiles. The curve endpoints are fixed at (0,0) and (1,1);
// only the two interior control points vary.
package bezier

import (
	"math"
	"sort"
)

// lookupSteps is the number of parameter steps used to build the x->y lookup
// table during sampling. Fixed resolution, independent of the requested
// output size.
const lookupSteps = 200

// Curve holds the two free control points of a cubic Bezier anchored at
// (0,0) and (1,1). Coordinates are conventionally in [0,1] but any real
// values are accepted.
type Curve struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// Eval returns the point on the curve at parameter t.
//
// Pure; any real t is accepted, including values outside [0,1].
func (c Curve) Eval(t float64) (x, y float64) {
	mt := 1 - t
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	x = b1*c.X1 + b2*c.X2 + b3
	y = b1*c.Y1 + b2*c.Y2 + b3
	return x, y
}

// Sample resamples the curve onto points evenly spaced x positions across
// [0,1] and returns y as percentages clamped to [0,100]. The output length
// always equals points.
//
// The curve is assumed x-monotonic. If the control points make it fold back
// in x, the first bracketing pair found in sorted order decides which branch
// wins. points must be at least 2; smaller values are a caller error and are
// not checked here.
func (c Curve) Sample(points int) []float64 {
	type sample struct {
		x, y float64
	}
	table := make([]sample, lookupSteps+1)
	for i := range table {
		x, y := c.Eval(float64(i) / lookupSteps)
		table[i] = sample{x: x, y: y}
	}
	sort.Slice(table, func(i, j int) bool { return table[i].x < table[j].x })

	lo, hi := table[0], table[len(table)-1]
	out := make([]float64, points)
	for i := range out {
		target := float64(i) / float64(points-1)
		var y float64
		switch {
		case target <= lo.x:
			y = lo.y
		case target >= hi.x:
			y = hi.y
		default:
			y = hi.y
			for j := 0; j < len(table)-1; j++ {
				a, b := table[j], table[j+1]
				if target < a.x || target > b.x {
					continue
				}
				if b.x == a.x {
					y = a.y
				} else {
					frac := (target - a.x) / (b.x - a.x)
					y = a.y + (b.y-a.y)*frac
				}
				break
			}
		}
		out[i] = clampPercent(y * 100)
	}
	return out
}

func clampPercent(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
