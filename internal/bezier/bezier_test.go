package bezier

import (
	"math"
	"testing"
)

func TestEvalEndpoints(t *testing.T) {
	c := Curve{X1: 0.25, Y1: 0.1, X2: 0.75, Y2: 0.9}

	x, y := c.Eval(0)
	if x != 0 || y != 0 {
		t.Fatalf("expected (0,0) at t=0, got (%v,%v)", x, y)
	}
	x, y = c.Eval(1)
	if x != 1 || y != 1 {
		t.Fatalf("expected (1,1) at t=1, got (%v,%v)", x, y)
	}
}

func TestEvalDiagonalControls(t *testing.T) {
	// Control points on y=x keep the whole curve on y=x.
	c := Curve{X1: 0.3, Y1: 0.3, X2: 0.8, Y2: 0.8}
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.77, 1} {
		x, y := c.Eval(tt)
		if math.Abs(x-y) > 1e-12 {
			t.Fatalf("t=%v: expected x==y, got (%v,%v)", tt, x, y)
		}
	}
}

func TestEvalMidpoint(t *testing.T) {
	c := Curve{X1: 0.25, Y1: 0.1, X2: 0.75, Y2: 0.9}
	x, y := c.Eval(0.5)
	// 3/8*x1 + 3/8*x2 + 1/8 at t=0.5.
	wantX := 0.375*0.25 + 0.375*0.75 + 0.125
	wantY := 0.375*0.1 + 0.375*0.9 + 0.125
	if math.Abs(x-wantX) > 1e-12 || math.Abs(y-wantY) > 1e-12 {
		t.Fatalf("midpoint mismatch: got (%v,%v), want (%v,%v)", x, y, wantX, wantY)
	}
}

func TestSampleLengthAndRange(t *testing.T) {
	curves := []Curve{
		{X1: 0, Y1: 0, X2: 1, Y2: 1},
		{X1: 0.25, Y1: 0.1, X2: 0.75, Y2: 0.9},
		{X1: 0.1, Y1: 0.6, X2: 0.45, Y2: 0.95},
		{X1: 0.9, Y1: 0.05, X2: 0.95, Y2: 0.2},
	}
	for _, c := range curves {
		for _, points := range []int{2, 5, 50, 60, 127} {
			series := c.Sample(points)
			if len(series) != points {
				t.Fatalf("curve %+v: expected %d samples, got %d", c, points, len(series))
			}
			for i, v := range series {
				if v < 0 || v > 100 {
					t.Fatalf("curve %+v sample %d out of range: %v", c, i, v)
				}
			}
		}
	}
}

func TestSampleAnchoredEndpoints(t *testing.T) {
	curves := []Curve{
		{X1: 0, Y1: 0, X2: 1, Y2: 1},
		{X1: 0.25, Y1: 0.1, X2: 0.75, Y2: 0.9},
		{X1: 0.4, Y1: 0.05, X2: 0.9, Y2: 0.6},
	}
	for _, c := range curves {
		series := c.Sample(60)
		if series[0] > 0.5 {
			t.Fatalf("curve %+v: first sample should be ~0, got %v", c, series[0])
		}
		if series[len(series)-1] < 99.5 {
			t.Fatalf("curve %+v: last sample should be ~100, got %v", c, series[len(series)-1])
		}
	}
}

func TestSampleDiagonal(t *testing.T) {
	series := Curve{X1: 0.5, Y1: 0.5, X2: 0.5, Y2: 0.5}.Sample(5)
	want := []float64{0, 25, 50, 75, 100}
	for i, v := range series {
		if math.Abs(v-want[i]) > 2 {
			t.Fatalf("sample %d: got %v, want %v±2", i, v, want[i])
		}
	}
}

func TestSampleLinearRamp(t *testing.T) {
	series := Curve{X1: 0, Y1: 0, X2: 1, Y2: 1}.Sample(50)
	for i := 1; i < len(series); i++ {
		if series[i] < series[i-1]-0.5 {
			t.Fatalf("linear ramp not monotonic at %d: %v then %v", i, series[i-1], series[i])
		}
	}
	mid := series[len(series)/2]
	if math.Abs(mid-50) > 4 {
		t.Fatalf("linear ramp midpoint should be ~50, got %v", mid)
	}
}

func TestSamplePointSymmetric(t *testing.T) {
	// P2 mirrors P1 through (0.5,0.5), so y(x) is rotationally symmetric
	// about the chart center.
	series := Curve{X1: 0.2, Y1: 0.05, X2: 0.8, Y2: 0.95}.Sample(41)
	n := len(series)
	for i := 0; i < n/2; i++ {
		sum := series[i] + series[n-1-i]
		if math.Abs(sum-100) > 2 {
			t.Fatalf("samples %d and %d should mirror: %v + %v = %v", i, n-1-i, series[i], series[n-1-i], sum)
		}
	}
}
