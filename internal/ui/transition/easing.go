package transition

import "math"

// Func maps linear time t in [0, 1] to eased progress in [0, 1].
type Func func(t float64) float64

// Linear is the identity easing, clamped to [0, 1] like the curves.
func Linear(t float64) float64 { return min(max(t, 0), 1) }

var easings = map[string]Func{
	"linear":      Linear,
	"ease":        CubicBezier(0.25, 0.1, 0.25, 1),
	"ease-in":     CubicBezier(0.42, 0, 1, 1),
	"ease-out":    CubicBezier(0, 0, 0.58, 1),
	"ease-in-out": CubicBezier(0.42, 0, 0.58, 1),
}

// Lookup returns the easing registered under name, falling back to "ease".
func Lookup(name string) Func {
	if f, ok := easings[name]; ok {
		return f
	}
	return easings["ease"]
}

// CubicBezier returns the CSS cubic-bezier(x1, y1, x2, y2) timing function.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	// Polynomial coefficients for x(s) and y(s).
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		// Newton first, bisection when the slope is too flat.
		s := x
		for range 8 {
			dx := sampleX(s) - x
			if math.Abs(dx) < 1e-6 {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}
		lo, hi := 0.0, 1.0
		s = x
		for range 32 {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-6 {
				break
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}
