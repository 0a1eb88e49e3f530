package tween

import "math"

// TweenFunc maps elapsed time t, begin value b, change c and duration d to the
// interpolated value (Penner easing signature).
type TweenFunc func(t, b, c, d float64) float64

func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

func InQuad(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

func OutQuad(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

func InOutQuad(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

func OutCubic(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

// OutElastic overshoots the end value and settles with a decaying sine.
func OutElastic(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

var easings = map[string]TweenFunc{
	"linear":     Linear,
	"inquad":     InQuad,
	"outquad":    OutQuad,
	"inoutquad":  InOutQuad,
	"outcubic":   OutCubic,
	"outelastic": OutElastic,
}

// Lookup returns the easing registered under name (case sensitive, lower case).
func Lookup(name string) (TweenFunc, bool) {
	f, ok := easings[name]
	return f, ok
}
