package hand

import "math"

// Vec2 is a point or direction on the layout plane. Y points up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2             { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2             { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2        { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Len() float64                { return math.Hypot(v.X, v.Y) }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Scale(t)) }

// Vec3 holds euler angles in degrees.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

func lerp(a, b, t float64) float64 { return a + (b-a)*clamp01(t) }

// wrapAngle maps degrees into [-180, 180).
func wrapAngle(a float64) float64 {
	a = math.Mod(a+180, 360)
	if a < 0 {
		a += 360
	}
	return a - 180
}

// lerpAngle interpolates along the shortest arc.
func lerpAngle(a, b, t float64) float64 {
	return a + wrapAngle(b-a)*clamp01(t)
}

func remap(v, from1, to1, from2, to2 float64) float64 {
	return (v-from1)/(to1-from1)*(to2-from2) + from2
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
