package tween

import "math/rand/v2"

// Rand is the random source used to pick shake directions.
type Rand interface {
	Float64() float64
}

// Shake is a one-shot perturbation on three axes. It visits vibrato*duration
// random points whose strength fades out linearly and ends at zero.
type Shake struct {
	duration float64
	time     float64
	points   [][3]float64
	offset   [3]float64
	finished bool
	killed   bool
}

// NewShake builds a shake of the given duration (seconds), strength (per axis)
// and vibrato (points per second). A nil rng uses the global source.
func NewShake(duration, strength float64, vibrato int, rng Rand) *Shake {
	if rng == nil {
		rng = globalRand{}
	}
	n := int(float64(vibrato) * duration)
	if n < 2 {
		n = 2
	}
	points := make([][3]float64, n)
	for i := 0; i < n-1; i++ {
		s := strength * (1 - float64(i)/float64(n))
		for axis := range points[i] {
			points[i][axis] = (rng.Float64()*2 - 1) * s
		}
	}
	return &Shake{duration: duration, points: points}
}

// Update advances the shake and returns the current offset per axis.
func (s *Shake) Update(dt float64) (offset [3]float64, isFinished bool) {
	if s.killed || s.finished {
		return s.offset, true
	}
	s.time += dt
	if s.duration <= 0 || s.time >= s.duration {
		s.time = s.duration
		s.offset = [3]float64{}
		s.finished = true
		return s.offset, true
	}
	segment := s.duration / float64(len(s.points))
	i := int(s.time / segment)
	if i >= len(s.points) {
		i = len(s.points) - 1
	}
	var from [3]float64
	if i > 0 {
		from = s.points[i-1]
	}
	to := s.points[i]
	f := (s.time - float64(i)*segment) / segment
	for axis := range s.offset {
		s.offset[axis] = from[axis] + (to[axis]-from[axis])*f
	}
	return s.offset, false
}

// Kill stops the shake. With complete set the offset jumps to its rest value.
func (s *Shake) Kill(complete bool) {
	if s == nil {
		return
	}
	if complete {
		s.offset = [3]float64{}
		s.time = s.duration
	}
	s.killed = true
}

// Offset returns the last computed offset.
func (s *Shake) Offset() [3]float64 { return s.offset }

// Done reports whether the shake finished or was killed.
func (s *Shake) Done() bool { return s.finished || s.killed }

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
