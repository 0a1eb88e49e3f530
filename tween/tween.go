// Package tween interpolates scalar properties over time and produces
// one-shot rotational shakes. Every animation is advanced explicitly by the
// caller's frame delta and can be killed mid-flight.
package tween

// Tween interpolates a value from begin to end over duration seconds.
type Tween struct {
	duration float64
	time     float64
	begin    float64
	end      float64
	change   float64
	current  float64
	easing   TweenFunc
	finished bool
	killed   bool
}

// New creates a tween starting at begin. A non-positive duration finishes on
// the first Update.
func New(begin, end, duration float64, easing TweenFunc) *Tween {
	if easing == nil {
		easing = Linear
	}
	return &Tween{
		duration: duration,
		begin:    begin,
		end:      end,
		change:   end - begin,
		current:  begin,
		easing:   easing,
	}
}

// Update advances the tween by dt and returns the current value and whether
// the tween has finished.
func (t *Tween) Update(dt float64) (current float64, isFinished bool) {
	if t.killed {
		return t.current, true
	}
	t.time += dt
	if t.duration <= 0 || t.time >= t.duration {
		t.time = t.duration
		t.current = t.end
		t.finished = true
		return t.current, true
	}
	if t.time < 0 {
		t.time = 0
	}
	t.current = t.easing(t.time, t.begin, t.change, t.duration)
	return t.current, false
}

// Kill stops the tween. With complete set the value jumps to the end value,
// otherwise it stays where it is.
func (t *Tween) Kill(complete bool) float64 {
	if t == nil {
		return 0
	}
	if complete && !t.killed {
		t.time = t.duration
		t.current = t.end
	}
	t.killed = true
	return t.current
}

// Value returns the last computed value.
func (t *Tween) Value() float64 { return t.current }

// End returns the value the tween is heading to.
func (t *Tween) End() float64 { return t.end }

// Done reports whether the tween finished or was killed.
func (t *Tween) Done() bool {
	return t.finished || t.killed
}
