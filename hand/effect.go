package hand

// repeatTimer fires once per interval while armed. Disarming drops the
// pending trigger. A timer without a positive interval never fires.
type repeatTimer struct {
	interval float64
	next     float64
	armed    bool
}

func (t *repeatTimer) start(now float64) {
	t.armed = true
	t.next = now + t.interval
}

func (t *repeatTimer) stop() {
	t.armed = false
}

// due reports whether the timer fired at now and schedules the next trigger.
func (t *repeatTimer) due(now float64) bool {
	if !t.armed || t.interval <= 0 || now < t.next {
		return false
	}
	t.next += t.interval
	if t.next <= now {
		t.next = now + t.interval
	}
	return true
}
