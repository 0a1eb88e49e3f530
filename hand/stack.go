package hand

// Stacker keeps the render stack of a hand's visuals in step with the
// logical order. The dragged card always paints last.
type Stacker struct {
	order []*Visual
}

func NewStacker() *Stacker {
	return &Stacker{}
}

// Sync assigns stack indices to the visuals of cards, which must be in hand
// order, and returns the paint order bottom to top. Cards without a visual
// are skipped.
func (s *Stacker) Sync(cards []*Card) []*Visual {
	s.order = s.order[:0]
	for _, c := range cards {
		if c.visual == nil || c.dragging {
			continue
		}
		c.visual.stack = len(s.order)
		s.order = append(s.order, c.visual)
	}
	for _, c := range cards {
		if c.visual == nil || !c.dragging {
			continue
		}
		c.visual.stack = len(s.order)
		s.order = append(s.order, c.visual)
	}
	return s.Order()
}

// Order returns the last synced paint order.
func (s *Stacker) Order() []*Visual {
	out := make([]*Visual, len(s.order))
	copy(out, s.order)
	return out
}
