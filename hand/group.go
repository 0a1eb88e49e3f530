// Package hand implements a hand of cards: slot layout, drag reordering,
// draw-order stacking and spring-driven visuals that chase the logical cards.
//
// Coordinates live on a layout plane centred on the hand with Y pointing up.
// Everything runs on one goroutine: pointer events are delivered first, then
// Group.Update advances layout and visuals for the frame.
package hand

import (
	"github.com/charmbracelet/log"

	"github.com/SvenDH/go-card-hand/tween"
)

const (
	DefaultSpacing  = 50
	DefaultMaxDelta = 1.0 / 30
)

// Container supplies the width available to an auto-spaced hand.
type Container interface {
	Width() float64
}

// PointerSource reports the pointer position on the layout plane.
type PointerSource interface {
	PointerPosition() (Vec2, bool)
}

// Slot is a position holder in the hand. It holds at most one card.
type Slot struct {
	x    float64
	card *Card
}

func (s *Slot) Position() Vec2 { return Vec2{X: s.x} }
func (s *Slot) Card() *Card    { return s.card }

// Group owns the ordered slots of a hand and the cards occupying them.
type Group struct {
	slots    []*Slot
	cards    []*Card
	dragging *Card

	spacing      float64
	autoSpacing  bool
	allowReorder bool
	maxDelta     float64

	container Container
	pointer   PointerSource
	stacker   *Stacker
	visual    VisualSettings
	rng       tween.Rand
	logger    *log.Logger

	now     float64
	started bool
	dirty   bool
	warned  map[string]bool
}

type Option func(*Group)

func WithSpacing(spacing float64) Option { return func(g *Group) { g.spacing = spacing } }
func WithAutoSpacing(on bool) Option     { return func(g *Group) { g.autoSpacing = on } }
func WithReorder(on bool) Option         { return func(g *Group) { g.allowReorder = on } }

// WithMaxDelta caps the frame time step. Zero turns the cap off.
func WithMaxDelta(dt float64) Option             { return func(g *Group) { g.maxDelta = dt } }
func WithContainer(c Container) Option           { return func(g *Group) { g.container = c } }
func WithPointer(p PointerSource) Option         { return func(g *Group) { g.pointer = p } }
func WithStacker(s *Stacker) Option              { return func(g *Group) { g.stacker = s } }
func WithVisualSettings(v VisualSettings) Option { return func(g *Group) { g.visual = v } }
func WithRand(r tween.Rand) Option               { return func(g *Group) { g.rng = r } }
func WithLogger(l *log.Logger) Option            { return func(g *Group) { g.logger = l } }

// New creates an empty group.
func New(opts ...Option) *Group {
	g := &Group{
		spacing:      DefaultSpacing,
		allowReorder: true,
		maxDelta:     DefaultMaxDelta,
		visual:       DefaultVisualSettings(),
		warned:       make(map[string]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.stacker == nil {
		g.stacker = NewStacker()
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	return g
}

func (g *Group) Spacing() float64         { return g.spacing }
func (g *Group) AutoSpacing() bool        { return g.autoSpacing }
func (g *Group) AllowReorder() bool       { return g.allowReorder }
func (g *Group) Dragging() *Card          { return g.dragging }
func (g *Group) Now() float64             { return g.now }
func (g *Group) Len() int                 { return len(g.cards) }
func (g *Group) Settings() VisualSettings { return g.visual }

func (g *Group) SetSpacing(spacing float64) { g.spacing = spacing; g.Layout() }
func (g *Group) SetAutoSpacing(on bool)     { g.autoSpacing = on; g.Layout() }
func (g *Group) SetAllowReorder(on bool)    { g.allowReorder = on }

// Cards returns the cards in slot order.
func (g *Group) Cards() []*Card {
	out := make([]*Card, len(g.cards))
	copy(out, g.cards)
	return out
}

// Slots returns the slots in order.
func (g *Group) Slots() []*Slot {
	out := make([]*Slot, len(g.slots))
	copy(out, g.slots)
	return out
}

// Counts returns the number of selected cards and the total.
func (g *Group) Counts() (selected, total int) {
	for _, c := range g.cards {
		if c.selected {
			selected++
		}
	}
	return selected, len(g.cards)
}

// PaintOrder returns the visuals bottom to top.
func (g *Group) PaintOrder() []*Visual {
	return g.stacker.Order()
}

// Register appends the card in a new slot at the end of the hand. Registering
// a card twice is a no-op. A detached card that is mid-drag keeps its gesture
// if the group has no dragging card, otherwise the drag is cancelled.
func (g *Group) Register(card *Card) {
	if card == nil || g.indexOf(card) >= 0 {
		return
	}
	if card.group != nil {
		card.group.Remove(card)
	}
	pos := card.Position()
	adopt := card.dragging && g.dragging == nil

	slot := &Slot{card: card}
	g.slots = append(g.slots, slot)
	card.group = g
	card.slot = slot
	card.detached = false
	if !card.ownLog {
		card.logger = g.logger
	}
	g.rebuild()
	g.Layout()

	if adopt {
		g.dragging = card
		card.SetPosition(pos)
	} else {
		card.dragging = false
		card.wasDragged = false
		card.local = card.rest()
	}

	if card.visual == nil {
		card.visual = newVisual(card, &g.visual, g.rng)
		if adopt {
			card.visual.onPress()
		}
	}
	g.restack()
	g.logger.Debug("registered card", "card", card.Name, "id", card.ID(), "slot", len(g.slots)-1, "dragging", adopt)
}

// Remove takes the card and its slot out of the hand and destroys its visual.
func (g *Group) Remove(card *Card) bool {
	i := g.indexOf(card)
	if i < 0 {
		return false
	}
	g.slots = append(g.slots[:i], g.slots[i+1:]...)
	if g.dragging == card {
		g.dragging = nil
	}
	if card.visual != nil {
		card.visual.destroy()
		card.visual = nil
	}
	card.dragging = false
	card.wasDragged = false
	card.hovering = false
	card.group = nil
	card.slot = nil
	g.rebuild()
	g.Layout()
	g.restack()
	g.logger.Debug("removed card", "card", card.Name, "id", card.ID())
	return true
}

// Reorder swaps the dragging card with the first card, in hand order, whose
// position it has crossed. It performs at most one swap and reports whether
// it did.
func (g *Group) Reorder() bool {
	if !g.allowReorder || g.dragging == nil {
		return false
	}
	d := g.dragging
	dIndex := d.SlotIndex()
	dPos := d.Position()
	dSlot := d.slot

	for _, c := range g.cards {
		if c == d {
			continue
		}
		x := c.Position().X
		index := c.SlotIndex()

		crossedRight := dPos.X > x && dIndex < index
		crossedLeft := dPos.X < x && dIndex > index
		if !crossedRight && !crossedLeft {
			continue
		}

		target := c.slot
		d.slot, target.card = target, d
		c.slot, dSlot.card = dSlot, c
		d.SetPosition(dPos)
		c.local = c.rest()

		g.rebuild()
		g.restack()
		g.Layout()
		g.logger.Debug("swapped cards", "dragging", d.Name, "id", d.ID(), "displaced", c.Name, "displaced_id", c.ID(), "from", dIndex, "to", index)
		return true
	}
	return false
}

// Layout centres the slots on the hand axis.
func (g *Group) Layout() {
	n := len(g.slots)
	if n == 0 {
		return
	}
	step := g.spacing
	if g.autoSpacing {
		if g.container != nil {
			step = AutoStep(n, g.container.Width())
		} else {
			g.warnOnce("container", "auto spacing without a container, using fixed spacing")
		}
	}
	for i, x := range LayoutOffsets(n, step) {
		g.slots[i].x = x
	}
}

// Update advances the hand by one frame of dt seconds.
func (g *Group) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if g.maxDelta > 0 && dt > g.maxDelta {
		dt = g.maxDelta
	}
	g.now += dt
	if !g.started {
		g.started = true
		g.dirty = true
	}

	g.Layout()

	var pointer Vec2
	hasPointer := false
	if g.pointer != nil {
		pointer, hasPointer = g.pointer.PointerPosition()
	}
	for _, c := range g.cards {
		if c.visual == nil {
			continue
		}
		c.visual.update(dt, g.now, pointer, hasPointer)
	}

	if g.dirty {
		g.restack()
	}
}

// LayoutOffsets returns the centred offsets of n slots step apart. A single
// slot sits at 0.
func LayoutOffsets(n int, step float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	center := float64(n-1) / 2
	for i := range out {
		out[i] = (float64(i) - center) * step
	}
	return out
}

// AutoStep spreads n slots over width. It is 0 for fewer than two slots.
func AutoStep(n int, width float64) float64 {
	if n <= 1 {
		return 0
	}
	return width / float64(n-1)
}

func (g *Group) indexOf(card *Card) int {
	for i, s := range g.slots {
		if s.card == card {
			return i
		}
	}
	return -1
}

func (g *Group) rebuild() {
	g.cards = g.cards[:0]
	for _, s := range g.slots {
		if s.card != nil {
			g.cards = append(g.cards, s.card)
		}
	}
}

func (g *Group) restack() {
	g.stacker.Sync(g.cards)
	g.dirty = false
}

func (g *Group) warnOnce(key, msg string) {
	if g.warned[key] {
		return
	}
	g.warned[key] = true
	g.logger.Debug(msg)
}
