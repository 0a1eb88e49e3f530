package hand

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedWidth float64

func (w fixedWidth) Width() float64 { return float64(w) }

func newTestGroup(n int, opts ...Option) (*Group, []*Card) {
	g := New(opts...)
	cards := make([]*Card, n)
	for i := range cards {
		cards[i] = NewCard(fmt.Sprintf("card%d", i), Skin{})
		g.Register(cards[i])
	}
	return g, cards
}

func names(cards []*Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name
	}
	return out
}

func TestLayoutOffsets(t *testing.T) {
	tests := []struct {
		n    int
		step float64
		want []float64
	}{
		{0, 50, nil},
		{1, 50, []float64{0}},
		{2, 50, []float64{-25, 25}},
		{3, 50, []float64{-50, 0, 50}},
		{4, 10, []float64{-15, -5, 5, 15}},
		{5, 0, []float64{0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			got := LayoutOffsets(tt.n, tt.step)
			assert.Equal(t, tt.want, got)

			sum := 0.0
			for _, x := range got {
				sum += x
			}
			assert.InDelta(t, 0, sum, 1e-9)
		})
	}
}

func TestAutoStep(t *testing.T) {
	assert.Equal(t, 0.0, AutoStep(0, 600))
	assert.Equal(t, 0.0, AutoStep(1, 600))
	assert.Equal(t, 600.0, AutoStep(2, 600))
	assert.Equal(t, 150.0, AutoStep(5, 600))
}

func TestGroupLayoutFixedSpacing(t *testing.T) {
	g, cards := newTestGroup(3, WithSpacing(40))
	for i, want := range []float64{-40, 0, 40} {
		assert.Equal(t, want, cards[i].Position().X)
	}

	g.SetSpacing(10)
	assert.Equal(t, -10.0, cards[0].Position().X)
	assert.Equal(t, 10.0, cards[2].Position().X)
}

func TestGroupAutoSpacing(t *testing.T) {
	g, cards := newTestGroup(4, WithAutoSpacing(true), WithContainer(fixedWidth(300)))
	for i, want := range []float64{-150, -50, 50, 150} {
		assert.Equal(t, want, cards[i].Position().X)
	}

	for _, c := range cards[1:] {
		g.Remove(c)
	}
	require.Equal(t, 1, g.Len())
	x := cards[0].Position().X
	assert.False(t, math.IsNaN(x) || math.IsInf(x, 0))
	assert.Equal(t, 0.0, x)
}

func TestGroupAutoSpacingWithoutContainer(t *testing.T) {
	_, cards := newTestGroup(2, WithAutoSpacing(true), WithSpacing(30))
	assert.Equal(t, -15.0, cards[0].Position().X)
	assert.Equal(t, 15.0, cards[1].Position().X)
}

func TestSingleCardCentered(t *testing.T) {
	g, cards := newTestGroup(1, WithAutoSpacing(true), WithContainer(fixedWidth(500)))
	g.Update(1.0 / 60)
	assert.Equal(t, Vec2{}, cards[0].Position())
}

func TestEmptyGroup(t *testing.T) {
	g := New()
	g.Layout()
	g.Update(1.0 / 60)
	assert.False(t, g.Reorder())
	assert.Empty(t, g.PaintOrder())
	sel, total := g.Counts()
	assert.Zero(t, sel)
	assert.Zero(t, total)
}

func TestRegisterIsIdempotent(t *testing.T) {
	g, cards := newTestGroup(2)
	v := cards[0].Visual()
	g.Register(cards[0])
	g.Register(nil)

	assert.Equal(t, 2, g.Len())
	assert.Len(t, g.Slots(), 2)
	assert.Same(t, v, cards[0].Visual())
	assert.Equal(t, []string{"card0", "card1"}, names(g.Cards()))
}

func TestRegisterMovesBetweenGroups(t *testing.T) {
	a, cards := newTestGroup(2)
	b := New()
	b.Register(cards[1])

	assert.Equal(t, []string{"card0"}, names(a.Cards()))
	assert.Equal(t, []string{"card1"}, names(b.Cards()))
	assert.Same(t, b, cards[1].Group())
	assert.NotNil(t, cards[1].Visual())
}

func draggingCards(g *Group) int {
	n := 0
	for _, c := range g.Cards() {
		if c.Dragging() {
			n++
		}
	}
	return n
}

func TestRegisterCancelsSecondDrag(t *testing.T) {
	g, cards := newTestGroup(2)
	cards[0].Press(PointerEvent{Pos: cards[0].Position()})

	loose := NewCard("loose", Skin{})
	loose.Press(PointerEvent{})
	loose.Move(PointerEvent{Pos: Vec2{X: 40, Y: 30}})
	require.True(t, loose.Dragging())

	g.Register(loose)
	assert.Equal(t, 1, draggingCards(g))
	assert.Same(t, cards[0], g.Dragging())
	assert.False(t, loose.Dragging())
	assert.False(t, loose.WasDragged())
	assert.Equal(t, Vec2{}, loose.Local())

	order := g.PaintOrder()
	assert.Same(t, cards[0].Visual(), order[len(order)-1])
}

func TestRegisterAdoptsDrag(t *testing.T) {
	g, _ := newTestGroup(2)
	loose := NewCard("loose", Skin{})
	loose.Press(PointerEvent{})
	loose.Move(PointerEvent{Pos: Vec2{X: 40, Y: 30}})

	g.Register(loose)
	assert.Same(t, loose, g.Dragging())
	assert.Equal(t, 1, draggingCards(g))
	assert.Equal(t, Vec2{X: 40, Y: 30}, loose.Position())
	assert.Equal(t, g.Settings().ScaleOnDrag, loose.Visual().scaleTween.End())

	// the adopted drag keeps following the pointer
	loose.Move(PointerEvent{Pos: Vec2{X: -60, Y: 30}})
	assert.Equal(t, []string{"loose", "card1", "card0"}, names(g.Cards()))
	loose.Release(PointerEvent{})
	assert.Nil(t, g.Dragging())
	assert.Equal(t, 0, draggingCards(g))
}

func TestGroupLogsCardIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g, cards := newTestGroup(2, WithLogger(logger))

	cards[0].Press(PointerEvent{Pos: cards[0].Position()})
	cards[0].Move(PointerEvent{Pos: Vec2{X: 40}})
	g.Remove(cards[1])

	out := buf.String()
	assert.Contains(t, out, "registered card")
	assert.Contains(t, out, "swapped cards")
	assert.Contains(t, out, "removed card")
	assert.Contains(t, out, cards[0].ID().String())
	assert.Contains(t, out, cards[1].ID().String())
}

func TestRemove(t *testing.T) {
	g, cards := newTestGroup(3)
	v := cards[1].Visual()
	cards[1].Press(PointerEvent{Pos: cards[1].Position()})
	require.Same(t, cards[1], g.Dragging())

	assert.True(t, g.Remove(cards[1]))
	assert.False(t, g.Remove(cards[1]))
	assert.Nil(t, g.Dragging())
	assert.True(t, v.Destroyed())
	assert.Nil(t, cards[1].Visual())
	assert.Equal(t, -1, cards[1].SlotIndex())
	assert.Equal(t, []string{"card0", "card2"}, names(g.Cards()))
	assert.Equal(t, -25.0, cards[0].Position().X)
	assert.Len(t, g.PaintOrder(), 2)
}

func TestReorderRequiresDraggingCard(t *testing.T) {
	g, cards := newTestGroup(3)
	cards[0].SetPosition(Vec2{X: 100})
	assert.False(t, g.Reorder())
	assert.Equal(t, []string{"card0", "card1", "card2"}, names(g.Cards()))
}

func TestReorderDisabled(t *testing.T) {
	g, cards := newTestGroup(3, WithReorder(false))
	cards[0].Press(PointerEvent{Pos: cards[0].Position()})
	cards[0].Move(PointerEvent{Pos: Vec2{X: 100}})
	assert.False(t, g.Reorder())
	assert.Equal(t, []string{"card0", "card1", "card2"}, names(g.Cards()))
}

func TestDragAcrossHand(t *testing.T) {
	g, cards := newTestGroup(3)
	c := cards[0]

	c.Press(PointerEvent{Pos: c.Position()})
	c.Move(PointerEvent{Pos: Vec2{X: 10}})
	assert.Equal(t, []string{"card1", "card0", "card2"}, names(g.Cards()))
	assert.Equal(t, 1, c.SlotIndex())
	assert.Equal(t, 10.0, c.Position().X)
	assert.Equal(t, Vec2{X: -50}, cards[1].Position())

	c.Move(PointerEvent{Pos: Vec2{X: 60}})
	assert.Equal(t, []string{"card1", "card2", "card0"}, names(g.Cards()))

	c.Release(PointerEvent{Pos: Vec2{X: 60}})
	assert.Equal(t, Vec2{X: 50}, c.Position())
	assert.False(t, c.Selected())
	assert.Nil(t, g.Dragging())
}

func TestDragLeft(t *testing.T) {
	g, cards := newTestGroup(3)
	c := cards[2]
	c.Press(PointerEvent{Pos: c.Position()})
	c.Move(PointerEvent{Pos: Vec2{X: -10}})
	assert.Equal(t, []string{"card0", "card2", "card1"}, names(g.Cards()))
}

func TestReorderSwapsOnePairPerCall(t *testing.T) {
	g, cards := newTestGroup(3)
	c := cards[0]
	c.Press(PointerEvent{Pos: c.Position()})

	before := g.Cards()
	c.Move(PointerEvent{Pos: Vec2{X: 100}})
	after := g.Cards()
	changed := 0
	for i := range before {
		if before[i] != after[i] {
			changed++
		}
	}
	assert.Equal(t, 2, changed)
	assert.Equal(t, []string{"card1", "card0", "card2"}, names(after))

	assert.True(t, g.Reorder())
	assert.Equal(t, []string{"card1", "card2", "card0"}, names(g.Cards()))
	assert.False(t, g.Reorder())
}

func TestReorderSnapsDisplacedCardToRest(t *testing.T) {
	g, cards := newTestGroup(2)
	cards[1].Press(PointerEvent{Pos: cards[1].Position()})
	cards[1].Release(PointerEvent{Pos: cards[1].Position()})
	require.True(t, cards[1].Selected())

	cards[0].Press(PointerEvent{Pos: cards[0].Position()})
	cards[0].Move(PointerEvent{Pos: Vec2{X: 40}})
	assert.Equal(t, []string{"card1", "card0"}, names(g.Cards()))
	assert.Equal(t, Vec2{Y: DefaultSelectionOffset}, cards[1].Local())
}

func TestUpdateClampsDelta(t *testing.T) {
	g, _ := newTestGroup(1)
	g.Update(5)
	assert.InDelta(t, DefaultMaxDelta, g.Now(), 1e-12)
	g.Update(-1)
	assert.InDelta(t, DefaultMaxDelta, g.Now(), 1e-12)
}

func TestCounts(t *testing.T) {
	g, cards := newTestGroup(3)
	cards[0].SetSelected(true)
	cards[2].SetSelected(true)
	sel, total := g.Counts()
	assert.Equal(t, 2, sel)
	assert.Equal(t, 3, total)
}
