package screens

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvenDH/go-card-hand/config"
	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/ui"
)

func newTestHand(t *testing.T, cards int) *Hand {
	t.Helper()
	cfg := config.Default()
	cfg.Window.Cards = cards
	return NewHand(cfg, nil)
}

func TestCoordinateRoundTrip(t *testing.T) {
	h := newTestHand(t, 0)
	p := h.toLayout(480, 420)
	assert.Equal(t, hand.Vec2{}, p)

	p = h.toLayout(500, 400)
	assert.Equal(t, hand.Vec2{X: 20, Y: 20}, p)
	x, y := h.toScreen(p)
	assert.Equal(t, 500.0, x)
	assert.Equal(t, 400.0, y)
}

func TestZonesFollowPaintOrder(t *testing.T) {
	h := newTestHand(t, 3)
	zones := h.Zones()
	require.Len(t, zones, 3)
	cards := h.group.Cards()
	for i, z := range zones {
		assert.Same(t, h.views[cards[i].ID()].zone, z)
	}

	h.views[cards[0].ID()].zone.Handle(ui.MouseEvent{Action: ui.MousePress, X: 430, Y: 420})
	zones = h.Zones()
	assert.Same(t, h.views[cards[0].ID()].zone, zones[len(zones)-1])
}

func TestZoneCoversCard(t *testing.T) {
	h := newTestHand(t, 1)
	z := h.Zones()[0]
	assert.Equal(t, 440.0, z.X)
	assert.Equal(t, 364.0, z.Y)
	assert.True(t, z.InBounds(480, 420))
}

func TestDragThroughZones(t *testing.T) {
	h := newTestHand(t, 3)
	cards := h.group.Cards()
	z := h.views[cards[0].ID()].zone

	// cards sit at x = 430, 480 and 530 on screen
	z.Handle(ui.MouseEvent{Action: ui.MousePress, Button: ebiten.MouseButtonLeft, X: 430, Y: 420})
	require.Same(t, cards[0], h.group.Dragging())
	z.Handle(ui.MouseEvent{Action: ui.MouseDragMotion, Button: ebiten.MouseButtonLeft, X: 490, Y: 420})
	assert.Equal(t, []*hand.Card{cards[1], cards[0], cards[2]}, h.group.Cards())

	z.Handle(ui.MouseEvent{Action: ui.MouseRelease, Button: ebiten.MouseButtonLeft, X: 490, Y: 420})
	assert.Nil(t, h.group.Dragging())
	assert.False(t, cards[0].Selected())
}

func TestRightClickDoesNotDrag(t *testing.T) {
	h := newTestHand(t, 1)
	z := h.Zones()[0]
	z.Handle(ui.MouseEvent{Action: ui.MousePress, Button: ebiten.MouseButtonRight, X: 480, Y: 420})
	assert.Nil(t, h.group.Dragging())
}

func TestKeys(t *testing.T) {
	h := newTestHand(t, 2)
	h.Update(ui.KeyEvent{Key: ebiten.KeyA, Pressed: true})
	assert.Equal(t, 3, h.group.Len())
	h.Update(ui.KeyEvent{Key: ebiten.KeyA})
	assert.Equal(t, 3, h.group.Len())

	h.Update(ui.KeyEvent{Key: ebiten.KeyD, Pressed: true})
	assert.Equal(t, 2, h.group.Len())
	assert.Len(t, h.views, 2)

	h.Update(ui.KeyEvent{Key: ebiten.KeyS, Pressed: true})
	assert.True(t, h.group.AutoSpacing())
	h.Update(ui.KeyEvent{Key: ebiten.KeyR, Pressed: true})
	assert.False(t, h.group.AllowReorder())

	c := h.group.Cards()[1]
	h.views[c.ID()].zone.Handle(ui.MouseEvent{Action: ui.MouseEnter})
	h.Update(ui.KeyEvent{Key: ebiten.KeyE, Pressed: true})
	assert.True(t, c.InEffect())
}

func TestViewsFollowCardIDs(t *testing.T) {
	h := newTestHand(t, 2)
	last := h.group.Cards()[1]
	require.Contains(t, h.views, last.ID())
	assert.Same(t, last, h.views[last.ID()].card)

	h.RemoveLast()
	assert.NotContains(t, h.views, last.ID())
	assert.Len(t, h.Zones(), 1)
}

func TestTickMovesZones(t *testing.T) {
	h := newTestHand(t, 1)
	h.Update(ui.KeyEvent{Key: ebiten.KeyA, Pressed: true})
	h.Update(ui.Tick{DeltaTime: 1.0 / 60})
	zones := h.Zones()
	assert.Equal(t, 415.0, zones[0].X)
	assert.Equal(t, 465.0, zones[1].X)
}

func TestPointerFeedsTilt(t *testing.T) {
	h := newTestHand(t, 1)
	_, ok := h.PointerPosition()
	assert.False(t, ok)
	h.Update(ui.MouseEvent{Action: ui.MouseMotion, X: 470, Y: 420})
	p, ok := h.PointerPosition()
	assert.True(t, ok)
	assert.Equal(t, hand.Vec2{X: -10}, p)
}
