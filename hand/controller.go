package hand

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a pointer position on the layout plane and the button
// involved, if any.
type PointerEvent struct {
	Pos    Vec2
	Button Button
}

// PointerHandler receives the pointer events of one card.
type PointerHandler interface {
	Press(ev PointerEvent)
	Move(ev PointerEvent)
	Release(ev PointerEvent)
	Enter(ev PointerEvent)
	Exit(ev PointerEvent)
}

var _ PointerHandler = (*Card)(nil)

// Press starts a drag gesture. Only the primary button drags, and only one
// card of a group can be dragged at a time.
func (c *Card) Press(ev PointerEvent) {
	if ev.Button != ButtonPrimary || c.dragging {
		return
	}
	g := c.group
	if g != nil && g.dragging != nil && g.dragging != c {
		return
	}

	c.offset = ev.Pos.Sub(c.Position())
	c.pressPos = ev.Pos
	c.dragging = true
	c.wasDragged = false

	if c.visual != nil {
		c.visual.onPress()
	}
	if g == nil {
		c.logDetached("press")
		return
	}
	g.dragging = c
	g.Reorder()
	g.restack()
}

// Move follows the pointer while dragging.
func (c *Card) Move(ev PointerEvent) {
	if !c.dragging {
		return
	}
	if !c.wasDragged && ev.Pos.Sub(c.pressPos).Len() > c.DragDeadZone {
		c.wasDragged = true
	}
	c.SetPosition(ev.Pos.Sub(c.offset))

	if c.group == nil {
		c.logDetached("move")
		return
	}
	c.group.Reorder()
}

// Release ends the gesture. A release without drag motion toggles the
// selection; the card then snaps back to its rest offset.
func (c *Card) Release(ev PointerEvent) {
	if ev.Button != ButtonPrimary || !c.dragging {
		return
	}
	if !c.wasDragged {
		c.selected = !c.selected
	}
	c.dragging = false
	c.wasDragged = false
	c.local = c.rest()

	if c.visual != nil {
		c.visual.onRelease()
	}
	g := c.group
	if g == nil {
		c.logDetached("release")
		return
	}
	if g.dragging == c {
		g.dragging = nil
	}
	g.Reorder()
	g.restack()
}

// Enter marks the card hovered unless any card of the group is dragging.
func (c *Card) Enter(ev PointerEvent) {
	if c.group != nil && c.group.dragging != nil {
		return
	}
	c.hovering = true
	if c.visual != nil {
		c.visual.onEnter()
	}
}

func (c *Card) Exit(ev PointerEvent) {
	c.hovering = false
	if c.visual != nil {
		c.visual.onExit()
	}
}
