package hand

import (
	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"
)

const (
	DefaultSelectionOffset = 20
	DefaultDragDeadZone    = 4
)

// Skin names the sprites drawn for each layer of a card. Empty means the
// layer is switched off.
type Skin struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Hologram   string `toml:"hologram"`
}

// Layers reports which sprite layers are active.
type Layers struct {
	Background, Foreground, Hologram bool
}

func (s Skin) Layers() Layers {
	return Layers{
		Background: s.Background != "",
		Foreground: s.Foreground != "",
		Hologram:   s.Hologram != "",
	}
}

// Card is the logical card: identity, interaction flags and a transform
// parented to a slot of its group.
type Card struct {
	Name            string
	Skin            Skin
	SelectionOffset float64
	DragDeadZone    float64

	id     ulid.ULID
	logger *log.Logger
	ownLog bool
	group  *Group
	slot   *Slot
	local  Vec2
	visual *Visual

	hovering   bool
	dragging   bool
	selected   bool
	wasDragged bool
	inEffect   bool

	offset   Vec2
	pressPos Vec2
	detached bool
}

func NewCard(name string, skin Skin) *Card {
	return &Card{
		Name:            name,
		Skin:            skin,
		SelectionOffset: DefaultSelectionOffset,
		DragDeadZone:    DefaultDragDeadZone,
		id:              ulid.Make(),
	}
}

func (c *Card) ID() ulid.ULID    { return c.id }
func (c *Card) Group() *Group    { return c.group }
func (c *Card) Visual() *Visual  { return c.visual }
func (c *Card) Hovering() bool   { return c.hovering }
func (c *Card) Dragging() bool   { return c.dragging }
func (c *Card) Selected() bool   { return c.selected }
func (c *Card) WasDragged() bool { return c.wasDragged }
func (c *Card) InEffect() bool   { return c.inEffect }
func (c *Card) Local() Vec2      { return c.local }

// SetInEffect toggles the periodic shake of the card's visual.
func (c *Card) SetInEffect(on bool) { c.inEffect = on }

// SetSelected changes the selection and snaps the card to its rest offset
// unless it is being dragged.
func (c *Card) SetSelected(selected bool) {
	c.selected = selected
	if !c.dragging {
		c.local = c.rest()
	}
}

// SlotIndex returns the index of the card's slot in its group, or -1.
func (c *Card) SlotIndex() int {
	if c.group == nil || c.slot == nil {
		return -1
	}
	for i, s := range c.group.slots {
		if s == c.slot {
			return i
		}
	}
	return -1
}

// Position returns the card's position on the layout plane.
func (c *Card) Position() Vec2 {
	if c.slot == nil {
		return c.local
	}
	return c.slot.Position().Add(c.local)
}

// SetPosition moves the card to p, keeping it parented to its slot.
func (c *Card) SetPosition(p Vec2) {
	if c.slot == nil {
		c.local = p
		return
	}
	c.local = p.Sub(c.slot.Position())
}

func (c *Card) rest() Vec2 {
	if c.selected {
		return Vec2{0, c.SelectionOffset}
	}
	return Vec2{}
}

// SetLogger sets the logger used while the card has no group. A registered
// card without one inherits its group's logger and keeps it after removal.
func (c *Card) SetLogger(l *log.Logger) { c.logger, c.ownLog = l, l != nil }

func (c *Card) logDetached(event string) {
	if c.detached {
		return
	}
	c.detached = true
	logger := c.logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Debug("card has no group, skipping reorder and draw order", "card", c.Name, "id", c.ID(), "event", event)
}

func (c *Card) String() string { return c.Name }
