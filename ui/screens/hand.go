package screens

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oklog/ulid/v2"

	"github.com/SvenDH/go-card-hand/config"
	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/ui"
)

const help = "A add  D remove  E effect  S auto spacing  R reorder  F1 debug"

// Hand is the play screen: one hand of cards centred near the bottom of the
// window. Card views are keyed by card ID.
type Hand struct {
	cfg    config.Config
	group  *hand.Group
	views  map[ulid.ULID]*Card
	logger *log.Logger

	sprites *ui.Sprites
	count   *ui.Label
	status  *ui.Label
	help    *ui.Label

	pointer    hand.Vec2
	hasPointer bool
	added      int
}

// NewHand builds the screen with cfg.Window.Cards cards.
func NewHand(cfg config.Config, logger *log.Logger) *Hand {
	if logger == nil {
		logger = log.Default()
	}
	h := &Hand{
		cfg:     cfg,
		views:   make(map[ulid.ULID]*Card),
		logger:  logger,
		sprites: ui.NewSprites(cfg.Window.Sprites, int(cfg.Window.CardW), int(cfg.Window.CardH)),
		count:   &ui.Label{Scale: 2, Centered: true, Background: ui.Colors["dark"]},
		status:  &ui.Label{X: 8, Background: ui.Colors["dark"]},
		help:    &ui.Label{Text: help, X: 8, Color: ui.Colors["beige"]},
	}
	h.group = cfg.NewGroup(hand.WithContainer(h), hand.WithPointer(h), hand.WithLogger(logger))
	for i := 0; i < cfg.Window.Cards; i++ {
		h.AddCard()
	}
	return h
}

func (h *Hand) Group() *hand.Group { return h.group }

// Width implements hand.Container.
func (h *Hand) Width() float64 { return h.cfg.Window.HandWidth }

// PointerPosition implements hand.PointerSource.
func (h *Hand) PointerPosition() (hand.Vec2, bool) { return h.pointer, h.hasPointer }

// AddCard deals a new card at the end of the hand.
func (h *Hand) AddCard() *hand.Card {
	c := h.cfg.NewCard(fmt.Sprintf("card%d", h.added))
	h.added++
	h.group.Register(c)
	h.views[c.ID()] = newCard(h, c)
	return c
}

// RemoveLast takes the rightmost card out of the hand.
func (h *Hand) RemoveLast() {
	cards := h.group.Cards()
	if len(cards) == 0 {
		return
	}
	c := cards[len(cards)-1]
	h.group.Remove(c)
	delete(h.views, c.ID())
}

func (h *Hand) Init() ui.Cmd { return nil }

func (h *Hand) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	switch m := msg.(type) {
	case ui.MouseEvent:
		if m.Action == ui.MouseMotion {
			h.pointer = h.toLayout(m.X, m.Y)
			h.hasPointer = true
		}
	case ui.KeyEvent:
		if !m.Pressed {
			break
		}
		switch m.Key {
		case ebiten.KeyA:
			h.AddCard()
		case ebiten.KeyD:
			h.RemoveLast()
		case ebiten.KeyE:
			if c := h.hovered(); c != nil {
				c.SetInEffect(!c.InEffect())
			}
		case ebiten.KeyS:
			h.group.SetAutoSpacing(!h.group.AutoSpacing())
			h.logger.Info("auto spacing", "on", h.group.AutoSpacing())
		case ebiten.KeyR:
			h.group.SetAllowReorder(!h.group.AllowReorder())
			h.logger.Info("reorder", "on", h.group.AllowReorder())
		}
	case ui.Tick:
		h.group.Update(m.DeltaTime)
		for _, c := range h.group.Cards() {
			h.views[c.ID()].layout()
		}
	}
	return h, nil
}

func (h *Hand) Zones() []*ui.Zone {
	order := h.group.PaintOrder()
	zones := make([]*ui.Zone, 0, len(order))
	for _, v := range order {
		if view, ok := h.views[v.Card().ID()]; ok {
			zones = append(zones, view.zone)
		}
	}
	return zones
}

func (h *Hand) Draw(screen *ebiten.Image) {
	screen.Fill(ui.Colors["felt"])
	for _, v := range h.group.PaintOrder() {
		if view, ok := h.views[v.Card().ID()]; ok {
			view.draw(screen)
		}
	}

	sel, total := h.group.Counts()
	h.count.Text = fmt.Sprintf("%d/%d", sel, total)
	h.count.X = float64(h.cfg.Window.Width) / 2
	h.count.Y = h.cfg.Window.HandY - h.cfg.Window.CardH - 48
	h.count.Draw(screen)

	h.status.Text = fmt.Sprintf("auto spacing: %s  reorder: %s", onOff(h.group.AutoSpacing()), onOff(h.group.AllowReorder()))
	h.status.Y = 8
	h.status.Draw(screen)

	h.help.Y = float64(h.cfg.Window.Height) - 20
	h.help.Draw(screen)
}

func (h *Hand) hovered() *hand.Card {
	for _, c := range h.group.Cards() {
		if c.Hovering() {
			return c
		}
	}
	return nil
}

func (h *Hand) event(m ui.MouseEvent) hand.PointerEvent {
	ev := hand.PointerEvent{Pos: h.toLayout(m.X, m.Y)}
	switch m.Button {
	case ebiten.MouseButtonLeft:
		ev.Button = hand.ButtonPrimary
	case ebiten.MouseButtonRight:
		ev.Button = hand.ButtonSecondary
	default:
		ev.Button = hand.ButtonMiddle
	}
	return ev
}

func (h *Hand) toLayout(x, y float64) hand.Vec2 {
	return hand.Vec2{X: x - float64(h.cfg.Window.Width)/2, Y: h.cfg.Window.HandY - y}
}

func (h *Hand) toScreen(p hand.Vec2) (float64, float64) {
	return p.X + float64(h.cfg.Window.Width)/2, h.cfg.Window.HandY - p.Y
}

func (h *Hand) cardSize() (float64, float64) {
	return h.cfg.Window.CardW, h.cfg.Window.CardH
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
