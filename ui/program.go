package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseDragMotion
	MouseEnter
	MouseLeave
)

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseMotion:
		return "motion"
	case MouseDragMotion:
		return "drag"
	case MouseEnter:
		return "enter"
	case MouseLeave:
		return "leave"
	}
	return "unknown"
}

type Msg interface{}

// Tick is sent once per update after input has been dispatched.
type Tick struct {
	DeltaTime float64
}

type MouseEvent struct {
	X, Y       float64
	RelX, RelY float64
	Action     MouseAction
	Button     ebiten.MouseButton
	Zone       *Zone
}

type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

type Cmd func() Msg

// Based on bubbletea model
type Model interface {
	Init() Cmd
	Update(msg Msg) (Model, Cmd)
	Draw(screen *ebiten.Image)
	// Zones lists the hit zones bottom to top.
	Zones() []*Zone
}

type Program struct {
	M             Model
	Width, Height int
	ShowDebug     bool
	DebugKey      ebiten.Key

	lastX, lastY float64
	zones        []*Zone
	captured     *Zone
	initialized  bool
}

func (p *Program) Update() error {
	if !p.initialized {
		p.initialized = true
		p.runUpdate(p.M.Init())
		p.zones = p.M.Zones()
	}
	ix, iy := ebiten.CursorPosition()
	mx, my := float64(ix), float64(iy)
	if mx != p.lastX || my != p.lastY {
		p.hover(mx, my)
		if p.captured != nil {
			p.dispatch(p.captured, MouseDragMotion, mx, my, ebiten.MouseButtonLeft)
		}
		p.runUpdate(MouseEvent{X: mx, Y: my, RelX: mx, RelY: my, Action: MouseMotion})
		p.lastX, p.lastY = mx, my
	}
	for i := range ebiten.MouseButtonMax + 1 {
		b := ebiten.MouseButton(i)
		if inpututil.IsMouseButtonJustPressed(b) {
			p.press(b, mx, my)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			p.release(b, mx, my)
		}
	}
	for i := range ebiten.KeyMax + 1 {
		k := ebiten.Key(i)
		if inpututil.IsKeyJustPressed(k) {
			if p.DebugKey != 0 && k == p.DebugKey {
				p.ShowDebug = !p.ShowDebug
			}
			p.runUpdate(KeyEvent{Key: k, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(k) {
			p.runUpdate(KeyEvent{Key: k})
		}
	}
	p.runUpdate(Tick{DeltaTime: 1 / float64(ebiten.TPS())})
	p.zones = p.M.Zones()
	return nil
}

// hover sends enter and leave events. Only the topmost capturing zone under
// the pointer is hovered.
func (p *Program) hover(mx, my float64) {
	top := p.topZone(mx, my)
	for _, z := range p.zones {
		z.MouseX, z.MouseY = mx-z.X, my-z.Y
		if z == top {
			if !z.hovered {
				z.hovered = true
				p.dispatch(z, MouseEnter, mx, my, 0)
			}
			continue
		}
		if z.hovered {
			z.hovered = false
			p.dispatch(z, MouseLeave, mx, my, 0)
		}
	}
}

func (p *Program) topZone(mx, my float64) *Zone {
	for i := len(p.zones) - 1; i >= 0; i-- {
		z := p.zones[i]
		if z.Capture && !z.Disabled && z.InBounds(mx, my) {
			return z
		}
	}
	return nil
}

func (p *Program) press(b ebiten.MouseButton, mx, my float64) {
	if z := p.topZone(mx, my); z != nil {
		if b == ebiten.MouseButtonLeft {
			p.captured = z
		}
		p.dispatch(z, MousePress, mx, my, b)
	}
	p.runUpdate(MouseEvent{X: mx, Y: my, RelX: mx, RelY: my, Action: MousePress, Button: b})
}

func (p *Program) release(b ebiten.MouseButton, mx, my float64) {
	z := p.captured
	if b == ebiten.MouseButtonLeft {
		p.captured = nil
	} else {
		z = p.topZone(mx, my)
	}
	if z != nil {
		p.dispatch(z, MouseRelease, mx, my, b)
	}
	p.runUpdate(MouseEvent{X: mx, Y: my, RelX: mx, RelY: my, Action: MouseRelease, Button: b})
	// the zone under the pointer may have changed while it was captured
	p.hover(mx, my)
}

func (p *Program) dispatch(z *Zone, action MouseAction, mx, my float64, b ebiten.MouseButton) {
	p.runCmd(z.Handle(MouseEvent{
		X:      mx,
		Y:      my,
		RelX:   mx - z.X,
		RelY:   my - z.Y,
		Action: action,
		Button: b,
		Zone:   z,
	}))
}

func (p *Program) runUpdate(msg Msg) {
	var cmd Cmd
	p.M, cmd = p.M.Update(msg)
	p.runCmd(cmd)
}

func (p *Program) runCmd(cmd Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		p.M, cmd = p.M.Update(msg)
	}
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.M.Draw(screen)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	if p.Width == 0 && p.Height == 0 {
		return outsideW, outsideH
	}
	return p.Width, p.Height
}
