package ui

import "github.com/hajimehoshi/ebiten/v2"

// Zone is a rectangular hit area in screen pixels. Pointer events are routed
// to its callbacks by the Program.
type Zone struct {
	X, Y, W, H     float64
	MouseX, MouseY float64
	Capture        bool
	Disabled       bool
	hovered        bool

	Enter   func(msg MouseEvent) Cmd
	Leave   func(msg MouseEvent) Cmd
	Press   func(msg MouseEvent) Cmd
	Moved   func(msg MouseEvent) Cmd
	Dragged func(msg MouseEvent) Cmd
	Release func(msg MouseEvent) Cmd
}

func (z *Zone) Set(x, y, w, h float64) *Zone {
	z.X, z.Y, z.W, z.H = x, y, w, h
	return z
}

func (z *Zone) Hovered() bool { return z.hovered }

func (z *Zone) InBounds(x, y float64) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// Handle runs the callback matching the event.
func (z *Zone) Handle(m MouseEvent) Cmd {
	var f func(MouseEvent) Cmd
	switch m.Action {
	case MouseEnter:
		f = z.Enter
	case MouseLeave:
		f = z.Leave
	case MousePress:
		f = z.Press
	case MouseMotion:
		f = z.Moved
	case MouseDragMotion:
		f = z.Dragged
	case MouseRelease:
		f = z.Release
	}
	if f == nil {
		return nil
	}
	return f(m)
}

// IsPrimary reports whether the event came from the left button.
func (m MouseEvent) IsPrimary() bool { return m.Button == ebiten.MouseButtonLeft }
