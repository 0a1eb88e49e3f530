package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Label draws a line of text with an optional backdrop.
type Label struct {
	Text       string
	X, Y       float64
	Scale      float64
	Color      color.Color
	Background color.Color
	Centered   bool
}

func (w *Label) Init() Cmd { return nil }

func (w *Label) Update(msg Msg) (Model, Cmd) { return w, nil }

func (w *Label) Zones() []*Zone { return nil }

func (w *Label) Size() (float64, float64) {
	width, height := text.Measure(w.Text, face, face.Metrics().HAscent+face.Metrics().HDescent)
	s := w.scale()
	return width * s, height * s
}

func (w *Label) Draw(screen *ebiten.Image) {
	if w.Text == "" {
		return
	}
	s := w.scale()
	width, height := w.Size()
	x, y := w.X, w.Y
	if w.Centered {
		x -= width / 2
	}
	if w.Background != nil {
		vector.DrawFilledRect(screen, float32(x-4), float32(y-2), float32(width+8), float32(height+4), w.Background, false)
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	c := w.Color
	if c == nil {
		c = Colors["light-beige"]
	}
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent
	text.Draw(screen, w.Text, face, op)
}

func (w *Label) scale() float64 {
	if w.Scale <= 0 {
		return 1
	}
	return w.Scale
}
