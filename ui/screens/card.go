package screens

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/ui"
)

// Card binds a hand card to its hit zone and draws its visual.
type Card struct {
	card *hand.Card
	hand *Hand
	zone *ui.Zone
}

func newCard(h *Hand, c *hand.Card) *Card {
	v := &Card{card: c, hand: h}
	v.zone = &ui.Zone{
		Capture: true,
		Enter: func(m ui.MouseEvent) ui.Cmd {
			c.Enter(h.event(m))
			return nil
		},
		Leave: func(m ui.MouseEvent) ui.Cmd {
			c.Exit(h.event(m))
			return nil
		},
		Press: func(m ui.MouseEvent) ui.Cmd {
			c.Press(h.event(m))
			return nil
		},
		Dragged: func(m ui.MouseEvent) ui.Cmd {
			c.Move(h.event(m))
			return nil
		},
		Release: func(m ui.MouseEvent) ui.Cmd {
			c.Release(h.event(m))
			return nil
		},
	}
	v.layout()
	return v
}

// layout places the hit zone over the logical card.
func (v *Card) layout() {
	x, y := v.hand.toScreen(v.card.Position())
	w, h := v.hand.cardSize()
	v.zone.Set(x-w/2, y-h/2, w, h)
}

func (v *Card) draw(screen *ebiten.Image) {
	visual := v.card.Visual()
	if visual == nil {
		return
	}
	pose := visual.Pose()
	s := v.hand.sprites
	w, h := v.hand.cardSize()

	geo := func(offsetX, offsetY float64, img *ebiten.Image) ebiten.GeoM {
		b := img.Bounds()
		var m ebiten.GeoM
		m.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		// tilt foreshortens the card around its centre
		tx := math.Cos(radians(pose.Tilt.Y + pose.Shake.Y))
		ty := math.Cos(radians(pose.Tilt.X + pose.Shake.X))
		m.Scale(pose.Scale*tx, pose.Scale*ty)
		// layout angles are counter-clockwise with Y up
		m.Rotate(-radians(pose.Rotation + pose.Tilt.Z + pose.Shake.Z))
		x, y := v.hand.toScreen(pose.Position)
		m.Translate(x+offsetX, y-pose.Sway+offsetY)
		return m
	}

	shadow := s.Shadow()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM = geo(4, 6, shadow)
	screen.DrawImage(shadow, op)

	skin := v.card.Skin
	layers := pose.Layers
	if !layers.Background && !layers.Foreground && !layers.Hologram {
		layers.Background = true
	}
	if layers.Background {
		img := s.Get(skinName(skin.Background, "background"), face)
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM = geo(0, 0, img)
		if v.card.Selected() {
			op.ColorScale.Scale(1.1, 1.1, 0.9, 1)
		}
		if v.card.InEffect() {
			op.ColorScale.Scale(1, 0.85, 0.75, 1)
		}
		screen.DrawImage(img, op)
	}
	if layers.Foreground {
		img := s.Get(skin.Foreground, face)
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM = geo(0, 0, img)
		screen.DrawImage(img, op)
	}
	if layers.Hologram {
		img := s.Get(skin.Hologram, hologram)
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM = geo(pose.Parallax.X*w*0.2, -pose.Parallax.Y*h*0.2, img)
		op.Blend = ebiten.BlendLighter
		screen.DrawImage(img, op)
	}
}

func face(w, h int) image.Image {
	return ui.CardFace(w, h, ui.Colors["light-beige"], ui.Colors["dark"])
}

func hologram(w, h int) image.Image {
	return ui.HologramFace(w, h, ui.Colors["holo"])
}

func skinName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
