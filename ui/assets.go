package ui

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const shadowBlur = 6.0

var palette = map[string]string{
	"dark":        "#1b1b24",
	"felt":        "#21452f",
	"light-beige": "#efe3c8",
	"beige":       "#d3c29d",
	"red":         "#b3402f",
	"blue":        "#3a5f9a",
	"yellow":      "#e3b341",
	"green":       "#5d9c59",
	"holo":        "#8fe3ff",
}

// Colors holds the named palette.
var Colors map[string]color.NRGBA

func init() {
	Colors = make(map[string]color.NRGBA, len(palette))
	for name, hex := range palette {
		r, g, b, err := hexToRGB(hex)
		if err != nil {
			log.Fatal("Unable to parse palette color", "name", name, "err", err)
		}
		Colors[name] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
}

func hexToRGB(hex string) (r, g, b uint8, err error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %s", hex)
	}
	r64, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return
	}
	g64, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return
	}
	b64, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return
	}
	return uint8(r64), uint8(g64), uint8(b64), nil
}

// LoadImage reads an image file and resizes it to w x h.
func LoadImage(path string, w, h int) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img, nil
	}
	return transform.Resize(img, w, h, transform.Lanczos), nil
}

// CardFace draws a plain card face with a border in the given colours.
func CardFace(w, h int, fill, border color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fill
			if x < 3 || y < 3 || x >= w-3 || y >= h-3 {
				c = border
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// HologramFace draws a translucent diagonal sheen.
func HologramFace(w, h int, tint color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := (x + y) % 24
			if d < 6 {
				c := tint
				c.A = uint8(90 - d*12)
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// Shadow returns a blurred silhouette padded by the blur radius on every side.
func Shadow(w, h int) image.Image {
	pad := int(shadowBlur * 2)
	img := image.NewNRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))
	for y := pad; y < h+pad; y++ {
		for x := pad; x < w+pad; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 140})
		}
	}
	return blur.Gaussian(img, shadowBlur)
}

// Sprites caches card layer images by name.
type Sprites struct {
	Dir  string
	W, H int

	images map[string]*ebiten.Image
	failed map[string]bool
	shadow *ebiten.Image
}

func NewSprites(dir string, w, h int) *Sprites {
	return &Sprites{Dir: dir, W: w, H: h, images: map[string]*ebiten.Image{}, failed: map[string]bool{}}
}

// Get returns the sprite for name, loading it from Dir on first use. Missing
// files fall back to a generated face and are reported once.
func (s *Sprites) Get(name string, fallback func(w, h int) image.Image) *ebiten.Image {
	if img, ok := s.images[name]; ok {
		return img
	}
	var src image.Image
	if s.Dir != "" && !s.failed[name] {
		img, err := LoadImage(filepath.Join(s.Dir, name), s.W, s.H)
		if err != nil {
			s.failed[name] = true
			log.Warn("using generated sprite", "sprite", name, "err", err)
		} else {
			src = img
		}
	}
	if src == nil {
		src = fallback(s.W, s.H)
	}
	img := ebiten.NewImageFromImage(src)
	s.images[name] = img
	return img
}

func (s *Sprites) Shadow() *ebiten.Image {
	if s.shadow == nil {
		s.shadow = ebiten.NewImageFromImage(Shadow(s.W, s.H))
	}
	return s.shadow
}
