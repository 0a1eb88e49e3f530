// Package config holds the TOML presets for the hand, its cards, the visual
// tuning and the play window.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/tween"
)

// EnvPath names the environment variable consulted when no --config flag is given.
const EnvPath = "CARDHAND_CONFIG"

type Config struct {
	Group  Group  `toml:"group"`
	Card   Card   `toml:"card"`
	Visual Visual `toml:"visual"`
	Window Window `toml:"window"`
}

type Group struct {
	Spacing      float64 `toml:"spacing"`
	AutoSpacing  bool    `toml:"auto_spacing"`
	AllowReorder bool    `toml:"allow_reorder"`
	MaxDelta     float64 `toml:"max_delta"`
}

type Card struct {
	SelectionOffset float64   `toml:"selection_offset"`
	DragDeadZone    float64   `toml:"drag_dead_zone"`
	Skin            hand.Skin `toml:"skin"`
}

type Spring struct {
	K float64 `toml:"k"`
	D float64 `toml:"d"`
}

type Visual struct {
	PositionSpeed    float64 `toml:"position_speed"`
	RotationSpeed    float64 `toml:"rotation_speed"`
	RotationAmount   float64 `toml:"rotation_amount"`
	AutoTiltAmount   float64 `toml:"auto_tilt_amount"`
	ManualTiltAmount float64 `toml:"manual_tilt_amount"`
	SwayAmount       float64 `toml:"sway_amount"`
	SwayPhase        float64 `toml:"sway_phase"`

	Rest Spring `toml:"rest"`
	Drag Spring `toml:"drag"`

	MaxSpringRotationAngle float64 `toml:"max_spring_rotation_angle"`
	PullBack               float64 `toml:"pull_back"`

	ScaleOnHover  float64 `toml:"scale_on_hover"`
	ScaleOnDrag   float64 `toml:"scale_on_drag"`
	ScaleDuration float64 `toml:"scale_duration"`
	ScaleEase     string  `toml:"scale_ease"`

	ShakeAngle    float64 `toml:"shake_angle"`
	ShakeDuration float64 `toml:"shake_duration"`
	ShakeVibrato  int     `toml:"shake_vibrato"`

	EffectInterval float64 `toml:"effect_interval"`
}

type Window struct {
	Title     string  `toml:"title"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	HandY     float64 `toml:"hand_y"`
	HandWidth float64 `toml:"hand_width"`
	CardW     float64 `toml:"card_width"`
	CardH     float64 `toml:"card_height"`
	Sprites   string  `toml:"sprites"`
	Cards     int     `toml:"cards"`
}

// Default returns the stock configuration.
func Default() Config {
	v := hand.DefaultVisualSettings()
	return Config{
		Group: Group{
			Spacing:      hand.DefaultSpacing,
			AllowReorder: true,
			MaxDelta:     hand.DefaultMaxDelta,
		},
		Card: Card{
			SelectionOffset: hand.DefaultSelectionOffset,
			DragDeadZone:    hand.DefaultDragDeadZone,
		},
		Visual: Visual{
			PositionSpeed:          v.PositionSpeed,
			RotationSpeed:          v.RotationSpeed,
			RotationAmount:         v.RotationAmount,
			AutoTiltAmount:         v.AutoTiltAmount,
			ManualTiltAmount:       v.ManualTiltAmount,
			SwayAmount:             v.SwayAmount,
			SwayPhase:              v.SwayPhase,
			Rest:                   Spring{K: v.Rest.K, D: v.Rest.D},
			Drag:                   Spring{K: v.Drag.K, D: v.Drag.D},
			MaxSpringRotationAngle: v.MaxSpringRotationAngle,
			PullBack:               v.PullBack,
			ScaleOnHover:           v.ScaleOnHover,
			ScaleOnDrag:            v.ScaleOnDrag,
			ScaleDuration:          v.ScaleDuration,
			ScaleEase:              "outelastic",
			ShakeAngle:             v.ShakeAngle,
			ShakeDuration:          v.ShakeDuration,
			ShakeVibrato:           v.ShakeVibrato,
			EffectInterval:         v.EffectInterval,
		},
		Window: Window{
			Title:     "cardhand",
			Width:     960,
			Height:    540,
			HandY:     420,
			HandWidth: 600,
			CardW:     80,
			CardH:     112,
			Cards:     5,
		},
	}
}

// Load decodes the TOML file at path over the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	if _, ok := tween.Lookup(c.Visual.ScaleEase); !ok {
		return fmt.Errorf("unknown scale_ease %q", c.Visual.ScaleEase)
	}
	if c.Visual.Rest.K <= 0 || c.Visual.Drag.K <= 0 {
		return fmt.Errorf("spring stiffness must be positive")
	}
	if c.Visual.Rest.D < 0 || c.Visual.Drag.D < 0 {
		return fmt.Errorf("spring damping must not be negative")
	}
	if c.Group.MaxDelta <= 0 {
		return fmt.Errorf("max_delta must be positive")
	}
	if c.Visual.EffectInterval <= 0 {
		return fmt.Errorf("effect_interval must be positive")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive")
	}
	return nil
}

// Options maps the group section to hand options.
func (g Group) Options() []hand.Option {
	return []hand.Option{
		hand.WithSpacing(g.Spacing),
		hand.WithAutoSpacing(g.AutoSpacing),
		hand.WithReorder(g.AllowReorder),
		hand.WithMaxDelta(g.MaxDelta),
	}
}

// Settings maps the visual section to hand.VisualSettings. An unknown easing
// falls back to the default.
func (v Visual) Settings() hand.VisualSettings {
	s := hand.DefaultVisualSettings()
	s.PositionSpeed = v.PositionSpeed
	s.RotationSpeed = v.RotationSpeed
	s.RotationAmount = v.RotationAmount
	s.AutoTiltAmount = v.AutoTiltAmount
	s.ManualTiltAmount = v.ManualTiltAmount
	s.SwayAmount = v.SwayAmount
	s.SwayPhase = v.SwayPhase
	s.Rest = hand.Spring{K: v.Rest.K, D: v.Rest.D}
	s.Drag = hand.Spring{K: v.Drag.K, D: v.Drag.D}
	s.MaxSpringRotationAngle = v.MaxSpringRotationAngle
	s.PullBack = v.PullBack
	s.ScaleOnHover = v.ScaleOnHover
	s.ScaleOnDrag = v.ScaleOnDrag
	s.ScaleDuration = v.ScaleDuration
	if ease, ok := tween.Lookup(v.ScaleEase); ok {
		s.ScaleEase = ease
	}
	s.ShakeAngle = v.ShakeAngle
	s.ShakeDuration = v.ShakeDuration
	s.ShakeVibrato = v.ShakeVibrato
	s.EffectInterval = v.EffectInterval
	return s
}

// NewGroup builds a hand from the configuration.
func (c Config) NewGroup(opts ...hand.Option) *hand.Group {
	all := append(c.Group.Options(), hand.WithVisualSettings(c.Visual.Settings()))
	return hand.New(append(all, opts...)...)
}

// NewCard builds a card with the configured offsets and default skin.
func (c Config) NewCard(name string) *hand.Card {
	card := hand.NewCard(name, c.Card.Skin)
	card.SelectionOffset = c.Card.SelectionOffset
	card.DragDeadZone = c.Card.DragDeadZone
	return card
}
