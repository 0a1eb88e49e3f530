package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvenDH/go-card-hand/hand"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cardhand.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultMatchesCore(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	s := cfg.Visual.Settings()
	def := hand.DefaultVisualSettings()
	assert.Equal(t, def.Rest, s.Rest)
	assert.Equal(t, def.Drag, s.Drag)
	assert.Equal(t, def.MaxSpringRotationAngle, s.MaxSpringRotationAngle)
	assert.Equal(t, def.ScaleOnDrag, s.ScaleOnDrag)
	assert.Equal(t, def.EffectInterval, s.EffectInterval)
	assert.NotNil(t, s.ScaleEase)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[group]
spacing = 70
auto_spacing = true

[card]
selection_offset = 35

[card.skin]
background = "bg.png"

[visual.rest]
k = 500
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 70.0, cfg.Group.Spacing)
	assert.True(t, cfg.Group.AutoSpacing)
	assert.True(t, cfg.Group.AllowReorder)
	assert.Equal(t, 35.0, cfg.Card.SelectionOffset)
	assert.Equal(t, "bg.png", cfg.Card.Skin.Background)
	assert.Equal(t, 500.0, cfg.Visual.Rest.K)
	assert.Equal(t, 40.0, cfg.Visual.Rest.D)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[group\nspacing = 1"},
		{"unknown key", "[group]\nspaceing = 1"},
		{"easing", "[visual]\nscale_ease = \"bounce\""},
		{"stiffness", "[visual.drag]\nk = 0"},
		{"window", "[window]\nwidth = -1"},
		{"max delta", "[group]\nmax_delta = 0"},
		{"effect interval", "[visual]\neffect_interval = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Group.Spacing = 64
	cfg.Visual.ScaleEase = "inoutquad"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))

	got, err := Load(writeFile(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestNewGroupAndCard(t *testing.T) {
	cfg := Default()
	cfg.Group.Spacing = 30
	cfg.Card.SelectionOffset = 12
	g := cfg.NewGroup()

	a, b := cfg.NewCard("a"), cfg.NewCard("b")
	g.Register(a)
	g.Register(b)
	assert.Equal(t, 30.0, g.Spacing())
	assert.Equal(t, -15.0, a.Position().X)

	a.SetSelected(true)
	assert.Equal(t, 12.0, a.Position().Y)
}
