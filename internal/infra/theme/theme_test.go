package theme

import (
	"testing"

	"agrodoctor/config"

	"github.com/stretchr/testify/assert"
)

func newConfig(mode string) *config.Config {
	cfg := &config.Config{}
	cfg.Theme.Mode = mode

	return cfg
}

func TestProvider_ExplicitConfigWins(t *testing.T) {
	t.Setenv("AGRODOCTOR_THEME", "dark")

	provider := New(newConfig("light"))
	assert.Equal(t, Light, provider.Mode())
}

func TestProvider_ResolvesFromEnvironment(t *testing.T) {
	t.Setenv("AGRODOCTOR_THEME", "light")

	provider := New(newConfig(""))
	assert.Equal(t, Light, provider.Mode())
}

func TestProvider_ToggleFlipsMode(t *testing.T) {
	provider := New(newConfig("dark"))

	assert.Equal(t, Light, provider.Toggle())
	assert.Equal(t, Dark, provider.Toggle())
}

func TestProvider_PaletteFollowsMode(t *testing.T) {
	provider := New(newConfig("dark"))
	darkPalette := provider.Colors()

	provider.Toggle()
	lightPalette := provider.Colors()

	assert.NotEqual(t, darkPalette.Text, lightPalette.Text)
}

func TestProvider_RestartReResolvesFromSystem(t *testing.T) {
	t.Setenv("AGRODOCTOR_THEME", "light")

	provider := New(newConfig(""))
	provider.Toggle()
	assert.Equal(t, Dark, provider.Mode())

	// A fresh provider models an app restart: the toggle is gone.
	fresh := New(newConfig(""))
	assert.Equal(t, Light, fresh.Mode())
}
