// Package theme holds the process-wide light/dark palette. The mode is
// resolved once from the environment at startup and flipped only through
// Toggle; it is never persisted, so every run re-resolves the system
// setting.
package theme

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"agrodoctor/config"
)

// Mode is the active color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Palette is the read-only set of ANSI colors screens render with. It
// mirrors the product colors: deep green primary, red danger.
type Palette struct {
	Text      string
	Primary   string
	Secondary string
	Accent    string
	Danger    string
	Warning   string
	Muted     string
	Reset     string
}

var light = Palette{
	Text:      "\x1b[30m",
	Primary:   "\x1b[32m",
	Secondary: "\x1b[92m",
	Accent:    "\x1b[36m",
	Danger:    "\x1b[31m",
	Warning:   "\x1b[33m",
	Muted:     "\x1b[90m",
	Reset:     "\x1b[0m",
}

var dark = Palette{
	Text:      "\x1b[97m",
	Primary:   "\x1b[92m",
	Secondary: "\x1b[32m",
	Accent:    "\x1b[96m",
	Danger:    "\x1b[91m",
	Warning:   "\x1b[93m",
	Muted:     "\x1b[37m",
	Reset:     "\x1b[0m",
}

// Provider exposes the palette to all screens. Toggle is the only mutator.
type Provider struct {
	mu   sync.RWMutex
	mode Mode
}

// New resolves the initial mode: explicit config first, then the
// environment's reported scheme.
func New(cfg *config.Config) *Provider {
	mode := Mode(strings.ToLower(cfg.Theme.Mode))
	if mode != Light && mode != Dark {
		mode = systemMode()
	}

	return &Provider{mode: mode}
}

// Mode returns the active scheme.
func (p *Provider) Mode() Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.mode
}

// IsDark reports whether the dark palette is active.
func (p *Provider) IsDark() bool {
	return p.Mode() == Dark
}

// Colors returns the palette for the active mode.
func (p *Provider) Colors() Palette {
	if p.IsDark() {
		return dark
	}

	return light
}

// Toggle flips between light and dark without persisting the choice.
func (p *Provider) Toggle() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == Dark {
		p.mode = Light
	} else {
		p.mode = Dark
	}

	return p.mode
}

// systemMode reads the terminal's reported scheme. COLORFGBG carries
// "<fg>;<bg>"; a low background index means a dark terminal. Unknown
// environments default to dark, the common terminal case.
func systemMode() Mode {
	if value := os.Getenv("AGRODOCTOR_THEME"); value != "" {
		if Mode(strings.ToLower(value)) == Light {
			return Light
		}

		return Dark
	}

	if value := os.Getenv("COLORFGBG"); value != "" {
		parts := strings.Split(value, ";")
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil && bg >= 7 {
			return Light
		}
	}

	return Dark
}
