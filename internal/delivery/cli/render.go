package cli

import (
	"fmt"
	"strings"

	"agrodoctor/internal/domain/entity"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/infra/theme"
	"agrodoctor/internal/usecase"
)

const severityBarWidth = 20

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// title prints a screen heading in the primary color with an underline.
func (s *Shell) title(text string) {
	colors := s.theme.Colors()
	fmt.Fprintf(s.out, "\n%s%s%s\n%s%s%s\n", colors.Primary, text, colors.Reset,
		colors.Muted, strings.Repeat("=", len(text)), colors.Reset)
}

func (s *Shell) success(text string) {
	colors := s.theme.Colors()
	fmt.Fprintf(s.out, "%s%s%s\n", colors.Secondary, text, colors.Reset)
}

func (s *Shell) warn(text string) {
	colors := s.theme.Colors()
	fmt.Fprintf(s.out, "%s%s%s\n", colors.Warning, text, colors.Reset)
}

// notice renders a failure in the color of its kind: validation problems
// as warnings, everything else as danger.
func (s *Shell) notice(err error) {
	colors := s.theme.Colors()
	color := colors.Danger
	if domainerrors.KindOf(err) == domainerrors.KindValidation {
		color = colors.Warning
	}

	fmt.Fprintf(s.out, "%s%s%s\n", color, domainerrors.UserMessage(err), colors.Reset)
}

// option prints one menu entry with its key highlighted.
func (s *Shell) option(key, text string) {
	colors := s.theme.Colors()
	fmt.Fprintf(s.out, "  %s[%s]%s %s\n", colors.Accent, key, colors.Reset, text)
}

func bandColor(band entity.SeverityBand, colors theme.Palette) string {
	switch band {
	case entity.SeverityLow:
		return colors.Secondary
	case entity.SeverityMedium:
		return colors.Warning
	default:
		return colors.Danger
	}
}

// severityLine renders a severity percentage as a filled bar in the band's
// color, e.g. "[#############.......] 62.5% (medium)".
func (s *Shell) severityLine(severity float64) string {
	colors := s.theme.Colors()
	band := entity.BandOf(severity)

	filled := int(severity / 100 * severityBarWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > severityBarWidth {
		filled = severityBarWidth
	}

	bar := strings.Repeat("#", filled) + strings.Repeat(".", severityBarWidth-filled)

	return fmt.Sprintf("%s[%s] %.1f%% (%s)%s", bandColor(band, colors), bar, severity, band, colors.Reset)
}

// renderOutbreakMap draws the projected hotspot grid. Dangerous hotspots
// render as X in the danger color, the rest as o. Overlapping markers keep
// the more severe glyph.
func renderOutbreakMap(grid *usecase.OutbreakMap, colors theme.Palette) string {
	type cell struct {
		glyph rune
		color string
	}

	cells := make([][]cell, grid.Height)
	for row := range cells {
		cells[row] = make([]cell, grid.Width)
		for col := range cells[row] {
			cells[row][col] = cell{glyph: '.', color: colors.Muted}
		}
	}

	for _, marker := range grid.Markers {
		current := cells[marker.Row][marker.Col]
		if current.glyph == 'X' {
			continue
		}

		drawn := cell{glyph: 'o', color: colors.Warning}
		if marker.Hotspot.Band() == entity.SeverityHigh {
			drawn = cell{glyph: 'X', color: colors.Danger}
		}
		cells[marker.Row][marker.Col] = drawn
	}

	var sb strings.Builder
	border := strings.Repeat("-", grid.Width)
	fmt.Fprintf(&sb, "%s+%s+%s\n", colors.Muted, border, colors.Reset)
	for _, row := range cells {
		sb.WriteString(colors.Muted + "|" + colors.Reset)
		for _, c := range row {
			sb.WriteString(c.color)
			sb.WriteRune(c.glyph)
			sb.WriteString(colors.Reset)
		}
		sb.WriteString(colors.Muted + "|" + colors.Reset + "\n")
	}
	fmt.Fprintf(&sb, "%s+%s+%s\n", colors.Muted, border, colors.Reset)
	fmt.Fprintf(&sb, "%sN %.3f  S %.3f  W %.3f  E %.3f%s\n",
		colors.Muted, grid.North, grid.South, grid.West, grid.East, colors.Reset)

	return sb.String()
}
