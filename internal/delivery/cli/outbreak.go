package cli

import "context"

const (
	outbreakMapWidth  = 60
	outbreakMapHeight = 16
)

// outbreakScreen draws the regional hotspot map with a legend and the raw
// hotspot list underneath it.
type outbreakScreen struct {
	shell *Shell
}

func newOutbreakScreen(shell *Shell) *outbreakScreen {
	return &outbreakScreen{shell: shell}
}

func (o *outbreakScreen) Name() string { return "outbreak" }

func (o *outbreakScreen) Run(ctx context.Context) error {
	s := o.shell

	grid, err := s.outbreak.Map(ctx, outbreakMapWidth, outbreakMapHeight)
	if err != nil {
		if s.handleAuthFailure(ctx, err) {
			return nil
		}
		s.notice(err)
		s.nav.Pop()

		return nil
	}

	colors := s.theme.Colors()
	s.title("Outbreak Map")
	if len(grid.Markers) == 0 {
		s.printf("No outbreaks reported in your region.\n")
	} else {
		s.printf("%s", renderOutbreakMap(grid, colors))
		s.printf("%sX%s dangerous (severity above 50)   %so%s reported\n",
			colors.Danger, colors.Reset, colors.Warning, colors.Reset)
		for _, marker := range grid.Markers {
			s.printf("  %-28s %s at %.4f, %.4f",
				marker.Hotspot.DiseaseName,
				s.severityLine(marker.Hotspot.Severity),
				marker.Hotspot.Latitude, marker.Hotspot.Longitude)
			if marker.DistanceKm >= 0 {
				s.printf("  %.1f km away", marker.DistanceKm)
			}
			s.printf("\n")
		}
	}
	s.printf("\n")

	if err := s.pause(); err != nil {
		return err
	}

	s.nav.Pop()

	return nil
}
