package cli

import (
	"context"
	"strings"
	"testing"

	"agrodoctor/internal/domain/entity"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/infra/theme"
	"agrodoctor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeScreen_GreetsAndNavigates(t *testing.T) {
	shell, out := newTestShell(t, "1\n", Params{})
	shell.nav.Push(newHomeScreen(shell))

	require.NoError(t, shell.nav.Current().Run(context.Background()))

	assert.Contains(t, out.String(), "Welcome back, Farmer One.")
	assert.Equal(t, "upload", shell.nav.Current().Name())
	assert.Equal(t, 2, shell.nav.Depth())
}

func TestHomeScreen_ExpiredTokenForcesLogin(t *testing.T) {
	profile := &fakeProfile{
		meFn: func(context.Context) (*entity.UserProfile, error) {
			return nil, domainerrors.NewServerError(401, "Could not validate credentials")
		},
	}
	session := &fakeSession{state: entity.Authenticated}
	shell, _ := newTestShell(t, "", Params{Profile: profile, Session: session})
	shell.nav.Push(newHomeScreen(shell))

	require.NoError(t, shell.nav.Current().Run(context.Background()))

	assert.Equal(t, 1, session.logoutCalls)
	assert.Equal(t, "login", shell.nav.Current().Name())
}

func TestHomeScreen_ToggleThemeFlipsPalette(t *testing.T) {
	shell, out := newTestShell(t, "t\n", Params{})
	shell.nav.Push(newHomeScreen(shell))

	require.NoError(t, shell.nav.Current().Run(context.Background()))

	assert.Contains(t, out.String(), "Switched to the light theme.")
	assert.False(t, shell.theme.IsDark())
	assert.Equal(t, "home", shell.nav.Current().Name())
}

func TestProfileScreen_SignOutReplacesWithLogin(t *testing.T) {
	session := &fakeSession{state: entity.Authenticated}
	shell, out := newTestShell(t, "s\n", Params{Session: session})
	shell.nav.Push(newHomeScreen(shell))
	shell.nav.Push(newProfileScreen(shell))

	require.NoError(t, shell.nav.Current().Run(context.Background()))

	assert.Equal(t, 1, session.logoutCalls)
	assert.Equal(t, 1, shell.nav.Depth())
	assert.Equal(t, "login", shell.nav.Current().Name())
	assert.Contains(t, out.String(), "(FO) Farmer One")
}

func TestFeedbackScreen_SubmitGoesBack(t *testing.T) {
	var got string
	feedback := &fakeFeedback{
		submitFn: func(_ context.Context, message string) error {
			got = message

			return nil
		},
	}
	shell, out := newTestShell(t, "The outbreak map is very useful.\n", Params{Feedback: feedback})
	shell.nav.Push(newHomeScreen(shell))
	shell.nav.Push(newFeedbackScreen(shell))

	require.NoError(t, shell.nav.Current().Run(context.Background()))

	assert.Equal(t, "The outbreak map is very useful.", got)
	assert.Contains(t, out.String(), "Thank you for your feedback.")
	assert.Equal(t, "home", shell.nav.Current().Name())
}

func TestOutbreakScreen_RendersMarkersAndLegend(t *testing.T) {
	outbreak := &fakeOutbreak{
		mapFn: func(_ context.Context, width, height int) (*usecase.OutbreakMap, error) {
			return &usecase.OutbreakMap{
				Width:  width,
				Height: height,
				Markers: []usecase.OutbreakMarker{
					{Hotspot: entity.Hotspot{DiseaseName: "Late Blight", Severity: 80, Latitude: 28, Longitude: 90}, Col: 0, Row: 0},
					{Hotspot: entity.Hotspot{DiseaseName: "Leaf Rust", Severity: 20, Latitude: 26, Longitude: 92}, Col: width - 1, Row: height - 1},
				},
				West: 90, South: 26, East: 92, North: 28,
			}, nil
		},
	}
	shell, out := newTestShell(t, "\n", Params{Outbreak: outbreak})
	shell.nav.Push(newHomeScreen(shell))
	shell.nav.Push(newOutbreakScreen(shell))

	require.NoError(t, shell.nav.Current().Run(context.Background()))

	assert.Contains(t, out.String(), "Late Blight")
	assert.Contains(t, out.String(), "Leaf Rust")
	assert.Contains(t, out.String(), "dangerous")
	assert.Equal(t, "home", shell.nav.Current().Name())
}

func TestRenderOutbreakMap_GlyphPlacement(t *testing.T) {
	grid := &usecase.OutbreakMap{
		Width:  10,
		Height: 4,
		Markers: []usecase.OutbreakMarker{
			{Hotspot: entity.Hotspot{Severity: 80}, Col: 0, Row: 0},
			{Hotspot: entity.Hotspot{Severity: 20}, Col: 9, Row: 3},
		},
		West: 90, South: 26, East: 92, North: 28,
	}

	// An empty palette renders without escape codes.
	rendered := renderOutbreakMap(grid, theme.Palette{})
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "+----------+", lines[0])
	assert.Equal(t, 'X', rune(lines[1][1]))
	assert.Equal(t, 'o', rune(lines[4][10]))
}

func TestShell_ServeStartsOnLoginWhenSignedOut(t *testing.T) {
	shell, out := newTestShell(t, "q\n", Params{})

	require.NoError(t, shell.Serve(context.Background()))
	assert.Contains(t, out.String(), "AgroDoctor Sign In")
}

func TestShell_ServeStartsOnHomeWhenTokenPersisted(t *testing.T) {
	session := &fakeSession{state: entity.Authenticated}
	shell, out := newTestShell(t, "q\n", Params{Session: session})

	require.NoError(t, shell.Serve(context.Background()))
	assert.Contains(t, out.String(), "Welcome back")
}
