package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// readPassword is swapped out in tests, where no terminal is attached.
var readPassword = term.ReadPassword

// prompt prints a labeled prompt and reads one trimmed line. A closed
// input stream surfaces as io.EOF, which the navigator treats as quit.
func (s *Shell) prompt(label string) (string, error) {
	colors := s.theme.Colors()
	fmt.Fprintf(s.out, "%s%s:%s ", colors.Accent, label, colors.Reset)

	line, err := s.in.ReadString('\n')
	if err != nil {
		return "", errors.WithStack(err)
	}

	return strings.TrimSpace(line), nil
}

// promptSecret reads a line without echoing when stdin is a real terminal.
// Piped and scripted input falls back to a plain read.
func (s *Shell) promptSecret(label string) (string, error) {
	file, ok := s.stdin.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return s.prompt(label)
	}

	colors := s.theme.Colors()
	fmt.Fprintf(s.out, "%s%s:%s ", colors.Accent, label, colors.Reset)

	raw, err := readPassword(int(file.Fd()))
	fmt.Fprintln(s.out)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return strings.TrimSpace(string(raw)), nil
}

// choose reads a menu selection, lowercased so "Q" and "q" match.
func (s *Shell) choose() (string, error) {
	selection, err := s.prompt("Select")
	if err != nil {
		return "", err
	}

	return strings.ToLower(selection), nil
}

// pause blocks until the user presses Enter.
func (s *Shell) pause() error {
	colors := s.theme.Colors()
	fmt.Fprintf(s.out, "%sPress Enter to go back.%s", colors.Muted, colors.Reset)

	_, err := s.in.ReadString('\n')

	return errors.WithStack(err)
}
