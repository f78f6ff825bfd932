// Package cli renders the application as a sequence of terminal screens.
// The flow is a navigator over an explicit screen stack: pushes descend
// into sub-flows, pops return, and replace resets the stack root so that
// crossing an auth boundary leaves no history behind it.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// Screen is one step of the flow. Run interacts with the user once and
// drives the navigator before returning; the navigator then re-runs
// whatever screen is on top. Returning a non-nil error ends the session.
type Screen interface {
	Name() string
	Run(ctx context.Context) error
}

// Navigator owns the screen stack. It is driven from a single goroutine,
// the one running Run, so it carries no locking.
type Navigator struct {
	logger *slog.Logger
	stack  []Screen
}

func NewNavigator(logger *slog.Logger) *Navigator {
	return &Navigator{logger: logger}
}

// Push descends into a sub-flow. The current screen stays underneath and
// runs again once the pushed screen pops.
func (n *Navigator) Push(screen Screen) {
	n.stack = append(n.stack, screen)
	n.logger.Debug("screen pushed", slog.String("screen", screen.Name()), slog.Int("depth", len(n.stack)))
}

// Pop returns to the screen underneath. Popping an empty stack is a no-op.
func (n *Navigator) Pop() {
	if len(n.stack) == 0 {
		return
	}

	top := n.stack[len(n.stack)-1]
	n.stack[len(n.stack)-1] = nil
	n.stack = n.stack[:len(n.stack)-1]
	n.logger.Debug("screen popped", slog.String("screen", top.Name()), slog.Int("depth", len(n.stack)))
}

// Replace resets the stack to screen as its only entry. Used when crossing
// the auth boundary in either direction, so the back path cannot lead into
// the other side of it.
func (n *Navigator) Replace(screen Screen) {
	n.stack = n.stack[:0]
	n.stack = append(n.stack, screen)
	n.logger.Debug("stack replaced", slog.String("screen", screen.Name()))
}

// Quit empties the stack, ending Run after the current screen returns.
func (n *Navigator) Quit() {
	n.stack = n.stack[:0]
	n.logger.Debug("navigator quit")
}

// Depth reports the current stack size.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Current returns the screen on top of the stack, or nil when empty.
func (n *Navigator) Current() Screen {
	if len(n.stack) == 0 {
		return nil
	}

	return n.stack[len(n.stack)-1]
}

// Run loops over the top of the stack until it empties or ctx ends. An
// io.EOF from a screen means the input stream closed and is treated as a
// normal quit.
func (n *Navigator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		default:
		}

		top := n.Current()
		if top == nil {
			return nil
		}

		if err := top.Run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Wrapf(err, "screen %s failed", top.Name())
		}
	}
}
