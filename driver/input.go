package driver

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// KeyCommand maps a key press to a command: q/Esc/Ctrl-C quit, r resets,
// space pauses and n steps once while paused.
func KeyCommand(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CommandQuit, true
		case 'r', 'R':
			return CommandReset, true
		case ' ':
			return CommandTogglePause, true
		case 'n', 'N':
			return CommandStepOnce, true
		}
	}
	return 0, false
}

// PollCommands forwards key presses from the screen as commands until the
// screen is finalized or ctx is cancelled.
func PollCommands(ctx context.Context, screen tcell.Screen, out chan<- Command) error {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			cmd, ok := KeyCommand(ev)
			if !ok {
				continue
			}
			select {
			case out <- cmd:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
