package player

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel/core"
)

// Command is a playback request from the user
type Command int

const (
	CmdQuit Command = iota
	CmdResize
	CmdTogglePause
	CmdReset
)

func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdResize:
		return "resize"
	case CmdTogglePause:
		return "pause"
	case CmdReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Translate maps a terminal event to a command
// Esc, Ctrl-C and q quit; space toggles pause; r rewinds
func Translate(ev tcell.Event) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return CmdQuit, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return CmdQuit, true
			case ' ':
				return CmdTogglePause, true
			case 'r', 'R':
				return CmdReset, true
			}
		}
	case *tcell.EventResize:
		return CmdResize, true
	}
	return 0, false
}

// TerminalEvents polls screen in the background and forwards recognised events
// The channel closes when the screen is finalized
func TerminalEvents(screen tcell.Screen) <-chan Command {
	out := make(chan Command, 16)
	core.Go(func() {
		defer close(out)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if cmd, ok := Translate(ev); ok {
				out <- cmd
			}
		}
	})
	return out
}
