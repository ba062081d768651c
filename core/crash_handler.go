package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores an output device, typically tcell.Screen
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher
	exit        = os.Exit
)

// SetCrashScreen registers the screen to restore before a crash report is printed
// Pass nil once the screen has been finalized normally
func SetCrashScreen(s Finisher) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing to it
	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash restores the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
