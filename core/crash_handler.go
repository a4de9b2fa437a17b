package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal to a sane state, tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashOnce     sync.Once

	// Replaced in tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// SetCrashTerminal registers the terminal to finalize before a crash report is printed
func SetCrashTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Concurrent panics from several actors report once
	crashOnce.Do(func() {
		crashMu.Lock()
		t := crashTerminal
		crashMu.Unlock()

		if t != nil {
			t.Fini()
		}

		fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())
	})

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
