package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/litezip/internal/cli"
	"github.com/vvka-141/litezip/pkg/litezip"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(litezip.ExitPanic)
		}
	}()

	if os.Getenv("LITEZIP_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(litezip.ExitCodeForError(err))
	}
}
