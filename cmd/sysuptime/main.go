package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rusenback/sysuptime/internal/system"
)

func main() {
	fd := os.Stdout.Fd()

	a := &app{
		reader:     system.NewReader(),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		now:        time.Now,
		probe:      dockerProbe,
		isTerminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}

	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
