package config

import (
	"fmt"
	"io"
	"os"
)

// TerminalIO holds the streams commitgram reads messages from and writes
// parse results to. Tests swap them for buffers.
type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultTermIO is the process's real terminal.
var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

func (t *TerminalIO) Printf(msg string, args ...interface{}) {
	fmt.Fprintf(t.Stdout, msg, args...)
}
