package editor

import (
	"fmt"
	"io"

	"github.com/eleven-am/crudgen/internal/logger"
)

// WriterNotifier prints info messages to Out and errors to Err.
type WriterNotifier struct {
	Out io.Writer
	Err io.Writer
}

func (n *WriterNotifier) Error(msg string) {
	fmt.Fprintf(n.Err, "Error: %s\n", msg)
}

func (n *WriterNotifier) Info(msg string) {
	fmt.Fprintln(n.Out, msg)
}

// LogNotifier reports through a logger
type LogNotifier struct {
	Log logger.Logger
}

func (n *LogNotifier) Error(msg string) {
	n.Log.Error(msg)
}

func (n *LogNotifier) Info(msg string) {
	n.Log.Info(msg)
}

// Recorder keeps every notification; useful when the host shows them later.
type Recorder struct {
	Errors []string
	Infos  []string
}

func (r *Recorder) Error(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *Recorder) Info(msg string) {
	r.Infos = append(r.Infos, msg)
}
