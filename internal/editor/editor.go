// Package editor runs the CRUD generator against an editing surface.
package editor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoActiveEditor = errors.New("no active editor found")

// Editor is the editing surface a generation runs against.
type Editor interface {
	// Selection returns the selected text.
	Selection() (string, error)
	// FullText returns the whole buffer.
	FullText() (string, error)
	// ReplaceAll replaces the whole buffer in one step.
	ReplaceAll(text string) error
}

// Notifier reports outcomes to the user.
type Notifier interface {
	Error(msg string)
	Info(msg string)
}

// Splice replaces the first occurrence of selected in full with replacement.
// When selected does not occur in full, full is returned unchanged.
func Splice(full, selected, replacement string) string {
	return strings.Replace(full, selected, replacement, 1)
}

// Buffer is an in-memory Editor. The selection is the byte range [Start, End)
// of Text; a zero range selects the whole text.
type Buffer struct {
	Text       string
	Start, End int
}

// NewBuffer returns a Buffer with the whole text selected.
func NewBuffer(text string) *Buffer {
	return &Buffer{Text: text}
}

func (b *Buffer) Selection() (string, error) {
	if b.Start == 0 && b.End == 0 {
		return b.Text, nil
	}
	if b.Start < 0 || b.End > len(b.Text) || b.Start > b.End {
		return "", fmt.Errorf("selection [%d, %d) outside buffer of %d bytes", b.Start, b.End, len(b.Text))
	}
	return b.Text[b.Start:b.End], nil
}

func (b *Buffer) FullText() (string, error) {
	return b.Text, nil
}

func (b *Buffer) ReplaceAll(text string) error {
	b.Text = text
	b.Start, b.End = 0, 0
	return nil
}
