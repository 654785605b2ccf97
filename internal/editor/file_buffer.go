package editor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

const tempSuffix = ".crudgen.tmp"

// LineRange selects lines Start through End, 1-based and inclusive. The zero
// value selects the whole file.
type LineRange struct {
	Start int
	End   int
}

// IsZero reports whether r selects the whole file.
func (r LineRange) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

func (r LineRange) String() string {
	if r.IsZero() {
		return "all"
	}
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// ParseLineRange parses "START:END" or a single line number.
func ParseLineRange(s string) (LineRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LineRange{}, nil
	}

	startStr, endStr, found := strings.Cut(s, ":")
	if !found {
		endStr = startStr
	}

	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return LineRange{}, fmt.Errorf("invalid line range %q: %w", s, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return LineRange{}, fmt.Errorf("invalid line range %q: %w", s, err)
	}

	r := LineRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return LineRange{}, err
	}

	return r, nil
}

// Validate checks that r is the zero value or satisfies 1 <= Start <= End.
func (r LineRange) Validate() error {
	if r.IsZero() {
		return nil
	}
	if r.Start < 1 || r.End < r.Start {
		return fmt.Errorf("invalid line range %d:%d: need 1 <= START <= END", r.Start, r.End)
	}
	return nil
}

// FileBuffer is an Editor over a file. The file is read once when opened and
// written once by ReplaceAll.
type FileBuffer struct {
	fs    afero.Fs
	path  string
	lines LineRange
	text  string
	mode  os.FileMode
}

// OpenFile loads path from fs. A file that cannot be read is reported as
// ErrNoActiveEditor.
func OpenFile(fs afero.Fs, path string, lines LineRange) (*FileBuffer, error) {
	if err := lines.Validate(); err != nil {
		return nil, err
	}

	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoActiveEditor, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNoActiveEditor, path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoActiveEditor, err)
	}

	return &FileBuffer{
		fs:    fs,
		path:  path,
		lines: lines,
		text:  string(data),
		mode:  info.Mode().Perm(),
	}, nil
}

// Path returns the file the buffer was loaded from.
func (b *FileBuffer) Path() string {
	return b.path
}

// Selection returns the selected lines without the final line terminator.
func (b *FileBuffer) Selection() (string, error) {
	if b.lines.IsZero() {
		return b.text, nil
	}

	lines := strings.SplitAfter(b.text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if b.lines.End > len(lines) {
		return "", fmt.Errorf("line range %s outside %s (%d lines)", b.lines, b.path, len(lines))
	}

	selected := strings.Join(lines[b.lines.Start-1:b.lines.End], "")
	selected = strings.TrimSuffix(selected, "\n")
	return strings.TrimSuffix(selected, "\r"), nil
}

func (b *FileBuffer) FullText() (string, error) {
	return b.text, nil
}

// ReplaceAll writes text to a temporary file next to the target and renames it
// over the target.
func (b *FileBuffer) ReplaceAll(text string) error {
	tmp := b.path + tempSuffix

	if err := afero.WriteFile(b.fs, tmp, []byte(text), b.mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := b.fs.Rename(tmp, b.path); err != nil {
		_ = b.fs.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", b.path, err)
	}

	b.text = text
	b.lines = LineRange{}
	return nil
}
