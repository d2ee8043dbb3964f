package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"goexplore/domain/core"
	"goexplore/domain/explore"
)

// ANSI styles for the three-way fragment classification. Exact codes are a
// presentation detail; the level tags on fragments are the contract.
const (
	styleReset   = "\x1b[0m"
	styleBold    = "\x1b[1m"
	styleMuted   = "\x1b[90m"
	styleWarning = "\x1b[31m"
)

// Writer renders reports to a stream, optionally teeing the plain text to an
// output file.
type Writer struct {
	out   io.Writer
	tee   io.Writer
	color bool
}

// NewWriter creates a report writer. Styling is applied on out only; the tee
// stream, when set, always receives plain text.
func NewWriter(out io.Writer, color bool) *Writer {
	return &Writer{out: out, color: color}
}

// WithTee returns a copy of the writer that also appends plain report text
// to w.
func (w *Writer) WithTee(tee io.Writer) *Writer {
	return &Writer{out: w.out, tee: tee, color: w.color}
}

// WriteReport renders every fragment of the report in order.
func (w *Writer) WriteReport(report explore.Report) {
	for _, f := range report {
		w.WriteFragment(f)
	}
}

// WriteFragment renders a single fragment with its level style.
func (w *Writer) WriteFragment(f explore.Fragment) {
	text := f.Text
	if w.color {
		switch f.Level {
		case explore.LevelHeader:
			text = styleBold + text + styleReset
		case explore.LevelSkip:
			text = styleMuted + text + styleReset
		case explore.LevelWarning:
			text = styleWarning + text + styleReset
		}
	}
	fmt.Fprintln(w.out, text)
	if w.tee != nil {
		fmt.Fprintln(w.tee, f.Text)
	}
}

// OutputFilePath resolves a user-supplied output path. A path to an existing
// file is used as-is; a path to a directory gets a timestamped report file
// created inside it; anything else is rejected.
func OutputFilePath(path, label string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", core.NewBadOutputPathError(path)
	}
	if info.IsDir() {
		name := fmt.Sprintf("goexplore_%s_%s.txt", label, time.Now().UTC().Format("2006-01-02_15-04-05"))
		return filepath.Join(path, name), nil
	}
	return path, nil
}
