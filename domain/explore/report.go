package explore

import (
	"fmt"
	"strings"
)

// Level classifies a report fragment so a presentation layer can style it.
type Level int

const (
	// LevelInfo is a normal finding.
	LevelInfo Level = iota
	// LevelHeader is a section header (dataset or column name).
	LevelHeader
	// LevelSkip is an informational notice that a check declined to run.
	LevelSkip
	// LevelWarning flags a suspicious-value finding.
	LevelWarning
)

// Fragment is one line of an exploration report.
type Fragment struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Report is an ordered sequence of fragments. It is pure output; nothing in
// the pipeline retains it.
type Report []Fragment

// Info formats a normal finding fragment.
func Info(format string, args ...any) Fragment {
	return Fragment{Level: LevelInfo, Text: fmt.Sprintf(format, args...)}
}

// Header formats a section header fragment.
func Header(format string, args ...any) Fragment {
	return Fragment{Level: LevelHeader, Text: fmt.Sprintf(format, args...)}
}

// Warning formats a suspicious-value fragment.
func Warning(format string, args ...any) Fragment {
	return Fragment{Level: LevelWarning, Text: fmt.Sprintf(format, args...)}
}

// Skip formats the notice emitted when a check's precondition does not hold.
func Skip(checkName, reason string) Fragment {
	return Fragment{Level: LevelSkip, Text: fmt.Sprintf("%s skipped. Reason: %s.", checkName, reason)}
}

// Text renders the report as plain text, one fragment per line, with no
// styling. Two reports are equal exactly when their Text output is equal.
func (r Report) Text() string {
	var b strings.Builder
	for _, f := range r {
		b.WriteString(f.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
