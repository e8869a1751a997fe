package ui

import (
	"encoding/json"
	"io"
)

// Severity picks how a piece of inline text is emphasised.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarn
	SeverityError
	SeverityCritical
)

// StyledText is a plain string tagged with a Severity. It marshals to JSON
// as the bare string.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

func Styled(text string, sev Severity) StyledText {
	return StyledText{Text: text, Severity: sev}
}

// UI is everything a contractkit command writes to or reads from the user.
// TerminalUI backs the real binary and RecordingUI backs command tests.
type UI interface {
	// Style renders t for embedding inside a larger line. Without colours the
	// plain text is returned.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error reports a failure. It does not exit.
	Error(format string, args ...any)
	// Critical is for data the user must read before an irreversible action,
	// such as the transaction about to be signed.
	Critical(format string, args ...any)

	Section(title string)

	// KeyValue prints label/value pairs with the values aligned.
	KeyValue(rows [][2]string)
	Table(headers []string, rows [][]string)
	// TableWithGroups separates each group of rows with a divider line.
	TableWithGroups(headers []string, groups [][][]string)

	// Spinner animates msg until the returned stop function is called.
	Spinner(msg string) func()

	Ask(validate func(string) error) string
	Confirm(prompt string, defaultYes bool) bool
	// Password reads a secret without echoing it.
	Password(prompt string) string

	Indent() UI
	Writer() io.Writer
}
