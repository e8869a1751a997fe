package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 50
	promptPrefix = "> "
)

type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
	tty         bool
}

// NewTerminalUI writes to stdout and reads from stdin. Colours and the
// spinner are only used when stdout is a terminal.
func NewTerminalUI() *TerminalUI {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	return &TerminalUI{
		out: os.Stdout,
		in:  bufio.NewReader(os.Stdin),
		au:  aurora.NewAurora(tty),
		tty: tty,
	}
}

// NewWriterUI is a colourless TerminalUI over arbitrary streams.
func NewWriterUI(out io.Writer, in io.Reader) *TerminalUI {
	return &TerminalUI{
		out: out,
		in:  bufio.NewReader(in),
		au:  aurora.NewAurora(false),
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	case SeverityCritical:
		return u.au.Bold(t.Text).String()
	default:
		return t.Text
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.writeLine(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.writeLine(u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.writeLine(u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.writeLine(u.au.Red(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.writeLine(u.au.Bold(fmt.Sprintf(format, args...)).String())
}

// Section prints "===== title =====" between blank lines.
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - len(titled)
	if bars < 6 {
		bars = 6
	}
	left := bars / 2
	line := strings.Repeat("=", left) + titled + strings.Repeat("=", bars-left)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), line)
}

func (u *TerminalUI) Ask(validate func(string) error) string {
	for {
		fmt.Fprintf(u.out, "%s%s", u.prefix(), promptPrefix)
		text, _ := u.in.ReadString('\n')
		input := strings.TrimRight(text, "\r\n")
		if validate == nil {
			return input
		}
		err := validate(input)
		if err == nil {
			return input
		}
		u.writeLine(u.au.Red(err.Error()).String())
	}
}

func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	options := "[Y/n]"
	if !defaultYes {
		options = "[y/N]"
	}
	u.Info("%s %s", prompt, options)
	input := strings.ToLower(strings.TrimSpace(u.Ask(func(s string) error {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || s == "y" || s == "n" {
			return nil
		}
		return fmt.Errorf("please enter y or n")
	})))
	if input == "" {
		return defaultYes
	}
	return input == "y"
}

// Password falls back to a plain read when stdin is not a terminal.
func (u *TerminalUI) Password(prompt string) string {
	fmt.Fprintf(u.out, "%s%s: ", u.prefix(), prompt)
	fd := int(os.Stdin.Fd())
	if u.tty && term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(u.out)
		if err == nil {
			return string(secret)
		}
	}
	text, _ := u.in.ReadString('\n')
	return strings.TrimRight(text, "\r\n")
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	maxLabel := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > maxLabel {
			maxLabel = w
		}
	}
	p := u.prefix()
	for _, r := range rows {
		fmt.Fprintf(u.out, "%s%s  %s\n", p, runewidth.FillRight(r[0], maxLabel), r[1])
	}
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	u.TableWithGroups(headers, [][][]string{rows})
}

// TableWithGroups draws a box table. Widths ignore ANSI sequences so styled
// cells still line up.
func (u *TerminalUI) TableWithGroups(headers []string, groups [][][]string) {
	if len(groups) == 0 {
		return
	}
	ncols := len(headers)
	for _, g := range groups {
		for _, r := range g {
			if len(r) > ncols {
				ncols = len(r)
			}
		}
	}
	cellWidth := func(s string) int {
		return runewidth.StringWidth(ansi.Strip(s))
	}
	widths := make([]int, ncols)
	grow := func(cells []string) {
		for i := 0; i < ncols && i < len(cells); i++ {
			if w := cellWidth(cells[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	grow(headers)
	for _, g := range groups {
		for _, r := range g {
			grow(r)
		}
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	rule := func(left, mid, right string) string {
		parts := make([]string, ncols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return borderStyle.Render(left + strings.Join(parts, mid) + right)
	}
	bar := borderStyle.Render("│")
	renderRow := func(cells []string) string {
		parts := make([]string, ncols)
		for i := 0; i < ncols; i++ {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			parts[i] = " " + val + strings.Repeat(" ", widths[i]-cellWidth(val)) + " "
		}
		return bar + strings.Join(parts, bar) + bar
	}

	p := u.prefix()
	fmt.Fprintf(u.out, "%s%s\n", p, rule("┌", "┬", "┐"))
	if len(headers) > 0 {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(headers))
		fmt.Fprintf(u.out, "%s%s\n", p, rule("├", "┼", "┤"))
	}
	for gi, g := range groups {
		if gi > 0 {
			fmt.Fprintf(u.out, "%s%s\n", p, rule("├", "┼", "┤"))
		}
		for _, r := range g {
			fmt.Fprintf(u.out, "%s%s\n", p, renderRow(r))
		}
	}
	fmt.Fprintf(u.out, "%s%s\n", p, rule("└", "┴", "┘"))
}

func (u *TerminalUI) Spinner(msg string) func() {
	if !u.tty {
		u.writeLine(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		// the spinner leaves the cursor on its own line
		fmt.Fprintln(u.out)
	}
}

func (u *TerminalUI) Indent() UI {
	return &TerminalUI{
		indentLevel: u.indentLevel + 1,
		out:         u.out,
		in:          u.in,
		au:          u.au,
		tty:         u.tty,
	}
}

// Writer indents every line written through it.
func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
