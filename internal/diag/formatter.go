package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for diagnostic rendering.
var (
	colorError   = lipgloss.Color("#EF4444") // Red
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorInfo    = lipgloss.Color("#06B6D4") // Cyan
	colorMuted   = lipgloss.Color("#6B7280") // Gray

	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	styleGutter  = lipgloss.NewStyle().Foreground(colorMuted)
	styleHelp    = lipgloss.NewStyle().Foreground(colorInfo)
)

// Formatter renders diagnostics with source excerpts and caret underlines.
type Formatter struct {
	out         io.Writer
	color       bool
	sourceCache map[string]string
}

// NewFormatter creates a formatter writing to out. When color is false all
// styling is suppressed.
func NewFormatter(out io.Writer, color bool) *Formatter {
	if out == nil {
		out = os.Stderr
	}
	return &Formatter{
		out:         out,
		color:       color,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers in-memory source text for a filename so excerpts can be
// rendered without touching the filesystem.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// loadSource returns source for a file, reading from disk on first use.
func (f *Formatter) loadSource(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("no filename")
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

func (f *Formatter) severityStyle(sev Severity) lipgloss.Style {
	switch sev {
	case SeverityWarning:
		return styleWarning
	case SeverityInfo:
		return styleInfo
	default:
		return styleError
	}
}

func (f *Formatter) paint(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}

// Format renders a single diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if d.Span.IsValid() {
		src, err := f.loadSource(d.Span.Filename)
		if err == nil {
			f.printExcerpt(src, d)
		} else {
			fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		}
	}

	f.printFooter(d)
}

// FormatAll renders every diagnostic in order and returns the error count.
func (f *Formatter) FormatAll(diags []Diagnostic) int {
	errs := 0
	for _, d := range diags {
		f.Format(d)
		if d.Severity == SeverityError {
			errs++
		}
	}
	return errs
}

// printHeader prints "error[CODE]: message".
func (f *Formatter) printHeader(d Diagnostic) {
	sev := string(d.Severity)
	if sev == "" {
		sev = string(SeverityError)
	}

	label := sev
	if d.Code != "" {
		label = fmt.Sprintf("%s[%s]", sev, d.Code)
	}

	fmt.Fprintf(f.out, "%s: %s\n", f.paint(f.severityStyle(d.Severity), label), d.Message)
}

// printExcerpt prints the offending source line with a caret underline.
func (f *Formatter) printExcerpt(src string, d Diagnostic) {
	lines := strings.Split(src, "\n")
	lineNum := d.Span.Line
	if lineNum < 1 || lineNum > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		return
	}

	lineContent := lines[lineNum-1]
	gutterWidth := len(fmt.Sprintf("%d", lineNum))

	fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
	fmt.Fprintf(f.out, " %s\n", f.paint(styleGutter, strings.Repeat(" ", gutterWidth)+" |"))
	fmt.Fprintf(f.out, " %s %s\n", f.paint(styleGutter, fmt.Sprintf("%*d |", gutterWidth, lineNum)), lineContent)

	width := d.Span.End - d.Span.Start
	if width < 1 {
		width = 1
	}
	col := d.Span.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(lineContent) {
		col = len(lineContent)
	}
	if col+width > len(lineContent)+1 {
		width = len(lineContent) + 1 - col
		if width < 1 {
			width = 1
		}
	}

	underline := strings.Repeat(" ", col) + strings.Repeat("^", width)
	fmt.Fprintf(f.out, " %s %s\n",
		f.paint(styleGutter, strings.Repeat(" ", gutterWidth)+" |"),
		f.paint(f.severityStyle(d.Severity), underline))
}

// printFooter prints notes and help text.
func (f *Formatter) printFooter(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "%s: %s\n", f.paint(styleHelp, "help"), d.Help)
	}
}
