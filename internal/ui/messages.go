// Package ui renders the tool's terminal output: prefixed status lines,
// per-row progress, and the end-of-run summary.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/purusov/xltools-go/pkg/xltools/models"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	summaryStyle = lipgloss.NewStyle().
			Bold(true)
)

// Out is the destination for status output. Tests swap it.
var Out io.Writer = os.Stdout

// Infof prints an informational "[i]" line.
func Infof(format string, args ...any) {
	fmt.Fprintln(Out, infoStyle.Render("[i] "+fmt.Sprintf(format, args...)))
}

// Errorf prints an error "[!]" line.
func Errorf(format string, args ...any) {
	fmt.Fprintln(Out, errorStyle.Render("[!] "+fmt.Sprintf(format, args...)))
}

// Progressf rewrites the current line with a "[*]" progress message. The
// line is left unterminated so the next write overwrites it.
func Progressf(format string, args ...any) {
	fmt.Fprintf(Out, "\r%s", progressStyle.Render("[*] "+fmt.Sprintf(format, args...)))
}

// EndProgress terminates a progress line before normal output resumes.
func EndProgress() {
	fmt.Fprintln(Out)
}

// Summary prints the merge report.
func Summary(rep *models.Report) {
	fmt.Fprintln(Out, summaryStyle.Render("Summary"))
	Infof("source rows read: %s", humanize.Comma(int64(rep.SourceRows)))
	Infof("destination rows scanned: %s", humanize.Comma(int64(rep.DestRows)))
	Infof("cells updated: %s (exact: %s, fuzzy: %s)",
		humanize.Comma(int64(rep.Updated())),
		humanize.Comma(int64(rep.ExactCount())),
		humanize.Comma(int64(rep.FuzzyCount())))
	Infof("already up to date: %s", humanize.Comma(int64(rep.Unchanged)))
	Infof("skipped: %s", humanize.Comma(int64(rep.Skipped)))
	Infof("elapsed: %s", rep.Elapsed.Round(time.Millisecond))
}
