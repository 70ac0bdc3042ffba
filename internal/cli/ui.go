package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cartesian/pkg/pipeline"
)

// stdout receives all status output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// =============================================================================
// Styles
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorCmd    = lipgloss.Color("75")
	colorText   = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings such as the region browser title.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleDim renders secondary text: details, footers, separators.
	StyleDim = lipgloss.NewStyle().Foreground(colorFaint)

	// StyleValue renders paths, class names and setting values.
	StyleValue = lipgloss.NewStyle().Foreground(colorText)

	// StyleNumber renders coordinates, sizes and counts.
	StyleNumber = lipgloss.NewStyle().Foreground(colorAccent)

	styleWarning = lipgloss.NewStyle().Foreground(colorWarn)
	styleKey     = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorCmd)
)

// marker is a one-character status prefix.
type marker struct {
	glyph string
	style lipgloss.Style
}

func (m marker) line(msg string) string { return m.style.Render(m.glyph) + " " + msg }

var (
	markOK   = marker{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	markFail = marker{"✗", lipgloss.NewStyle().Foreground(colorFail)}
	markWarn = marker{"!", lipgloss.NewStyle().Foreground(colorWarn)}
	markInfo = marker{"›", lipgloss.NewStyle().Foreground(colorMuted)}
	markSpin = lipgloss.NewStyle().Foreground(colorAccent)
)

// =============================================================================
// Status lines
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Fprintln(stdout, markOK.line(fmt.Sprintf(format, args...)))
}

func printError(format string, args ...any) {
	fmt.Fprintln(stdout, markFail.line(fmt.Sprintf(format, args...)))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(stdout, markWarn.line(styleWarning.Render(fmt.Sprintf(format, args...))))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(stdout, markInfo.line(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, muted line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written artifact.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// printKeyValue prints one setting of the config command.
func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Render statistics
// =============================================================================

func printStats(stats pipeline.Stats, cached bool) {
	fmt.Fprintln(stdout, statsLine(stats, cached))
}

// statsLine summarizes a render as "  2 series · 14 points · cached".
func statsLine(stats pipeline.Stats, cached bool) string {
	var parts []string
	if stats.SeriesCount > 0 {
		parts = append(parts, fmt.Sprintf("%d series", stats.SeriesCount))
	}
	if stats.PointCount > 0 {
		parts = append(parts, fmt.Sprintf("%d points", stats.PointCount))
	}
	status := lipgloss.NewStyle().Foreground(colorMuted).Render("fresh")
	if cached {
		status = lipgloss.NewStyle().Foreground(colorOK).Render("cached")
	}
	sep := StyleDim.Render(" · ")

	var line strings.Builder
	line.WriteString("  ")
	for _, part := range parts {
		line.WriteString(StyleDim.Render(part))
		line.WriteString(sep)
	}
	line.WriteString(status)
	return line.String()
}
