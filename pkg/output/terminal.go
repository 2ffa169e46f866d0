// Package output writes build statistics reports to a terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sgaunet/ci-stats/pkg/stats"
)

// Palette of the chart: fast builds blue, average white, slow red.
var (
	colorLow    = lipgloss.Color("#4285F4")
	colorMid    = lipgloss.Color("#FFFFFF")
	colorHigh   = lipgloss.Color("#E05252")
	colorLegend = lipgloss.Color("#626262")
)

const (
	bandCell = " "
	rowCell  = "."
)

// Terminal renders reports as colored text lines.
type Terminal struct {
	w      io.Writer
	band   map[stats.Style]lipgloss.Style
	row    map[stats.Style]lipgloss.Style
	legend lipgloss.Style
}

// NewTerminal creates a terminal sink writing to w.
// Colors are only emitted when w is a color-capable terminal.
func NewTerminal(w io.Writer) *Terminal {
	r := lipgloss.NewRenderer(w)

	row := map[stats.Style]lipgloss.Style{
		stats.StyleLow:  r.NewStyle().Foreground(colorLow),
		stats.StyleMid:  r.NewStyle().Foreground(colorMid),
		stats.StyleHigh: r.NewStyle().Foreground(colorHigh),
	}
	band := make(map[stats.Style]lipgloss.Style, len(row))
	for style, s := range row {
		band[style] = s.Underline(true)
	}

	return &Terminal{
		w:      w,
		band:   band,
		row:    row,
		legend: r.NewStyle().Foreground(colorLegend).Italic(true),
	}
}

// Write prints the report: header band, build rows, footer band and legend.
func (t *Terminal) Write(report *stats.Report) error {
	var sb strings.Builder
	sb.WriteString("\n")

	for _, line := range report.Lines {
		switch line.Kind {
		case stats.LineBand:
			sb.WriteString(t.bar(line.Bar, t.band, bandCell))
		case stats.LineBuild:
			sb.WriteString(t.bar(line.Bar, t.row, rowCell))
			sb.WriteString("\t" + line.Duration)
			sb.WriteString("\t" + line.Started)
		}
		sb.WriteString("\n")
	}

	if report.Legend != "" {
		sb.WriteString(t.legend.Render(report.Legend))
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (t *Terminal) bar(bar stats.Bar, styles map[stats.Style]lipgloss.Style, cell string) string {
	var sb strings.Builder
	for _, seg := range bar {
		if seg.Width <= 0 {
			continue
		}
		sb.WriteString(styles[seg.Style].Render(strings.Repeat(cell, seg.Width)))
	}
	return sb.String()
}
