// Package ui renders query results and NEO details as styled terminal
// tables. The renderers are shared by the query command and the interactive
// explorer's viewport.
package ui

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orbitalmech/neoscope/internal/neo"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — headers, accents
	colorDanger  = lipgloss.Color("#FF5252") // Red — hazardous, errors
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray — de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text

	styleHeader = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleRow    = lipgloss.NewStyle().Foreground(colorWhite)
	styleHazard = lipgloss.NewStyle().Foreground(colorDanger)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleTitle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleError  = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
)

// approachColumns is the header of the approach table.
var approachColumns = []string{"TIME (UTC)", "DIST (au)", "VEL (km/s)", "DESIGNATION", "NAME", "DIAM (km)", "HAZARD"}

// ApproachTable renders the approaches as an aligned, styled table. An empty
// slice renders a muted placeholder line.
func ApproachTable(approaches []*neo.CloseApproach) string {
	if len(approaches) == 0 {
		return styleMuted.Render("(no matching close approaches)") + "\n"
	}

	rows := make([][]string, 0, len(approaches))
	for _, ca := range approaches {
		diameter := "—"
		if ca.NEO.HasDiameter() {
			diameter = fmt.Sprintf("%.3f", ca.NEO.Diameter)
		}
		name := ca.NEO.Name
		if name == "" {
			name = "—"
		}
		hazard := "no"
		if ca.NEO.Hazardous {
			hazard = "YES"
		}
		rows = append(rows, []string{
			ca.TimeString(),
			fmt.Sprintf("%.4f", ca.Distance),
			fmt.Sprintf("%.2f", ca.Velocity),
			ca.NEO.Designation,
			name,
			diameter,
			hazard,
		})
	}

	widths := columnWidths(approachColumns, rows)

	var b strings.Builder
	b.WriteString(styleHeader.Render(formatRow(approachColumns, widths)))
	b.WriteString("\n")
	for i, row := range rows {
		line := formatRow(row, widths)
		if approaches[i].NEO.Hazardous {
			b.WriteString(styleHazard.Render(line))
		} else {
			b.WriteString(styleRow.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// NEODetail renders a single NEO with its approach history.
func NEODetail(n *neo.NearEarthObject, verbose bool) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(n.FullName()))
	b.WriteString("\n")

	diameter := "unknown"
	if !math.IsNaN(n.Diameter) {
		diameter = fmt.Sprintf("%.3f km", n.Diameter)
	}
	hazard := "not potentially hazardous"
	if n.Hazardous {
		hazard = styleHazard.Render("potentially hazardous")
	}
	fmt.Fprintf(&b, "  diameter: %s\n  %s\n", diameter, hazard)
	fmt.Fprintf(&b, "  close approaches: %d\n", len(n.Approaches))

	if verbose && len(n.Approaches) > 0 {
		b.WriteString("\n")
		b.WriteString(ApproachTable(n.Approaches))
	}
	return b.String()
}

// Errorf prints a styled error line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleError.Render("error: ")+fmt.Sprintf(format, args...))
}

// Infof prints a muted informational line to stderr.
func Infof(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleMuted.Render(fmt.Sprintf(format, args...)))
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
