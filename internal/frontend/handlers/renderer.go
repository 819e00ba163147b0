package handlers

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/twodice/internal/frontend/telnet"
	"github.com/cory-johannsen/twodice/internal/frontend/theme"
	"github.com/cory-johannsen/twodice/internal/game/state"
)

// histogramWidth is the printable width of the longest histogram bar.
const histogramWidth = 40

// RenderRollTable formats the rectangular roll history with one column
// per player and one "Roll N" row per round. Absent cells render as "-".
//
// Postcondition: Returns a dimmed placeholder line when the table is empty.
func RenderRollTable(table state.RollTable, th theme.Theme) string {
	if table.Empty() {
		return telnet.Colorize(telnet.Dim, "No rolls yet. Type 'roll' to begin!")
	}

	colWidth := len("Player")
	for _, name := range table.Players {
		if len(name) > colWidth {
			colWidth = len(name)
		}
	}

	var b strings.Builder
	b.WriteString(telnet.Colorize(th.Title, "=== Roll History ==="))
	b.WriteString("\r\n")

	// Header row
	b.WriteString(fmt.Sprintf("%-9s", ""))
	for _, name := range table.Players {
		b.WriteString(telnet.Colorf(th.Accent, " %*s", colWidth, name))
	}
	b.WriteString("\r\n")

	for r, row := range table.Rows {
		b.WriteString(fmt.Sprintf("%-9s", fmt.Sprintf("Roll %d", r+1)))
		for _, cell := range row {
			if cell.Absent {
				b.WriteString(fmt.Sprintf(" %*s", colWidth, "-"))
			} else {
				b.WriteString(fmt.Sprintf(" %*d", colWidth, cell.Sum))
			}
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

// RenderHistogram formats the sum-frequency table as a horizontal bar
// chart, sums 2 through 12 top to bottom, bars scaled to the largest
// count.
//
// Postcondition: Returns a dimmed placeholder line when no rolls exist.
func RenderHistogram(freqs []state.Frequency, th theme.Theme) string {
	maxCount := 0
	for _, f := range freqs {
		if f.Count > maxCount {
			maxCount = f.Count
		}
	}
	if maxCount == 0 {
		return telnet.Colorize(telnet.Dim, "Roll some dice to see the distribution!")
	}

	var b strings.Builder
	b.WriteString(telnet.Colorize(th.Title, "=== Distribution of Rolls ==="))
	b.WriteString("\r\n")
	for _, f := range freqs {
		width := f.Count * histogramWidth / maxCount
		bar := strings.Repeat("#", width)
		b.WriteString(fmt.Sprintf("%2d %s %d\r\n",
			f.Sum, telnet.Colorize(th.Bar, bar), f.Count))
	}
	return b.String()
}

// RenderStatus formats the one-line game summary: distribution, whose
// turn is next, and the total roll count.
func RenderStatus(g *state.Game, th theme.Theme) string {
	var b strings.Builder
	b.WriteString(telnet.Colorf(th.Info, "Distribution: %s", g.Distribution))
	b.WriteString("\r\n")
	b.WriteString(telnet.Colorf(th.Accent, "Current turn: %s", g.CurrentPlayer()))
	b.WriteString("\r\n")
	b.WriteString(fmt.Sprintf("Total rolls: %d", g.TotalRolls()))
	return b.String()
}
