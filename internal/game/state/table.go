package state

import "github.com/cory-johannsen/twodice/internal/game/dice"

// Cell is one slot in the rectangular roll table. Absent marks slots for
// players who have not yet taken that many turns.
type Cell struct {
	Sum    int
	Absent bool
}

// RollTable is the rectangular view of all roll histories: one column per
// player (in player order), one row per completed round.
type RollTable struct {
	// Players are the column headers, in game player order.
	Players []string
	// Rows holds one Cell per player per round. Rows[r][c] is player c's
	// r-th roll, or an Absent cell if they have not reached round r yet.
	Rows [][]Cell
}

// Empty reports whether the table has no rolls at all.
func (t RollTable) Empty() bool {
	return len(t.Rows) == 0
}

// BuildRollTable pads the jagged per-player histories to a rectangle of
// max history length, marking missing slots Absent.
//
// Postcondition: Every row has exactly len(g.Players) cells; a game with
// no rolls yields a table with zero rows.
func (g *Game) BuildRollTable() RollTable {
	table := RollTable{Players: append([]string(nil), g.Players...)}

	rounds := 0
	for _, rolls := range g.RollsByPlayer {
		if len(rolls) > rounds {
			rounds = len(rolls)
		}
	}
	if rounds == 0 {
		return table
	}

	table.Rows = make([][]Cell, rounds)
	for r := 0; r < rounds; r++ {
		row := make([]Cell, len(g.Players))
		for c, name := range g.Players {
			rolls := g.RollsByPlayer[name]
			if r < len(rolls) {
				row[c] = Cell{Sum: rolls[r]}
			} else {
				row[c] = Cell{Absent: true}
			}
		}
		table.Rows[r] = row
	}
	return table
}

// Frequency is one (sum, count) bucket of the frequency table.
type Frequency struct {
	Sum   int
	Count int
}

// BuildFrequencyTable returns the eleven (sum, count) pairs for sums 2
// through 12 in ascending order, mirroring SumCounts.
//
// Postcondition: Returns exactly 11 entries, ordered by Sum ascending.
func (g *Game) BuildFrequencyTable() []Frequency {
	freqs := make([]Frequency, 0, dice.MaxSum-dice.MinSum+1)
	for sum := dice.MinSum; sum <= dice.MaxSum; sum++ {
		freqs = append(freqs, Frequency{Sum: sum, Count: g.SumCounts[sum]})
	}
	return freqs
}
