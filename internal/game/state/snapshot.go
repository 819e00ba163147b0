package state

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cory-johannsen/twodice/internal/game/dice"
)

// Snapshot is the wire representation of a Game: a plain structural
// record with exactly the game's four attributes plus the turn index.
// Sum-count keys are strings on the wire (JSON objects key on strings);
// Decode coerces them back to integers.
type Snapshot struct {
	Players            []string         `json:"players"`
	Distribution       string           `json:"distribution"`
	RollsByPlayer      map[string][]int `json:"rolls_by_player"`
	SumCounts          map[string]int   `json:"sum_counts"`
	CurrentPlayerIndex int              `json:"current_player_index"`
}

// Snapshot captures the game as a Snapshot record suitable for JSON
// encoding. The returned record shares no mutable state with the game.
//
// Postcondition: Decode(Encode(g.Snapshot())) reproduces g field for field.
func (g *Game) Snapshot() Snapshot {
	rolls := make(map[string][]int, len(g.RollsByPlayer))
	for name, history := range g.RollsByPlayer {
		rolls[name] = append([]int{}, history...)
	}

	counts := make(map[string]int, len(g.SumCounts))
	for sum, count := range g.SumCounts {
		counts[strconv.Itoa(sum)] = count
	}

	return Snapshot{
		Players:            append([]string(nil), g.Players...),
		Distribution:       g.Distribution.String(),
		RollsByPlayer:      rolls,
		SumCounts:          counts,
		CurrentPlayerIndex: g.CurrentPlayerIndex,
	}
}

// Encode serializes the snapshot as JSON.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a JSON snapshot and reconstructs the Game. The decode is
// an explicit step: the distribution tag must parse, sum-count keys must
// coerce to integers in [2,12], and the turn index must be in range.
// Player-name uniqueness is NOT re-checked; decode trusts that the
// snapshot came from a validly constructed game.
//
// Postcondition: Returns a Game with integer-typed sum keys covering
// exactly {2..12}, or a non-nil error for a malformed snapshot.
func Decode(data []byte) (*Game, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s.Restore()
}

// Restore reconstructs a Game from an already-parsed Snapshot record,
// applying the same shape checks as Decode.
func (s Snapshot) Restore() (*Game, error) {
	if len(s.Players) == 0 {
		return nil, fmt.Errorf("decoding snapshot: player list is empty")
	}

	d, err := dice.ParseDistribution(s.Distribution)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil, fmt.Errorf("decoding snapshot: turn index %d out of range for %d players",
			s.CurrentPlayerIndex, len(s.Players))
	}

	counts := make(map[int]int, dice.MaxSum-dice.MinSum+1)
	for sum := dice.MinSum; sum <= dice.MaxSum; sum++ {
		counts[sum] = 0
	}
	for key, count := range s.SumCounts {
		sum, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("decoding snapshot: non-integer sum key %q", key)
		}
		if sum < dice.MinSum || sum > dice.MaxSum {
			return nil, fmt.Errorf("decoding snapshot: sum key %d outside [%d,%d]",
				sum, dice.MinSum, dice.MaxSum)
		}
		counts[sum] = count
	}

	rolls := make(map[string][]int, len(s.Players))
	for _, name := range s.Players {
		rolls[name] = append([]int{}, s.RollsByPlayer[name]...)
	}

	return &Game{
		Players:            append([]string(nil), s.Players...),
		Distribution:       d,
		RollsByPlayer:      rolls,
		SumCounts:          counts,
		CurrentPlayerIndex: s.CurrentPlayerIndex,
	}, nil
}
