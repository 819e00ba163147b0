// Package state holds the Two Dice Roll game model: player configuration,
// per-player roll history, the sum-frequency table, and turn order.
package state

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/twodice/internal/game/dice"
)

// ErrInvalidConfiguration is returned when a game is constructed with an
// empty player list or duplicate player names.
var ErrInvalidConfiguration = errors.New("invalid game configuration")

// ErrNoActiveGame is returned when a turn operation is attempted without
// a constructed game. The caller must route back to setup.
var ErrNoActiveGame = errors.New("no active game")

// Game is the state of one dice game session. It is mutated in place by
// AdvanceTurn and discarded on reset; it is not safe for concurrent use
// because each session owns exactly one Game.
//
// Invariant: player names are pairwise distinct.
// Invariant: SumCounts keys are exactly {2..12}; values only ever grow.
// Invariant: the total length of all roll histories equals the total of
// all sum counts.
// Invariant: CurrentPlayerIndex is in [0, len(Players)).
type Game struct {
	// Players is the ordered player list, fixed at creation.
	Players []string
	// Distribution selects how rolls are generated for this game.
	Distribution dice.Distribution
	// RollsByPlayer maps each player name to that player's rolls in
	// chronological order. Append-only.
	RollsByPlayer map[string][]int
	// SumCounts maps each possible sum (2..12) to its occurrence count.
	SumCounts map[int]int
	// CurrentPlayerIndex identifies whose turn is next.
	CurrentPlayerIndex int
}

// New constructs a Game for the given players and distribution.
//
// Precondition: players must be non-empty with pairwise-distinct names
// (case-sensitive); d must be a valid Distribution.
// Postcondition: Every player has an empty history, every sum in 2..12
// has a zero count, and the first player is up. Returns a non-nil error
// wrapping ErrInvalidConfiguration on bad input, with no side effects.
func New(players []string, d dice.Distribution) (*Game, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: player list is empty", ErrInvalidConfiguration)
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: unknown distribution %d", ErrInvalidConfiguration, int(d))
	}

	seen := make(map[string]bool, len(players))
	for _, name := range players {
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate player name %q", ErrInvalidConfiguration, name)
		}
		seen[name] = true
	}

	rolls := make(map[string][]int, len(players))
	for _, name := range players {
		rolls[name] = []int{}
	}

	counts := make(map[int]int, dice.MaxSum-dice.MinSum+1)
	for sum := dice.MinSum; sum <= dice.MaxSum; sum++ {
		counts[sum] = 0
	}

	return &Game{
		Players:            append([]string(nil), players...),
		Distribution:       d,
		RollsByPlayer:      rolls,
		SumCounts:          counts,
		CurrentPlayerIndex: 0,
	}, nil
}

// CurrentPlayer returns the name of the player whose turn is next.
func (g *Game) CurrentPlayer() string {
	return g.Players[g.CurrentPlayerIndex]
}

// TotalRolls returns the number of completed turns across all players.
//
// Postcondition: Return value equals the sum of all SumCounts values.
func (g *Game) TotalRolls() int {
	total := 0
	for _, rolls := range g.RollsByPlayer {
		total += len(rolls)
	}
	return total
}

// AdvanceTurn rolls for the current player and advances turn order.
// The history append, count increment, and index advance are applied
// together; a caller never observes a partial update.
//
// Precondition: src must be non-nil.
// Postcondition: Returns the player who rolled and the sum in [2,12].
// The player's history has grown by one, SumCounts[sum] by one, and
// CurrentPlayerIndex is (old+1) mod len(Players).
func (g *Game) AdvanceTurn(src dice.Source) (player string, sum int) {
	player = g.CurrentPlayer()
	sum = dice.RollSum(g.Distribution, src)

	g.RollsByPlayer[player] = append(g.RollsByPlayer[player], sum)
	g.SumCounts[sum]++
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % len(g.Players)
	return player, sum
}
