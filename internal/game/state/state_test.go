package state_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/twodice/internal/game/dice"
	"github.com/cory-johannsen/twodice/internal/game/state"
)

// uniquePlayers generates a non-empty list of distinct player names.
func uniquePlayers() *rapid.Generator[[]string] {
	return rapid.Custom(func(rt *rapid.T) []string {
		n := rapid.IntRange(1, 6).Draw(rt, "n")
		players := make([]string, n)
		for i := range players {
			players[i] = fmt.Sprintf("Player %d", i+1)
		}
		return players
	})
}

func distribution() *rapid.Generator[dice.Distribution] {
	return rapid.SampledFrom([]dice.Distribution{dice.Real, dice.Uniform})
}

// TestNew_Shape verifies that construction yields exactly len(players)
// empty histories and zeroed counts for exactly the sums 2..12.
func TestNew_Shape(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		players := uniquePlayers().Draw(rt, "players")
		d := distribution().Draw(rt, "distribution")

		g, err := state.New(players, d)
		require.NoError(rt, err)

		assert.Len(rt, g.RollsByPlayer, len(players))
		for _, name := range players {
			history, ok := g.RollsByPlayer[name]
			assert.True(rt, ok, "missing history for %q", name)
			assert.Empty(rt, history)
		}

		assert.Len(rt, g.SumCounts, 11)
		for sum := 2; sum <= 12; sum++ {
			count, ok := g.SumCounts[sum]
			assert.True(rt, ok, "missing sum key %d", sum)
			assert.Zero(rt, count)
		}

		assert.Equal(rt, 0, g.CurrentPlayerIndex)
		assert.Equal(rt, players[0], g.CurrentPlayer())
	})
}

func TestNew_DuplicateNames(t *testing.T) {
	_, err := state.New([]string{"A", "A"}, dice.Real)
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrInvalidConfiguration)
}

func TestNew_EmptyPlayerList(t *testing.T) {
	_, err := state.New(nil, dice.Real)
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrInvalidConfiguration)
}

func TestNew_InvalidDistribution(t *testing.T) {
	_, err := state.New([]string{"Amy"}, dice.Distribution(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrInvalidConfiguration)
}

// TestNew_CaseSensitiveNames verifies that names differing only by case
// are distinct players.
func TestNew_CaseSensitiveNames(t *testing.T) {
	g, err := state.New([]string{"amy", "Amy"}, dice.Uniform)
	require.NoError(t, err)
	assert.Len(t, g.RollsByPlayer, 2)
}

// TestNew_CopiesPlayerSlice verifies the game does not alias the
// caller's slice.
func TestNew_CopiesPlayerSlice(t *testing.T) {
	players := []string{"Amy", "Bo"}
	g, err := state.New(players, dice.Real)
	require.NoError(t, err)

	players[0] = "Mallory"
	assert.Equal(t, "Amy", g.Players[0])
}

// TestAdvanceTurn_Cycling verifies that after k rolls on an n-player
// game, CurrentPlayerIndex == k mod n.
func TestAdvanceTurn_Cycling(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		players := uniquePlayers().Draw(rt, "players")
		d := distribution().Draw(rt, "distribution")
		k := rapid.IntRange(0, 50).Draw(rt, "k")

		g, err := state.New(players, d)
		require.NoError(rt, err)

		src := dice.NewCryptoSource()
		for i := 0; i < k; i++ {
			g.AdvanceTurn(src)
		}
		assert.Equal(rt, k%len(players), g.CurrentPlayerIndex)
	})
}

// TestAdvanceTurn_Conservation verifies the conservation law: total
// history length equals the total of all sum counts after any sequence
// of rolls.
func TestAdvanceTurn_Conservation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		players := uniquePlayers().Draw(rt, "players")
		d := distribution().Draw(rt, "distribution")
		k := rapid.IntRange(0, 100).Draw(rt, "k")

		g, err := state.New(players, d)
		require.NoError(rt, err)

		src := dice.NewCryptoSource()
		for i := 0; i < k; i++ {
			player, sum := g.AdvanceTurn(src)
			assert.Contains(rt, players, player)
			assert.GreaterOrEqual(rt, sum, 2)
			assert.LessOrEqual(rt, sum, 12)
		}

		historyTotal := 0
		for _, rolls := range g.RollsByPlayer {
			historyTotal += len(rolls)
		}
		countTotal := 0
		for _, count := range g.SumCounts {
			countTotal += count
		}
		assert.Equal(rt, k, historyTotal)
		assert.Equal(rt, historyTotal, countTotal)
		assert.Equal(rt, k, g.TotalRolls())
	})
}

// TestAdvanceTurn_AmyBoScenario walks the two-player scenario: first
// roll is Amy's, second is Bo's, then the turn returns to Amy.
func TestAdvanceTurn_AmyBoScenario(t *testing.T) {
	g, err := state.New([]string{"Amy", "Bo"}, dice.Uniform)
	require.NoError(t, err)
	require.Equal(t, 0, g.CurrentPlayerIndex)

	src := dice.NewCryptoSource()

	player, _ := g.AdvanceTurn(src)
	assert.Equal(t, "Amy", player)
	assert.Equal(t, 1, g.CurrentPlayerIndex)

	player, _ = g.AdvanceTurn(src)
	assert.Equal(t, "Bo", player)
	assert.Equal(t, 0, g.CurrentPlayerIndex)

	assert.Equal(t, 2, g.TotalRolls())
	assert.Len(t, g.RollsByPlayer["Amy"], 1)
	assert.Len(t, g.RollsByPlayer["Bo"], 1)
}

// TestAdvanceTurn_AppendsInOrder verifies chronological history order
// using a scripted source.
func TestAdvanceTurn_AppendsInOrder(t *testing.T) {
	g, err := state.New([]string{"Amy"}, dice.Uniform)
	require.NoError(t, err)

	// Uniform maps draw v to sum v+2.
	src := &scriptedSource{values: []int{1, 5, 3}}
	for i := 0; i < 3; i++ {
		g.AdvanceTurn(src)
	}
	assert.Equal(t, []int{3, 7, 5}, g.RollsByPlayer["Amy"])
	assert.Equal(t, 1, g.SumCounts[3])
	assert.Equal(t, 1, g.SumCounts[5])
	assert.Equal(t, 1, g.SumCounts[7])
}

// scriptedSource returns a fixed sequence of values.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}
