package state_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/twodice/internal/game/dice"
	"github.com/cory-johannsen/twodice/internal/game/state"
)

// TestSnapshot_RoundTrip verifies Decode(Encode(Snapshot(g))) reproduces
// the game field for field, including integer-typed sum keys, after an
// arbitrary sequence of rolls.
func TestSnapshot_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		players := uniquePlayers().Draw(rt, "players")
		d := distribution().Draw(rt, "distribution")
		k := rapid.IntRange(0, 60).Draw(rt, "k")

		g, err := state.New(players, d)
		require.NoError(rt, err)

		src := dice.NewCryptoSource()
		for i := 0; i < k; i++ {
			g.AdvanceTurn(src)
		}

		data, err := g.Snapshot().Encode()
		require.NoError(rt, err)

		restored, err := state.Decode(data)
		require.NoError(rt, err)

		assert.Equal(rt, g.Players, restored.Players)
		assert.Equal(rt, g.Distribution, restored.Distribution)
		assert.Equal(rt, g.RollsByPlayer, restored.RollsByPlayer)
		assert.Equal(rt, g.SumCounts, restored.SumCounts)
		assert.Equal(rt, g.CurrentPlayerIndex, restored.CurrentPlayerIndex)
	})
}

// TestSnapshot_WireKeysAreStrings pins the wire layout: sum counts are
// keyed by decimal strings in the JSON record.
func TestSnapshot_WireKeysAreStrings(t *testing.T) {
	g, err := state.New([]string{"Amy"}, dice.Real)
	require.NoError(t, err)
	g.SumCounts[7] = 3

	data, err := g.Snapshot().Encode()
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &wire))
	require.Contains(t, wire, "sum_counts")

	var counts map[string]int
	require.NoError(t, json.Unmarshal(wire["sum_counts"], &counts))
	assert.Equal(t, 3, counts["7"])
	assert.Len(t, counts, 11)
}

// TestSnapshot_DoesNotAliasGame verifies mutating the game after taking
// a snapshot does not change the snapshot.
func TestSnapshot_DoesNotAliasGame(t *testing.T) {
	g, err := state.New([]string{"Amy", "Bo"}, dice.Uniform)
	require.NoError(t, err)

	snap := g.Snapshot()
	g.AdvanceTurn(dice.NewCryptoSource())

	assert.Empty(t, snap.RollsByPlayer["Amy"])
	assert.Equal(t, 0, snap.SumCounts["7"]+snap.SumCounts["2"]+snap.SumCounts["12"])
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := state.Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecode_EmptyPlayers(t *testing.T) {
	_, err := state.Decode([]byte(`{"players":[],"distribution":"Real","rolls_by_player":{},"sum_counts":{},"current_player_index":0}`))
	assert.Error(t, err)
}

func TestDecode_UnknownDistribution(t *testing.T) {
	_, err := state.Decode([]byte(`{"players":["Amy"],"distribution":"Gaussian","rolls_by_player":{"Amy":[]},"sum_counts":{},"current_player_index":0}`))
	assert.Error(t, err)
}

func TestDecode_TurnIndexOutOfRange(t *testing.T) {
	_, err := state.Decode([]byte(`{"players":["Amy"],"distribution":"Real","rolls_by_player":{"Amy":[]},"sum_counts":{},"current_player_index":1}`))
	assert.Error(t, err)
}

func TestDecode_NonIntegerSumKey(t *testing.T) {
	_, err := state.Decode([]byte(`{"players":["Amy"],"distribution":"Real","rolls_by_player":{"Amy":[]},"sum_counts":{"seven":1},"current_player_index":0}`))
	assert.Error(t, err)
}

func TestDecode_SumKeyOutOfRange(t *testing.T) {
	_, err := state.Decode([]byte(`{"players":["Amy"],"distribution":"Real","rolls_by_player":{"Amy":[]},"sum_counts":{"13":1},"current_player_index":0}`))
	assert.Error(t, err)
}

// TestDecode_FillsMissingSumKeys verifies the decoded game restores the
// full {2..12} key set even when the wire record omits zero buckets.
func TestDecode_FillsMissingSumKeys(t *testing.T) {
	g, err := state.Decode([]byte(`{"players":["Amy"],"distribution":"Uniform","rolls_by_player":{"Amy":[7]},"sum_counts":{"7":1},"current_player_index":0}`))
	require.NoError(t, err)

	assert.Len(t, g.SumCounts, 11)
	assert.Equal(t, 1, g.SumCounts[7])
	assert.Equal(t, 0, g.SumCounts[2])
	assert.Equal(t, []int{7}, g.RollsByPlayer["Amy"])
}

// TestDecode_NoUniquenessRecheck pins the decode contract: duplicate
// player names in a snapshot are accepted as-is, trusting construction
// time validation.
func TestDecode_NoUniquenessRecheck(t *testing.T) {
	g, err := state.Decode([]byte(`{"players":["A","A"],"distribution":"Real","rolls_by_player":{"A":[]},"sum_counts":{},"current_player_index":0}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, g.Players)
}
