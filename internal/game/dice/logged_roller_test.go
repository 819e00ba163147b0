package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/twodice/internal/game/dice"
)

func TestLoggedRoller_Roll(t *testing.T) {
	logger := zaptest.NewLogger(t)
	src := &scriptedSource{values: []int{2, 4}}
	roller := dice.NewLoggedRoller(src, logger)

	sum := roller.Roll(dice.Real)
	assert.Equal(t, 8, sum)
	assert.Equal(t, 2, src.next, "Real roll must consume two draws")
}

func TestLoggedRoller_Intn_Delegates(t *testing.T) {
	logger := zaptest.NewLogger(t)
	src := &scriptedSource{values: []int{5}}
	roller := dice.NewLoggedRoller(src, logger)
	assert.Equal(t, 5, roller.Intn(6))
}
