// Package session tracks connected game sessions. Each session owns an
// independent game; nothing is shared between sessions.
package session

import (
	"fmt"
	"time"

	"github.com/cory-johannsen/twodice/internal/game/dice"
	"github.com/cory-johannsen/twodice/internal/game/state"
)

// Session is one connected client's game context: an optional active
// game plus a single in-memory snapshot slot. The game and slot die with
// the session; nothing is persisted.
//
// A Session is only ever touched by its own connection goroutine, so its
// fields need no locking.
type Session struct {
	// ID is the unique session identifier, for logging.
	ID string
	// RemoteAddr is the client's network address, for logging.
	RemoteAddr string
	// ConnectedAt is when the session was registered.
	ConnectedAt time.Time

	game  *state.Game
	saved []byte
}

// Game returns the active game, or nil when the session is in setup.
func (s *Session) Game() *state.Game {
	return s.game
}

// StartGame constructs a fresh game for the session, replacing any
// previous one.
//
// Precondition: players must be non-empty with distinct names.
// Postcondition: On success the session has an active game at turn zero;
// on error the previous game (if any) is untouched.
func (s *Session) StartGame(players []string, d dice.Distribution) (*state.Game, error) {
	g, err := state.New(players, d)
	if err != nil {
		return nil, err
	}
	s.game = g
	return g, nil
}

// Roll advances the active game by one turn.
//
// Precondition: src must be non-nil.
// Postcondition: Returns the player and rolled sum, or
// state.ErrNoActiveGame when the session is in setup.
func (s *Session) Roll(src dice.Source) (player string, sum int, err error) {
	if s.game == nil {
		return "", 0, state.ErrNoActiveGame
	}
	player, sum = s.game.AdvanceTurn(src)
	return player, sum, nil
}

// Save captures the active game into the session's snapshot slot,
// replacing any earlier snapshot.
//
// Postcondition: Returns state.ErrNoActiveGame when there is no game.
func (s *Session) Save() error {
	if s.game == nil {
		return state.ErrNoActiveGame
	}
	data, err := s.game.Snapshot().Encode()
	if err != nil {
		return err
	}
	s.saved = data
	return nil
}

// Restore replaces the active game with the saved snapshot.
//
// Postcondition: On success the active game matches the snapshot; if no
// snapshot was saved, returns an error and leaves the session untouched.
func (s *Session) Restore() (*state.Game, error) {
	if s.saved == nil {
		return nil, fmt.Errorf("session %s has no saved snapshot", s.ID)
	}
	g, err := state.Decode(s.saved)
	if err != nil {
		return nil, err
	}
	s.game = g
	return g, nil
}

// HasSnapshot reports whether the session holds a saved snapshot.
func (s *Session) HasSnapshot() bool {
	return s.saved != nil
}

// Reset discards the active game, returning the session to setup. The
// snapshot slot survives a reset.
func (s *Session) Reset() {
	s.game = nil
}
