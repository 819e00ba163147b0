// Package handlers provides Telnet session handling and the game screens.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/twodice/internal/config"
	"github.com/cory-johannsen/twodice/internal/frontend/telnet"
	"github.com/cory-johannsen/twodice/internal/frontend/theme"
	"github.com/cory-johannsen/twodice/internal/game/dice"
	"github.com/cory-johannsen/twodice/internal/game/session"
)

// errQuit signals a clean client-requested disconnect up the handler stack.
var errQuit = errors.New("client quit")

const welcomeBanner = `
` + telnet.Bold + telnet.BrightCyan + `
  ████████╗██╗    ██╗ ██████╗     ██████╗ ██╗ ██████╗███████╗
  ╚══██╔══╝██║    ██║██╔═══██╗    ██╔══██╗██║██╔════╝██╔════╝
     ██║   ██║ █╗ ██║██║   ██║    ██║  ██║██║██║     █████╗
     ██║   ██║███╗██║██║   ██║    ██║  ██║██║██║     ██╔══╝
     ██║   ╚███╔███╔╝╚██████╔╝    ██████╔╝██║╚██████╗███████╗
     ╚═╝    ╚══╝╚══╝  ╚═════╝     ╚═════╝ ╚═╝ ╚═════╝╚══════╝` + telnet.Reset + `

  Take turns rolling two dice and watch the distribution take shape.
`

const helpText = `Commands:
  roll     roll for the current player
  table    show the roll history table
  chart    show the sum distribution chart
  status   show whose turn it is and the totals
  save     save a snapshot of the game
  restore  restore the saved snapshot
  reset    discard the game and return to setup
  quit     disconnect`

// GameHandler implements telnet.SessionHandler. It walks each client
// through the setup screen and then runs the game screen loop. All game
// state is carried on the client's Session; the handler itself is
// stateless and shared.
type GameHandler struct {
	sessions *session.Manager
	src      dice.Source
	cfg      config.GameConfig
	theme    theme.Theme
	logger   *zap.Logger
}

// NewGameHandler creates a GameHandler.
//
// Precondition: sessions, src, and logger must be non-nil; cfg must have
// passed config validation.
// Postcondition: Returns a GameHandler ready to handle sessions.
func NewGameHandler(
	sessions *session.Manager,
	src dice.Source,
	cfg config.GameConfig,
	th theme.Theme,
	logger *zap.Logger,
) *GameHandler {
	return &GameHandler{
		sessions: sessions,
		src:      src,
		cfg:      cfg,
		theme:    th,
		logger:   logger,
	}
}

// HandleSession implements telnet.SessionHandler. It registers a session,
// shows the welcome banner, and alternates between the setup flow and
// the game loop until the client disconnects.
//
// Postcondition: The session is deregistered when this method returns.
// Returns nil on clean quit.
func (h *GameHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	sess := h.sessions.Add(conn.RemoteAddr().String())
	defer func() {
		_ = h.sessions.Remove(sess.ID)
	}()

	h.logger.Info("session started",
		zap.String("session_id", sess.ID),
		zap.String("remote_addr", sess.RemoteAddr),
		zap.Int("active_sessions", h.sessions.Count()),
	)

	if err := conn.Write([]byte(welcomeBanner)); err != nil {
		return fmt.Errorf("sending welcome: %w", err)
	}

	for {
		if err := h.setupFlow(ctx, conn, sess); err != nil {
			return quitToNil(err)
		}
		if err := h.gameLoop(ctx, conn, sess); err != nil {
			return quitToNil(err)
		}
		// gameLoop returned after a reset; run setup again.
	}
}

// quitToNil maps the clean-quit sentinel to a nil error.
func quitToNil(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// setupFlow walks the client through game configuration: player count,
// player names, and distribution. It loops until a valid game is
// constructed on the session.
//
// Postcondition: On nil return sess.Game() is non-nil and at turn zero.
func (h *GameHandler) setupFlow(ctx context.Context, conn *telnet.Conn, sess *session.Session) error {
	_ = conn.WriteLine(telnet.Colorize(h.theme.Title, "\r\n=== Two Dice Roll Setup ==="))

	for {
		if err := ctx.Err(); err != nil {
			_ = conn.WriteLine(telnet.Colorize(telnet.Yellow, "Server shutting down. Goodbye!"))
			return err
		}

		count, err := h.promptPlayerCount(conn)
		if err != nil {
			return err
		}

		names, err := h.promptPlayerNames(conn, count)
		if err != nil {
			return err
		}

		dist, err := h.promptDistribution(conn)
		if err != nil {
			return err
		}

		if _, err := sess.StartGame(names, dist); err != nil {
			// Duplicate names; re-prompt with no side effects.
			_ = conn.WriteLine(telnet.Colorize(h.theme.Error, "Each player must have a unique name!"))
			continue
		}

		h.logger.Info("game started",
			zap.String("session_id", sess.ID),
			zap.Int("players", count),
			zap.Stringer("distribution", dist),
		)
		_ = conn.WriteLine(telnet.Colorf(h.theme.Info,
			"\r\nGame on! %s distribution, %d player(s). Type 'help' for commands.",
			dist, count))
		return nil
	}
}

// promptPlayerCount asks for the number of players, between 1 and the
// configured maximum. Blank input selects 2 (or the maximum if lower).
func (h *GameHandler) promptPlayerCount(conn *telnet.Conn) (int, error) {
	fallback := 2
	if h.cfg.MaxPlayers < fallback {
		fallback = h.cfg.MaxPlayers
	}

	for {
		_ = conn.WritePrompt(telnet.Colorf(h.theme.Prompt,
			"Number of players [1-%d, default=%d]: ", h.cfg.MaxPlayers, fallback))
		line, err := conn.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("reading player count: %w", err)
		}
		line = strings.TrimSpace(line)
		if isQuit(line) {
			return 0, errQuit
		}
		if line == "" {
			return fallback, nil
		}

		count := 0
		if _, err := fmt.Sscanf(line, "%d", &count); err != nil || count < 1 || count > h.cfg.MaxPlayers {
			_ = conn.WriteLine(telnet.Colorf(h.theme.Error,
				"Enter a number between 1 and %d.", h.cfg.MaxPlayers))
			continue
		}
		return count, nil
	}
}

// promptPlayerNames asks for each player's display name in turn. Blank
// input selects the "Player N" default.
func (h *GameHandler) promptPlayerNames(conn *telnet.Conn, count int) ([]string, error) {
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		fallback := fmt.Sprintf("Player %d", i)
		_ = conn.WritePrompt(telnet.Colorf(h.theme.Prompt,
			"Player %d name [default=%s]: ", i, fallback))
		line, err := conn.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("reading player %d name: %w", i, err)
		}
		line = strings.TrimSpace(line)
		if isQuit(line) {
			return nil, errQuit
		}
		if line == "" {
			line = fallback
		}
		names = append(names, line)
	}
	return names, nil
}

// promptDistribution asks for the dice distribution. Blank input selects
// the configured default.
func (h *GameHandler) promptDistribution(conn *telnet.Conn) (dice.Distribution, error) {
	fallback := h.cfg.Distribution()
	for {
		_ = conn.WriteLine(telnet.Colorize(h.theme.Info,
			"Distributions: Real = two dice (2d6), Uniform = equal chance for all sums."))
		_ = conn.WritePrompt(telnet.Colorf(h.theme.Prompt,
			"Distribution [Real/Uniform, default=%s]: ", fallback))
		line, err := conn.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("reading distribution: %w", err)
		}
		line = strings.TrimSpace(line)
		if isQuit(line) {
			return 0, errQuit
		}
		if line == "" {
			return fallback, nil
		}

		switch strings.ToLower(line) {
		case "r", "real":
			return dice.Real, nil
		case "u", "uniform":
			return dice.Uniform, nil
		default:
			_ = conn.WriteLine(telnet.Colorize(h.theme.Error, "Enter Real or Uniform."))
		}
	}
}

// gameLoop processes game-screen commands until the client quits or
// resets back to setup.
//
// Postcondition: Returns nil after a reset (caller re-enters setup),
// errQuit on clean quit, or a transport error.
func (h *GameHandler) gameLoop(ctx context.Context, conn *telnet.Conn, sess *session.Session) error {
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteLine(telnet.Colorize(telnet.Yellow, "Server shutting down. Goodbye!"))
			return ctx.Err()
		default:
		}

		g := sess.Game()
		if err := conn.WritePrompt(telnet.Colorf(h.theme.Prompt, "[%s] > ", g.CurrentPlayer())); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		line, err := conn.ReadLine()
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue

		case "roll", "r":
			player, sum, err := sess.Roll(h.src)
			if err != nil {
				// The loop only runs with an active game, so this is a
				// handler bug rather than a user error.
				return fmt.Errorf("rolling: %w", err)
			}
			_ = conn.WriteLine(telnet.Colorf(h.theme.Accent, "%s rolled a %d", player, sum))
			h.logger.Debug("turn taken",
				zap.String("session_id", sess.ID),
				zap.String("player", player),
				zap.Int("sum", sum),
			)

		case "table", "t":
			_ = conn.WriteLine(RenderRollTable(g.BuildRollTable(), h.theme))

		case "chart", "c":
			_ = conn.WriteLine(RenderHistogram(g.BuildFrequencyTable(), h.theme))

		case "status", "s":
			_ = conn.WriteLine(RenderStatus(g, h.theme))

		case "save":
			if err := sess.Save(); err != nil {
				_ = conn.WriteLine(telnet.Colorf(h.theme.Error, "Save failed: %v", err))
				continue
			}
			_ = conn.WriteLine(telnet.Colorize(h.theme.Info, "Game saved."))

		case "restore":
			restored, err := sess.Restore()
			if err != nil {
				_ = conn.WriteLine(telnet.Colorf(h.theme.Error, "Restore failed: %v", err))
				continue
			}
			_ = conn.WriteLine(telnet.Colorf(h.theme.Info,
				"Game restored. %d roll(s) on the table.", restored.TotalRolls()))

		case "reset":
			sess.Reset()
			h.logger.Info("game reset", zap.String("session_id", sess.ID))
			_ = conn.WriteLine(telnet.Colorize(h.theme.Info, "Game discarded. Back to setup."))
			return nil

		case "help", "?":
			_ = conn.WriteLine(helpText)

		case "quit", "exit":
			_ = conn.WriteLine(telnet.Colorize(h.theme.Info, "Goodbye."))
			return errQuit

		default:
			_ = conn.WriteLine(telnet.Colorf(h.theme.Error,
				"Unknown command %q. Type 'help' for commands.", strings.TrimSpace(line)))
		}
	}
}

// isQuit reports whether setup input requests a disconnect.
func isQuit(s string) bool {
	lower := strings.ToLower(s)
	return lower == "quit" || lower == "exit"
}
