package console

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/render"
)

// Board the session opens with, so that moves can be made right away.
const (
	DefaultRows  = 9
	DefaultCols  = 9
	DefaultMines = 10
)

const helpText = `commands:
  n <rows> <cols> [mines]  start a new game
  r <row> <col>            reveal a cell
  f <row> <col>            toggle a flag
  q <row> <col>            toggle a question mark
  h, help                  show this help
  quit, exit               leave the game
several commands can be given on one line separated by ';'`

const newGameHint = "start a new game with n <rows> <cols> [mines]"

type Config struct {
	Out      io.Writer
	Log      logrus.FieldLogger
	Renderer *render.Renderer
	Rand     *rand.Rand // nil seeds a fresh source for every game
	Clock    quartz.Clock
}

// Session is one console run. It owns the current board and turns typed
// commands into calls on it.
type Session struct {
	out    io.Writer
	log    logrus.FieldLogger
	render *render.Renderer
	rand   *rand.Rand
	clock  quartz.Clock

	board   *mines.Board
	gameID  string
	started time.Time
	elapsed time.Duration /* set once the game is over */
}

func NewSession(cfg Config) *Session {
	s := &Session{
		out:    cfg.Out,
		log:    cfg.Log,
		render: cfg.Renderer,
		rand:   cfg.Rand,
		clock:  cfg.Clock,
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.log == nil {
		log := logrus.New()
		log.SetOutput(io.Discard)
		s.log = log
	}
	if s.render == nil {
		s.render = render.New(true)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	return s
}

func (s *Session) Board() *mines.Board { return s.board }

func (s *Session) GameID() string { return s.gameID }

func (s *Session) gameLog() logrus.FieldLogger {
	return s.log.WithField("game_id", s.gameID)
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// NewGame replaces the current board with a fresh random one.
func (s *Session) NewGame(rows, cols, mineCount int) error {
	b, err := mines.New(rows, cols, mineCount, s.rand)
	if err != nil {
		return err
	}
	s.Start(b)
	return nil
}

// Start makes b the current board and restarts the game clock.
func (s *Session) Start(b *mines.Board) {
	s.board = b
	s.gameID = uuid.NewString()
	s.started = s.clock.Now()
	s.elapsed = 0

	s.gameLog().WithFields(logrus.Fields{
		"rows":  b.Rows(),
		"cols":  b.Cols(),
		"mines": b.MineCount(),
	}).Info("new game")

	s.show()
}

func (s *Session) show() {
	v := s.board.Snapshot()
	fmt.Fprint(s.out, s.render.Board(v))
	s.println(s.render.Status(v))
}

// Execute runs every command on the line and reports whether the player
// asked to quit. Processing stops at the first command that cannot be
// parsed.
func (s *Session) Execute(line string) (quit bool) {
	for piece := range splitCommands(line) {
		cmd, err := ParseCommand(piece)
		if err != nil {
			s.log.WithField("command", piece).WithError(err).Debug("bad command")
			s.println(s.render.Error(err.Error()))
			s.println(s.render.Info("type h for help"))
			return false
		}
		if cmd.Kind == Quit {
			s.gameLog().Info("quit")
			return true
		}
		s.run(cmd)
	}
	return false
}

func (s *Session) run(cmd Command) {
	if cmd.Kind == Help {
		s.println(helpText)
		return
	}
	if cmd.Kind == NewGame {
		rows, cols := cmd.Args[0], cmd.Args[1]
		mineCount := mines.DefaultMineCount(rows, cols)
		if len(cmd.Args) == 3 {
			mineCount = cmd.Args[2]
		}
		if err := s.NewGame(rows, cols, mineCount); err != nil {
			s.log.WithError(err).Debug("new game rejected")
			s.println(s.render.Error(err.Error()))
		}
		return
	}

	if s.board == nil {
		s.println(s.render.Error("no game in progress"))
		s.println(s.render.Info(newGameHint))
		return
	}

	row, col := cmd.Args[0], cmd.Args[1]
	log := s.gameLog().WithFields(logrus.Fields{
		"command": cmd.Kind.String(),
		"row":     row,
		"col":     col,
	})

	var err error
	switch cmd.Kind {
	case Reveal:
		var out mines.RevealOutcome
		out, err = s.board.Reveal(row, col)
		if err == nil {
			log.WithFields(logrus.Fields{
				"result":   out.Result.String(),
				"revealed": len(out.Points),
			}).Debug("reveal")
			if out.Result == mines.NoEffect {
				s.println(s.render.Info(fmt.Sprintf(
					"nothing to reveal at %d:%d", row, col,
				)))
			}
		}
	case Flag:
		var out mines.MarkOutcome
		out, err = s.board.Flag(row, col)
		if err == nil {
			log.WithField("visibility", out.Visibility.String()).Debug("flag")
		}
	case Question:
		var out mines.MarkOutcome
		out, err = s.board.Question(row, col)
		if err == nil {
			log.WithField("visibility", out.Visibility.String()).Debug("question")
		}
	}

	if err != nil {
		log.WithError(err).Debug("move rejected")
		s.reportError(err)
		return
	}
	s.afterMove()
}

func (s *Session) reportError(err error) {
	s.println(s.render.Error(err.Error()))
	if errors.Is(err, mines.ErrGameOver) {
		s.println(s.render.Info(newGameHint))
	}
}

func (s *Session) afterMove() {
	switch s.board.State() {
	case mines.Lost:
		s.finish()
		s.println(s.render.Error("you hit a mine!"))
	case mines.Won:
		s.finish()
		s.println(s.render.Success("you win!!"))
	}
	s.show()
	if s.board.State() != mines.InProgress {
		s.println(s.render.Info("time: " + s.elapsed.String()))
		s.println(s.render.Info(newGameHint))
	}
}

func (s *Session) finish() {
	s.elapsed = s.clock.Since(s.started).Truncate(time.Millisecond)
	s.gameLog().WithFields(logrus.Fields{
		"state":   s.board.State().String(),
		"elapsed": s.elapsed.String(),
	}).Info("game over")
}
