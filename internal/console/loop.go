package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineReader is where typed lines come from. *readline.Instance is one.
type LineReader interface {
	Readline() (string, error)
}

// Run reads lines and executes them on s until the player quits, input
// ends or ctx is cancelled. Ctrl-C on an empty prompt does not leave the
// game.
func Run(ctx context.Context, lines LineReader, s *Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := lines.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			s.println(s.render.Info("use quit to exit"))
			continue
		case errors.Is(err, io.EOF):
			s.gameLog().Info("end of input")
			return nil
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("unable to read command: %w", err)
		}

		if s.Execute(line) {
			return nil
		}
	}
}
