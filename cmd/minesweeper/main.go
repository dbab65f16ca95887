package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/console"
	"github.com/vancomm/minesweeper-engine/internal/render"
)

type CLI struct {
	Debug   bool   `help:"Log at debug level and echo the log to stderr."`
	LogFile string `name:"log-file" type:"path" env:"MINES_LOG_FILE" help:"Write the session log to a rotating JSON file."`
	Plain   bool   `help:"Draw the board without colors."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("minesweeper"),
		kong.Description("Play minesweeper in the terminal."),
		kong.UsageOnError(),
	)

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	logging := config.Logging{Debug: cli.Debug, File: cli.LogFile}
	if cli.Debug {
		logging.Out = os.Stderr
	}
	log, err := config.NewLogger(logging)
	kctx.FatalIfErrorf(err)

	renderer := render.New(cli.Plain)
	rl, err := console.NewReadline(renderer)
	kctx.FatalIfErrorf(err)

	session := console.NewSession(console.Config{
		Out:      rl.Stdout(),
		Log:      log,
		Renderer: renderer,
	})

	log.WithField("log_level", logging.Level()).Info("starting up")

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		err := session.NewGame(
			console.DefaultRows, console.DefaultCols, console.DefaultMines,
		)
		if err != nil {
			return err
		}
		return console.Run(gCtx, rl, session)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return rl.Close()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("exit")
		fmt.Fprintln(os.Stderr, renderer.Error(err.Error()))
		os.Exit(1)
	}
	log.Info("bye")
}
