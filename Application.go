package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PongSolo/client/terminal"
	"PongSolo/client/window"
	"PongSolo/core"
	"PongSolo/logger"

	"github.com/spf13/pflag"
)

func main() {
	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		logger.Log.Console = true
		logger.Log.Fatal(fmt.Sprintf(logger.ConfigInvalidMsg, err))
	}
	logger.Log.Console = cfg.Backend == core.BackendWindow
	logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, cfg.Backend, int(cfg.Width), int(cfg.Height), cfg.FPS))

	game := core.NewGame(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	logger.Log.SetSession(game.SessionId)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = start(ctx, cfg, game)
	logger.Log.Info(fmt.Sprintf(logger.GameStopMsg, game.Left.Score, game.Right.Score))
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Console = true
		logger.Log.Fatal(fmt.Sprintf(logger.BackendInitFailedMsg, cfg.Backend, err))
	}
}

func loadConfig(args []string) (core.Config, error) {
	v := core.NewViper()
	fs := pflag.NewFlagSet("pong", pflag.ExitOnError)
	if err := core.BindFlags(v, fs); err != nil {
		return core.Config{}, err
	}
	if err := fs.Parse(args); err != nil {
		return core.Config{}, err
	}
	if err := core.ReadProperties(v, "./", os.Getenv(core.EnvName)); err != nil {
		return core.Config{}, err
	}
	return core.LoadConfig(v)
}

func start(ctx context.Context, cfg core.Config, game *core.Game) error {
	switch cfg.Backend {
	case core.BackendTerminal:
		return terminal.Run(ctx, cfg, game)
	default:
		return window.Run(ctx, cfg, game)
	}
}
