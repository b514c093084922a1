package terminal

import (
	"context"
	"fmt"

	"PongSolo/core"
	"PongSolo/logger"

	"github.com/gdamore/tcell"
)

func initScreen(bg tcell.Color) (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if e := screen.Init(); e != nil {
		return nil, e
	}

	defaultStyle := tcell.StyleDefault.
		Background(bg).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return screen, nil
}

// Run plays game in the current terminal until ctx ends or a quit key is
// pressed.
func Run(ctx context.Context, cfg core.Config, game *core.Game) error {
	screen, err := initScreen(toTcell(cfg.BackgroundColor))
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	return RunOn(ctx, screen, cfg, game)
}

// RunOn is Run on an already initialised screen, which it finalizes.
func RunOn(ctx context.Context, screen tcell.Screen, cfg core.Config, game *core.Game) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := NewInput(game.Latch, cfg.ReleaseAfter)
	input.OnQuit = func() {
		logger.Log.Info(logger.QuitKeyMsg)
		cancel()
	}
	defer input.Stop()

	go input.Listen(screen)
	defer screen.Fini()

	surface := NewSurface(screen, cfg.Width, cfg.Height)
	driver := &core.Driver{
		Game:     game,
		Renderer: core.NewRenderer(cfg),
		Surface:  surface,
		Ticker:   core.NewIntervalTicker(cfg.FPS),
		Present:  surface.Show,
	}
	return driver.Run(ctx)
}
