package window

import (
	"context"
	"fmt"

	"PongSolo/core"
	"PongSolo/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core driver to ebiten, which owns the tick schedule.
type Game struct {
	ctx    context.Context
	driver *core.Driver
	fonts  *Fonts
	width  int
	height int

	keys []ebiten.Key
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	latch := g.driver.Game.Latch

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		ev := toKeyEvent(k)
		latch.OnKeyDown(ev)
		if ev.DefaultPrevented {
			logger.Log.Info(logger.QuitKeyMsg)
			return ebiten.Termination
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	if len(g.keys) > 0 {
		latch.OnKeyRelease()
	}

	g.driver.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.driver.Renderer.Draw(g.driver.Game, NewSurface(screen, g.fonts))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and plays game until it is closed, Escape is pressed
// or ctx ends.
func Run(ctx context.Context, cfg core.Config, game *core.Game) error {
	fonts, err := NewFonts()
	if err != nil {
		return err
	}

	g := &Game{
		ctx: ctx,
		driver: &core.Driver{
			Game:     game,
			Renderer: core.NewRenderer(cfg),
		},
		fonts:  fonts,
		width:  int(cfg.Width),
		height: int(cfg.Height),
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPS)

	logger.Log.Info(logger.GameStartMsg)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func toKeyEvent(k ebiten.Key) core.KeyEvent {
	switch k {
	case ebiten.KeyW:
		return core.KeyEvent{Code: core.KeyW}
	case ebiten.KeyS:
		return core.KeyEvent{Code: core.KeyS}
	case ebiten.KeyArrowUp:
		return core.KeyEvent{Code: core.KeyArrowUp}
	case ebiten.KeyArrowDown:
		return core.KeyEvent{Code: core.KeyArrowDown}
	case ebiten.KeyEscape:
		return core.KeyEvent{Code: core.KeyOther, DefaultPrevented: true}
	}
	return core.KeyEvent{Code: core.KeyOther}
}
