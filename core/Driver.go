package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"PongSolo/logger"

	"github.com/sirupsen/logrus"
)

// Ticker is the schedule that paces the driver.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type intervalTicker struct {
	t *time.Ticker
}

// NewIntervalTicker fires fps times per second.
func NewIntervalTicker(fps int) Ticker {
	return &intervalTicker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (i *intervalTicker) C() <-chan time.Time { return i.t.C }
func (i *intervalTicker) Stop() { i.t.Stop() }

// ManualTicker fires only when told to.
type ManualTicker struct {
	c    chan time.Time
	once sync.Once
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{c: make(chan time.Time)}
}

func (m *ManualTicker) C() <-chan time.Time { return m.c }

// Fire blocks until the driver has taken the tick.
func (m *ManualTicker) Fire() {
	m.c <- time.Now()
}

func (m *ManualTicker) Stop() {
	m.once.Do(func() { close(m.c) })
}

// Driver runs simulate-then-render once per tick.
type Driver struct {
	Game     *Game
	Renderer *Renderer
	Surface  Surface
	Ticker   Ticker
	// Present flushes a finished frame, if the surface needs it.
	Present  func()
}

// Run blocks until ctx is done or the ticker is stopped.
func (d *Driver) Run(ctx context.Context) error {
	defer d.Ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"fps":   d.Game.Field.FPS,
		"width": d.Game.Field.Width,
	}).Info(logger.GameStartMsg)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-d.Ticker.C():
			if !ok {
				return nil
			}
			d.Tick()
		}
	}
}

// Tick runs one full cycle.
func (d *Driver) Tick() {
	d.Update()
	d.Renderer.Draw(d.Game, d.Surface)
	if d.Present != nil {
		d.Present()
	}
}

// Update runs the simulation half of a tick, for hosts that render on
// their own schedule.
func (d *Driver) Update() ScoreEvent {
	event := d.Game.Step()
	if event != NoScore {
		logger.Log.WithFields(logrus.Fields{
			"event":   event.String(),
			"payload": GenerateBattlePayload(d.Game),
		}).Info(fmt.Sprintf(logger.ScoreMsg, d.Game.Left.Score, d.Game.Right.Score))
	}
	return event
}
