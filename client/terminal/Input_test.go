package terminal

import (
	"testing"
	"time"

	"PongSolo/core"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
)

func TestToKeyEvent(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want core.KeyEvent
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.KeyEvent{Code: core.KeyW}},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), core.KeyEvent{Code: core.KeyS}},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.KeyEvent{Code: core.KeyArrowUp}},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.KeyEvent{Code: core.KeyArrowDown}},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.KeyEvent{Code: core.KeyOther}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.KeyEvent{Code: core.KeyOther, DefaultPrevented: true}},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.KeyEvent{Code: core.KeyOther, DefaultPrevented: true}},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, toKeyEvent(c.ev), c.ev.Name())
	}
}

func TestInput_ReleaseAfterHold(t *testing.T) {
	latch := &core.InputLatch{}
	in := NewInput(latch, 20*time.Millisecond)
	defer in.Stop()

	in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	assert.Equal(t, core.Up, latch.Get())

	assert.Eventually(t, func() bool { return latch.Get() == core.None }, time.Second, 5*time.Millisecond)
}

func TestInput_OtherKeyAlsoReleases(t *testing.T) {
	latch := &core.InputLatch{}
	in := NewInput(latch, 20*time.Millisecond)
	defer in.Stop()

	in.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assert.Equal(t, core.Down, latch.Get())

	assert.Eventually(t, func() bool { return latch.Get() == core.None }, time.Second, 5*time.Millisecond)
}

func TestInput_NoReleaseWindowKeepsLatch(t *testing.T) {
	latch := &core.InputLatch{}
	in := NewInput(latch, 0)

	in.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, core.Up, latch.Get())
}

func TestInput_QuitKey(t *testing.T) {
	latch := &core.InputLatch{}
	in := NewInput(latch, time.Second)
	quit := 0
	in.OnQuit = func() { quit++ }

	in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	in.HandleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	in.Stop()

	assert.Equal(t, 1, quit)
	assert.Equal(t, core.Down, latch.Get())
}
