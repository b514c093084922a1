package terminal

import (
	"sync"
	"time"

	"PongSolo/core"

	"github.com/gdamore/tcell"
)

// Input feeds terminal key presses into the latch.
//
// Terminals never report key releases. A press arms a timer and, if the key
// is not repeated within releaseAfter, a release is sent for it.
type Input struct {
	latch        *core.InputLatch
	releaseAfter time.Duration

	mu      sync.Mutex
	release *time.Timer
	// OnQuit runs when a quit key is pressed.
	OnQuit  func()
}

func NewInput(latch *core.InputLatch, releaseAfter time.Duration) *Input {
	return &Input{latch: latch, releaseAfter: releaseAfter}
}

// Listen polls screen until it is finalized.
func (in *Input) Listen(screen tcell.Screen) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			in.HandleKey(ev)
		}
	}
}

func (in *Input) HandleKey(ev *tcell.EventKey) {
	event := toKeyEvent(ev)
	if event.DefaultPrevented {
		if in.OnQuit != nil {
			in.OnQuit()
		}
		return
	}

	in.latch.OnKeyDown(event)
	in.armRelease()
}

func (in *Input) armRelease() {
	if in.releaseAfter <= 0 {
		return
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if in.release == nil {
		in.release = time.AfterFunc(in.releaseAfter, in.latch.OnKeyRelease)
		return
	}
	in.release.Reset(in.releaseAfter)
}

// Stop cancels a pending synthesized release.
func (in *Input) Stop() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.release != nil {
		in.release.Stop()
	}
}

func toKeyEvent(ev *tcell.EventKey) core.KeyEvent {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyEvent{Code: core.KeyArrowUp}
	case tcell.KeyDown:
		return core.KeyEvent{Code: core.KeyArrowDown}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.KeyEvent{Code: core.KeyOther, DefaultPrevented: true}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return core.KeyEvent{Code: core.KeyW}
		case 's', 'S':
			return core.KeyEvent{Code: core.KeyS}
		case 'q', 'Q':
			return core.KeyEvent{Code: core.KeyOther, DefaultPrevented: true}
		}
	}
	return core.KeyEvent{Code: core.KeyOther}
}
