package core

import "sync/atomic"

type Direction int32

const (
	None Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// KeyCode is a backend independent physical key.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyW
	KeyS
	KeyArrowUp
	KeyArrowDown
)

type KeyEvent struct {
	Code KeyCode
	// DefaultPrevented is set when the host already consumed the key.
	DefaultPrevented bool
}

// InputLatch holds the most recently pressed direction.
//
// Key callbacks may run on a different goroutine than the tick. The latch is
// a single atomic cell: the tick sees whichever write landed last.
type InputLatch struct {
	dir atomic.Int32
}

func (l *InputLatch) OnKeyDown(ev KeyEvent) {
	if ev.DefaultPrevented {
		return
	}

	switch ev.Code {
	case KeyW, KeyArrowUp:
		l.dir.Store(int32(Up))
	case KeyS, KeyArrowDown:
		l.dir.Store(int32(Down))
	}
}

// OnKeyRelease clears the latch whatever key was released.
func (l *InputLatch) OnKeyRelease() {
	l.dir.Store(int32(None))
}

func (l *InputLatch) Get() Direction {
	return Direction(l.dir.Load())
}
