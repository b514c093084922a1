package core

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of Intn results.
type seqRand struct {
	values []int
	i      int
}

func (s *seqRand) Intn(n int) int {
	v := s.values[s.i%len(s.values)] % n
	s.i++
	return v
}

// newTestGame returns a game with default settings whose ball starts moving
// right and down.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg, err := LoadConfig(NewViper())
	require.NoError(t, err)
	return NewGame(cfg, &seqRand{values: []int{1}})
}

func newRandomGame(t *testing.T, seed int64) *Game {
	t.Helper()
	return NewGame(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

type rectOp struct {
	x, y, w, h float64
	c          color.Color
}

type textOp struct {
	text string
	x, y float64
	size float64
	font string
}

// recordingSurface keeps every draw call in order.
type recordingSurface struct {
	rects []rectOp
	texts []textOp
	order []string
}

func (r *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.rects = append(r.rects, rectOp{x, y, w, h, c})
	r.order = append(r.order, "rect")
}

// MeasureText pretends every rune is 10 units wide.
func (r *recordingSurface) MeasureText(text string, _ float64, _ string) float64 {
	return float64(len([]rune(text))) * 10
}

func (r *recordingSurface) FillText(text string, x, y float64, _ color.Color, size float64, font string) {
	r.texts = append(r.texts, textOp{text, x, y, size, font})
	r.order = append(r.order, "text")
}
