package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

// Surface maps the logical field onto whatever grid the terminal has.
type Surface struct {
	screen        tcell.Screen
	width, height float64
}

func NewSurface(screen tcell.Screen, width, height float64) *Surface {
	return &Surface{screen: screen, width: width, height: height}
}

func (s *Surface) cellSize() (float64, float64) {
	cols, rows := s.screen.Size()
	return s.width / float64(cols), s.height / float64(rows)
}

func (s *Surface) col(x float64) int {
	cw, _ := s.cellSize()
	return int(math.Floor(x / cw))
}

func (s *Surface) row(y float64) int {
	_, ch := s.cellSize()
	return int(math.Floor(y / ch))
}

// FillRect paints every cell the rectangle touches, at least one.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	c0, r0 := s.col(x), s.row(y)
	c1, r1 := s.col(x+w), s.row(y+h)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	style := tcell.StyleDefault.Background(toTcell(c))
	Print(s.screen, r0, c0, c1-c0, r1-r0, ' ', style)
}

// MeasureText returns the logical width of text; one rune per cell, so the
// font size and family do not matter here.
func (s *Surface) MeasureText(text string, _ float64, _ string) float64 {
	cw, _ := s.cellSize()
	return float64(runewidth.StringWidth(text)) * cw
}

// FillText writes text on the row just above its baseline, keeping the
// background that is already there.
func (s *Surface) FillText(text string, x, y float64, c color.Color, _ float64, _ string) {
	row := s.row(y) - 1
	if row < 0 {
		row = 0
	}

	col := s.col(x)
	for _, letter := range text {
		_, _, st, _ := s.screen.GetContent(col, row)
		s.screen.SetContent(col, row, letter, nil, st.Foreground(toTcell(c)))
		col += runewidth.RuneWidth(letter)
	}
}

func (s *Surface) Show() {
	s.screen.Show()
}

// Print fills a width x height block of cells starting at row, col.
func Print(screen tcell.Screen, row, col, width, height int, ch rune, style tcell.Style) {
	cols, rows := screen.Size()
	for r := row; r < row+height; r++ {
		for c := col; c < col+width; c++ {
			if r < 0 || c < 0 || r >= rows || c >= cols {
				continue
			}
			screen.SetContent(c, r, ch, nil, style)
		}
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
