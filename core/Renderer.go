package core

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

const (
	scoreTextY      = 100
	roundTextY      = 30
	roundTextOffset = 10

	dividerSegments = 25
	dividerSize     = 10
	dividerPitch    = 20
	dividerTop      = 0.12
)

// Surface is the drawing contract the renderer needs from a backend.
// Coordinates are logical pixels of the field.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	MeasureText(text string, size float64, font string) float64
	// FillText draws text with its left end at x and its baseline at y.
	FillText(text string, x, y float64, c color.Color, size float64, font string)
}

type Renderer struct {
	FontFamily    string
	ScoreFontSize float64
	RoundFontSize float64
	TextColor     color.Color
}

func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		FontFamily:    cfg.FontFamily,
		ScoreFontSize: cfg.ScoreFontSize,
		RoundFontSize: cfg.RoundFontSize,
		TextColor:     cfg.TextColor,
	}
}

// Draw paints one frame. It never touches game state.
func (r *Renderer) Draw(g *Game, s Surface) {
	field := g.Field
	s.FillRect(0, 0, field.Width, field.Height, field.BackgroundColor)

	drawObject(s, g.Ball.GameObject)
	drawObject(s, g.Left.GameObject)
	drawObject(s, g.Right.GameObject)

	//分數
	r.DrawText(s, strconv.Itoa(g.Left.Score), math.Floor(field.Width*0.25), scoreTextY, r.ScoreFontSize)
	r.DrawText(s, strconv.Itoa(g.Right.Score), math.Floor(field.Width*0.75), scoreTextY, r.ScoreFontSize)

	r.DrawText(s, fmt.Sprintf("Round %d", g.Round), field.Width*0.5+roundTextOffset, roundTextY, r.RoundFontSize)

	//中線
	for i := 0; i < dividerSegments; i++ {
		s.FillRect(field.Width*0.5, field.Height*dividerTop+float64(i*dividerPitch),
			dividerSize, dividerSize, r.TextColor)
	}
}

// DrawText centres text horizontally on x.
func (r *Renderer) DrawText(s Surface, text string, x, y, size float64) {
	width := s.MeasureText(text, size, r.FontFamily)
	s.FillText(text, x-width*0.5, y, r.TextColor, size, r.FontFamily)
}

func drawObject(s Surface, o GameObject) {
	s.FillRect(o.X, o.Y, o.Width, o.Height, o.Color)
}
