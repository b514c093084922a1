package core

import "image/color"

// GameObject is an axis aligned box on the play field, in logical pixels.
type GameObject struct {
	X, Y          float64
	Width, Height float64
	Color         color.Color
}

type Ball struct {
	GameObject
	XOrientation int
	YOrientation int
	// Velocity is added to the field's difficulty factor every tick.
	Velocity     float64
}

type Paddle struct {
	GameObject
	Velocity float64
	Score    int
}

type Field struct {
	Width, Height         float64
	BackgroundColor       color.Color
	FPS                   int
	SpeedDifficultyFactor float64
	DifficultyEvery       int
	BotLerp               float64
}

func (p *Paddle) MoveUp() {
	p.Y -= p.Velocity
}

func (p *Paddle) MoveDown() {
	p.Y += p.Velocity
}

func (p *Paddle) Bottom() float64 {
	return p.Y + p.Height
}

// lerp interpolates between start and end by t.
func lerp(start, end, t float64) float64 {
	return start*(1-t) + end*t
}
