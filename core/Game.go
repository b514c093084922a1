package core

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Rand is the random source used to launch the ball. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Game owns every entity of one running match.
type Game struct {
	SessionId  string
	CreateDate string

	Field Field
	Left  *Paddle
	Right *Paddle
	Ball  *Ball
	// Round is displayed only; nothing advances it.
	Round int
	Latch *InputLatch

	rand Rand
}

func NewGame(cfg Config, rnd Rand) *Game {
	field := cfg.Field()
	paddleStart := field.Height*0.5 - cfg.PaddleHeight*0.5

	g := &Game{
		SessionId:  uuid.NewString(),
		CreateDate: time.Now().Format("2006-01-02 15:04"),
		Field:      field,
		Left: &Paddle{
			GameObject: GameObject{X: field.Width * 0.05, Y: paddleStart,
				Width: cfg.PaddleWidth, Height: cfg.PaddleHeight, Color: cfg.PaddleColor},
			Velocity: cfg.PaddleVelocity,
		},
		Right: &Paddle{
			GameObject: GameObject{X: field.Width*0.95 - cfg.PaddleWidth, Y: paddleStart,
				Width: cfg.PaddleWidth, Height: cfg.PaddleHeight, Color: cfg.PaddleColor},
			Velocity: cfg.PaddleVelocity,
		},
		Ball: &Ball{
			GameObject: GameObject{Width: cfg.BallSize, Height: cfg.BallSize, Color: cfg.BallColor},
			Velocity:   cfg.BallVelocity,
		},
		Round: 1,
		Latch: &InputLatch{},
		rand:  rnd,
	}
	g.ResetBall()
	return g
}

// ResetBall puts the ball back in the centre and picks a new diagonal.
// Velocity is kept.
func (g *Game) ResetBall() {
	g.Ball.X = g.Field.Width * 0.5
	g.Ball.Y = g.Field.Height * 0.5

	g.Ball.XOrientation = g.randomOrientation()
	g.Ball.YOrientation = g.randomOrientation()
}

// randomOrientation yields 2^1-3 or 2^2-3, i.e. -1 or 1.
func (g *Game) randomOrientation() int {
	return int(math.Pow(2, float64(g.rand.Intn(2)+1))) - 3
}
