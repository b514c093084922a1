package core

type ScoreEvent int

const (
	NoScore ScoreEvent = iota
	LeftScored
	RightScored
)

func (e ScoreEvent) String() string {
	switch e {
	case LeftScored:
		return "left scored"
	case RightScored:
		return "right scored"
	default:
		return "no score"
	}
}

// Step advances the game by one tick. The order of the phases is fixed.
func (g *Game) Step() ScoreEvent {
	g.playerMovement()
	g.ballPaddleCollision()
	event := g.ballScoreCollision()
	g.ballMovement()
	g.botMovement()
	return event
}

func (g *Game) playerMovement() {
	player := g.Left

	switch g.Latch.Get() {
	case Up:
		if player.Y >= 0 {
			player.MoveUp()
		}
	case Down:
		if player.Bottom() <= g.Field.Height {
			player.MoveDown()
		}
	}

	//上下牆壁反彈
	if g.Ball.Y+g.Ball.Height >= g.Field.Height || g.Ball.Y <= 0 {
		g.Ball.YOrientation *= -1
	}
}

// ballPaddleCollision samples the ball's top-left corner against each paddle.
// The two checks are intentionally not mirror images of each other.
func (g *Game) ballPaddleCollision() {
	ball, left, right := g.Ball, g.Left, g.Right

	if ball.X >= left.X && ball.X <= left.X+left.Width &&
		ball.Y >= left.Y && ball.Y <= left.Bottom() {
		ball.XOrientation = 1
	}

	if ball.X+ball.Width >= right.X && ball.X <= right.X &&
		ball.Y >= right.Y && ball.Y <= right.Bottom() {
		ball.XOrientation = -1
	}
}

func (g *Game) ballScoreCollision() ScoreEvent {
	if g.Ball.X <= 0 {
		g.Right.Score += 1
		g.ResetBall()
		return RightScored
	}

	if g.Ball.X >= g.Field.Width {
		g.Left.Score += 1
		if g.Left.Score%g.Field.DifficultyEvery == 0 {
			g.Ball.Velocity += g.Field.SpeedDifficultyFactor
		}
		g.ResetBall()
		return LeftScored
	}

	return NoScore
}

func (g *Game) ballMovement() {
	speed := g.Field.SpeedDifficultyFactor + g.Ball.Velocity
	g.Ball.X += speed * float64(g.Ball.XOrientation)
	g.Ball.Y += speed * float64(g.Ball.YOrientation)
}

// botMovement chases the ball's height, closing part of the gap every tick.
func (g *Game) botMovement() {
	bot := g.Right
	bot.Y = lerp(bot.Y-bot.Height*0.5, g.Ball.Y, g.Field.BotLerp)

	if bot.Bottom() >= g.Field.Height {
		bot.Y = g.Field.Height - bot.Height
	} else if bot.Y <= 0 {
		bot.Y = 0
	}
}
