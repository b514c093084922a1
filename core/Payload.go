package core

import (
	"fmt"
	"strconv"
	"strings"
)

const PayloadTerminator = "~"

const BattleSituationHeader = "BS" // Battle situation 比賽當下狀態

// BattleSituation is the decoded form of a battle payload.
type BattleSituation struct {
	BallX, BallY float64
	LeftY        float64
	LeftScore    int
	RightY       float64
	RightScore   int
	BallVelocity float64
}

//ballX, ballY, leftY, leftScore, rightY, rightScore, ballVelocity
func GenerateBattlePayload(g *Game) string {
	payload := fmt.Sprintf("%s,%s,%s,%d,%s,%d,%s",
		formatFloat(g.Ball.X), formatFloat(g.Ball.Y),
		formatFloat(g.Left.Y), g.Left.Score,
		formatFloat(g.Right.Y), g.Right.Score,
		formatFloat(g.Ball.Velocity))
	return BattleSituationHeader + payload + PayloadTerminator
}

func ParseBattlePayload(payload string) (BattleSituation, error) {
	if len(payload) < len(BattleSituationHeader)+len(PayloadTerminator) ||
		!strings.HasPrefix(payload, BattleSituationHeader) ||
		!strings.HasSuffix(payload, PayloadTerminator) {
		return BattleSituation{}, fmt.Errorf("malformed battle payload %q", payload)
	}

	p := strings.Split(removeHeaderTerminator(payload), ",")
	if len(p) != 7 {
		return BattleSituation{}, fmt.Errorf("battle payload has %d fields, want 7", len(p))
	}

	var (
		bs   BattleSituation
		errs []error
	)
	float := func(s string) float64 {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			errs = append(errs, err)
		}
		return f
	}
	integer := func(s string) int {
		i, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, err)
		}
		return i
	}

	bs.BallX = float(p[0])
	bs.BallY = float(p[1])
	bs.LeftY = float(p[2])
	bs.LeftScore = integer(p[3])
	bs.RightY = float(p[4])
	bs.RightScore = integer(p[5])
	bs.BallVelocity = float(p[6])

	if len(errs) > 0 {
		return BattleSituation{}, fmt.Errorf("parse battle payload: %w", errs[0])
	}
	return bs, nil
}

func removeHeaderTerminator(payload string) string {
	return payload[len(BattleSituationHeader) : len(payload)-len(PayloadTerminator)]
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
