package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts hands out faces by family and size. Every family currently
// resolves to the embedded Go Regular face.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[faceKey]*text.GoTextFace
}

type faceKey struct {
	family string
	size   float64
}

func NewFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load go regular font: %w", err)
	}
	return &Fonts{source: source, faces: make(map[faceKey]*text.GoTextFace)}, nil
}

func (f *Fonts) Face(family string, size float64) *text.GoTextFace {
	key := faceKey{family: family, size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[key] = face
	return face
}

// Surface draws on one frame's screen image.
type Surface struct {
	screen *ebiten.Image
	fonts  *Fonts
}

func NewSurface(screen *ebiten.Image, fonts *Fonts) *Surface {
	return &Surface{screen: screen, fonts: fonts}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) MeasureText(str string, size float64, font string) float64 {
	w, _ := text.Measure(str, s.fonts.Face(font, size), 0)
	return w
}

func (s *Surface) FillText(str string, x, y float64, c color.Color, size float64, font string) {
	face := s.fonts.Face(font, size)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.screen, str, face, op)
}
