package theme

import (
	"fmt"

	"git.lost.host/meutraa/fourk/internal/game"
)

type Color struct {
	R, G, B uint8
}

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(_ int, judgement game.Judgement) string {
	return colored(GetJudgementColor(judgement), noteSym)
}

func (t *DefaultTheme) RenderHitField(_ int, pressed bool) string {
	if pressed {
		return colored(pressedColor, pressedSym)
	}
	return colored(GetJudgementColor(game.Perfect), barSym)
}

func (t *DefaultTheme) RenderJudgement(judgement game.Judgement) string {
	return fmt.Sprintf("\033[1m%v\033[0m", colored(GetJudgementColor(judgement), judgement.String()))
}

// RenderWindow marks the edge of a judgement window beside the lanes
func (t *DefaultTheme) RenderWindow(judgement game.Judgement) string {
	return colored(GetJudgementColor(judgement), windowSym)
}

func colored(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	noteSym    = "▆▆▆▆"
	barSym     = "────"
	pressedSym = "████"
	windowSym  = "┄"
)

var (
	pressedColor    = Color{255, 255, 255}
	judgementColors = map[game.Judgement]Color{
		game.None:    {155, 89, 182}, // falling, purple
		game.Perfect: {255, 215, 0},  // gold
		game.Great:   {0, 255, 0},    // green
		game.Good:    {52, 152, 219}, // blue
		game.Miss:    {231, 76, 60},  // red
	}
)

func GetJudgementColor(j game.Judgement) Color {
	col, ok := judgementColors[j]
	if !ok {
		return pressedColor
	}
	return col
}
