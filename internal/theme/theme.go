package theme

import "git.lost.host/meutraa/fourk/internal/game"

type Theme interface {
	RenderNote(lane int, judgement game.Judgement) string
	RenderHitField(lane int, pressed bool) string
	RenderJudgement(judgement game.Judgement) string
	RenderWindow(judgement game.Judgement) string
}
