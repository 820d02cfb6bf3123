package render

import (
	"time"

	"git.lost.host/meutraa/clash/internal/round"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int)
	RenderLoop(period time.Duration, render func(elapsed time.Duration) bool)
	Fill(row, column int, message string)
	Draw(f round.Frame, l Layout)
}
