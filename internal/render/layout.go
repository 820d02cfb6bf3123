package render

import (
	"math"

	"git.lost.host/meutraa/clash/internal/game"
	"git.lost.host/meutraa/clash/internal/round"
)

const (
	// Playfield units per terminal row
	UnitsPerRow = 24.0

	laneSpacing = 4
	headerRows  = 3
)

// Layout maps playfield coordinates onto terminal cells. Rows and columns
// are 1 based, as the terminal addresses them.
type Layout struct {
	Columns, Rows int
	Geometry      round.Geometry
	lanes         [game.Lanes]int
}

func NewLayout(columns, rows int) Layout {
	l := Layout{
		Columns:  columns,
		Rows:     rows,
		Geometry: round.DefaultGeometry(float64(rows) * UnitsPerRow),
	}
	centres := [game.Players]int{columns / 4, columns - columns/4}
	for lane := range l.lanes {
		side := game.PlayerOf(lane)
		i := lane - side*game.LanesPerPlayer
		// Four lanes around the side centre
		col := centres[side] + (2*i-3)*laneSpacing/2
		if col < 1 {
			col = 1
		} else if col > columns {
			col = columns
		}
		l.lanes[lane] = col
	}
	return l
}

func (l Layout) Column(lane int) int {
	if !game.ValidLane(lane) {
		return 0
	}
	return l.lanes[lane]
}

// Row converts a playfield y coordinate to a terminal row.
func (l Layout) Row(y float64) int {
	return int(math.Floor(y/UnitsPerRow)) + 1
}

func (l Layout) HitRow() int {
	return l.Row(l.Geometry.HitLineY)
}

// InField reports whether a row lies between the header and the key
// labels below the hit line.
func (l Layout) InField(row int) bool {
	return row > headerRows && row < l.HitRow()+2
}

// SideCentre is the middle column of a player's lanes.
func (l Layout) SideCentre(player int) int {
	first := l.Column(player * game.LanesPerPlayer)
	last := l.Column(player*game.LanesPerPlayer + game.LanesPerPlayer - 1)
	return (first + last) / 2
}
