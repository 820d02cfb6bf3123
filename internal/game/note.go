package game

type Note struct {
	Time     float64 // Seconds from the round start the note should be hit
	Lane     int     // [0, Lanes)
	Consumed bool    // Hit or swept as missed, never judged again
}

// Player returns the index of the player owning the note's lane.
func (n *Note) Player() int {
	return PlayerOf(n.Lane)
}
