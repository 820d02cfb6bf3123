package game

// PlayerOf maps a lane to its owning player, 0 for the left side and 1 for
// the right side.
func PlayerOf(lane int) int {
	if lane < LanesPerPlayer {
		return 0
	}
	return 1
}

func ValidLane(lane int) bool {
	return lane >= 0 && lane < Lanes
}

// SideLane returns the absolute lane for index i (0..LanesPerPlayer-1) on
// the given side.
func SideLane(side, i int) int {
	return side*LanesPerPlayer + i
}
