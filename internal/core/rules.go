package core

/*
Conway decides whether a cell is alive in the next generation given its
current state and the number of live neighbours.

	n < 2            dead (underpopulation)
	alive, n in 2..3 alive (survival)
	n > 3            dead (overpopulation)
	dead, n == 3     alive (birth)
	otherwise        dead
*/
func Conway(alive bool, neighbors int) bool {
	switch {
	case neighbors < 2:
		return false
	case neighbors > 3:
		return false
	case alive:
		return true
	default:
		return neighbors == 3
	}
}
