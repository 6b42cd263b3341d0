package rules

// NextState decides a cell's liveness for the given generation.
// Inside the special zone the cell flips every reverseInterval generations and
// carries forward otherwise; neighbor counts are ignored there.
// Everywhere else Conway's rules apply.
func NextState(alive bool, neighbors int, zone Zone, generation, reverseInterval int) bool {
	if reverseInterval <= 0 {
		panic("rules: reverse interval must be positive")
	}
	if zone.Special() {
		if generation%reverseInterval == 0 {
			return !alive
		}
		return alive
	}
	return ApplyConwayRules(neighbors, alive)
}
