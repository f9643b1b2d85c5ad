package tui

// pushSample appends v and drops the oldest samples beyond max
func pushSample(history []float64, v float64, max int) []float64 {
	history = append(history, v)
	if max > 0 && len(history) > max {
		history = history[len(history)-max:]
	}
	return history
}
