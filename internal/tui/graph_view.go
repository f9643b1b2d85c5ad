package tui

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Chart characters
var sparkChars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// renderSparkline creates a compact sparkline of the last width samples
func renderSparkline(data []float64, width int) string {
	if len(data) == 0 {
		return strings.Repeat(sparkChars[0], width)
	}

	// Take last 'width' points
	start := 0
	if len(data) > width {
		start = len(data) - width
	}
	displayData := data[start:]

	// Load has a natural floor of zero, so only the top of the scale moves
	max := 0.0
	for _, v := range displayData {
		max = math.Max(max, v)
	}
	if max < 1 {
		max = 1
	}

	var result strings.Builder
	for _, value := range displayData {
		charIndex := int(value / max * float64(len(sparkChars)-1))
		if charIndex >= len(sparkChars) {
			charIndex = len(sparkChars) - 1
		}
		if charIndex < 0 {
			charIndex = 0
		}
		result.WriteString(sparkChars[charIndex])
	}

	// Pad on the left so the newest sample is always in the last column
	return strings.Repeat(sparkChars[0], width-len(displayData)) + result.String()
}

// renderLoadGraph renders the load sparkline with its header and time axis
func renderLoadGraph(st styles, data []float64, width int, interval time.Duration) string {
	var s strings.Builder

	header := "Load 1m"
	if len(data) > 0 {
		header = fmt.Sprintf("Load 1m: %.2f (peak %.2f)", data[len(data)-1], peak(data))
	}
	s.WriteString(st.graphTitle.Render(header) + "\n")
	s.WriteString(st.spark.Render(renderSparkline(data, width)) + "\n")

	span := time.Duration(width) * interval
	s.WriteString(st.graphAxis.Render(fmt.Sprintf("◄─ %s", span.Round(time.Second))))

	return s.String()
}

func peak(data []float64) float64 {
	max := 0.0
	for _, v := range data {
		max = math.Max(max, v)
	}
	return max
}
