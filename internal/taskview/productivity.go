package taskview

import (
	"strconv"

	"taskboard/internal/domain"
)

// AverageProductivity is the unweighted mean of the per-day productivity
// percentages, clamped to [0,100]. A value that does not parse counts as 0,
// and an empty series yields 0.
//
// The series omits zero-task days entirely, so the mean is over available
// days only. That skews the figure when fewer than six days have data; it is
// the intended behavior, not a defect.
func AverageProductivity(series []domain.ProductivityDay) float64 {
	if len(series) == 0 {
		return 0
	}

	var sum float64
	for _, d := range series {
		if v, err := strconv.ParseFloat(d.Productivity, 64); err == nil {
			sum += v
		}
	}

	avg := sum / float64(len(series))
	if avg < 0 {
		return 0
	}
	if avg > 100 {
		return 100
	}
	return avg
}
