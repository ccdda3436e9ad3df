package taskview

import (
	"sort"
	"time"

	"taskboard/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UpcomingLimit is how many tasks the upcoming widget shows.
const UpcomingLimit = 3

// Upcoming selects the tasks for the dashboard widget: not completed, with a
// deadline at or after now; ordered by priority descending, then earliest
// deadline, then title. At most UpcomingLimit tasks are returned and the
// first one is the "most urgent".
func Upcoming(tasks []domain.Task, now time.Time) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed && !t.Deadline.Before(now) {
			out = append(out, t)
		}
	}

	cl := collate.New(language.English)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.Deadline.Equal(b.Deadline) {
			return a.Deadline.Before(b.Deadline)
		}
		return cl.CompareString(a.Title, b.Title) < 0
	})

	if len(out) > UpcomingLimit {
		out = out[:UpcomingLimit]
	}
	return out
}
