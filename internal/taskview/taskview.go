// Package taskview derives the dashboard views from a user's task list:
// filtering, sorting, pagination, the upcoming-tasks widget and the weekly
// productivity aggregate. Everything here is pure; handlers and any future
// frontend share the same rules by delegating to this package.
package taskview

import (
	"strings"

	"taskboard/internal/domain"
)

// Status narrows the list by completion state.
type Status string

const (
	StatusAll       Status = "all"
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// Criteria holds the filter stage inputs. Zero values pass everything:
// empty search matches all titles and Priority 0 means "all".
type Criteria struct {
	Search   string
	Priority int
	Status   Status
}

func (c Criteria) matches(t domain.Task) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(c.Search)) {
		return false
	}
	if c.Priority != 0 && t.Priority != c.Priority {
		return false
	}
	switch c.Status {
	case StatusCompleted:
		return t.Completed
	case StatusPending:
		return !t.Completed
	}
	return true
}

// Filter returns the tasks matching all criteria, preserving input order.
func Filter(tasks []domain.Task, c Criteria) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.matches(t) {
			out = append(out, t)
		}
	}
	return out
}
