package taskview

import (
	"sort"

	"taskboard/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects one of the eight supported orderings. Anything else falls
// back to priority descending.
type SortKey string

const (
	SortTitleAsc     SortKey = "title-asc"
	SortTitleDesc    SortKey = "title-desc"
	SortDeadlineAsc  SortKey = "deadline-asc"
	SortDeadlineDesc SortKey = "deadline-desc"
	SortPriorityAsc  SortKey = "priority-asc"
	SortPriorityDesc SortKey = "priority-desc"
	SortCreatedAsc   SortKey = "created-asc"
	SortCreatedDesc  SortKey = "created-desc"
)

// Sort returns a sorted copy of tasks. Titles compare with English collation
// rather than byte order. There is no secondary key: equal elements end up in
// arbitrary relative order.
func Sort(tasks []domain.Task, key SortKey) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)

	cl := collate.New(language.English)

	var less func(a, b domain.Task) bool
	switch key {
	case SortTitleAsc:
		less = func(a, b domain.Task) bool { return cl.CompareString(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		less = func(a, b domain.Task) bool { return cl.CompareString(b.Title, a.Title) < 0 }
	case SortDeadlineAsc:
		less = func(a, b domain.Task) bool { return a.Deadline.Before(b.Deadline) }
	case SortDeadlineDesc:
		less = func(a, b domain.Task) bool { return b.Deadline.Before(a.Deadline) }
	case SortPriorityAsc:
		less = func(a, b domain.Task) bool { return a.Priority < b.Priority }
	case SortCreatedAsc:
		less = func(a, b domain.Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortCreatedDesc:
		less = func(a, b domain.Task) bool { return b.CreatedAt.Before(a.CreatedAt) }
	default: // SortPriorityDesc and unknown keys
		less = func(a, b domain.Task) bool { return b.Priority < a.Priority }
	}

	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
