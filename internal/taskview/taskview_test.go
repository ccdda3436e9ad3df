package taskview

import (
	"testing"
	"time"

	"taskboard/internal/domain"
)

func day(offset int) time.Time {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: 1, Title: "Write report", Priority: 3, Deadline: day(2), CreatedAt: day(-5), Completed: false},
		{ID: 2, Title: "buy groceries", Priority: 1, Deadline: day(1), CreatedAt: day(-4), Completed: true},
		{ID: 3, Title: "Call dentist", Priority: 2, Deadline: day(3), CreatedAt: day(-3), Completed: false},
		{ID: 4, Title: "Review budget report", Priority: 2, Deadline: day(0), CreatedAt: day(-2), Completed: true},
		{ID: 5, Title: "apricot jam", Priority: 3, Deadline: day(5), CreatedAt: day(-1), Completed: false},
	}
}

func ids(tasks []domain.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []domain.Task, want ...int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d (%v)", len(want), len(got), ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected task %d, got %d (%v)", i, id, got[i].ID, ids(got))
		}
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Filter(sampleTasks(), Criteria{Search: "REPORT"})
	assertIDs(t, got, 1, 4)
}

func TestFilterEmptySearchPassesAll(t *testing.T) {
	t.Parallel()

	got := Filter(sampleTasks(), Criteria{})
	if len(got) != 5 {
		t.Fatalf("expected all 5 tasks, got %d", len(got))
	}
}

func TestFilterPriorityAndStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    Criteria
		want []int64
	}{
		{"priority 3", Criteria{Priority: 3}, []int64{1, 5}},
		{"completed", Criteria{Status: StatusCompleted}, []int64{2, 4}},
		{"pending", Criteria{Status: StatusPending}, []int64{1, 3, 5}},
		{"status all", Criteria{Status: StatusAll}, []int64{1, 2, 3, 4, 5}},
		{"combined", Criteria{Search: "report", Status: StatusPending}, []int64{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertIDs(t, Filter(sampleTasks(), tc.c), tc.want...)
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	t.Parallel()

	c := Criteria{Search: "re", Status: StatusPending}
	once := Filter(sampleTasks(), c)
	twice := Filter(once, c)
	assertIDs(t, twice, ids(once)...)
}

func TestSortOrderings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  SortKey
		want []int64
	}{
		{SortTitleAsc, []int64{5, 2, 3, 4, 1}},
		{SortTitleDesc, []int64{1, 4, 3, 2, 5}},
		{SortDeadlineAsc, []int64{4, 2, 1, 3, 5}},
		{SortDeadlineDesc, []int64{5, 3, 1, 2, 4}},
		{SortCreatedAsc, []int64{1, 2, 3, 4, 5}},
		{SortCreatedDesc, []int64{5, 4, 3, 2, 1}},
	}

	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			assertIDs(t, Sort(sampleTasks(), tc.key), tc.want...)
		})
	}
}

// Title sorting is collated, not byte ordered: lowercase titles must not all
// sink below uppercase ones.
func TestSortTitleCollation(t *testing.T) {
	t.Parallel()

	got := Sort(sampleTasks(), SortTitleAsc)
	if got[0].ID != 5 || got[1].ID != 2 {
		t.Fatalf("expected collated order starting [5 2], got %v", ids(got))
	}
}

func TestSortIsPermutation(t *testing.T) {
	t.Parallel()

	for _, key := range []SortKey{
		SortTitleAsc, SortTitleDesc, SortDeadlineAsc, SortDeadlineDesc,
		SortPriorityAsc, SortPriorityDesc, SortCreatedAsc, SortCreatedDesc,
		SortKey("bogus"),
	} {
		got := Sort(sampleTasks(), key)
		if len(got) != 5 {
			t.Fatalf("%s: length changed to %d", key, len(got))
		}
		seen := map[int64]bool{}
		for _, task := range got {
			if seen[task.ID] {
				t.Fatalf("%s: duplicate task %d", key, task.ID)
			}
			seen[task.ID] = true
		}
	}
}

func TestSortUnknownKeyFallsBack(t *testing.T) {
	t.Parallel()

	got := Sort(sampleTasks(), SortKey("nope"))
	for i := 1; i < len(got); i++ {
		if got[i].Priority > got[i-1].Priority {
			t.Fatalf("expected priority descending fallback, got %v", ids(got))
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := sampleTasks()
	Sort(in, SortTitleAsc)
	assertIDs(t, in, 1, 2, 3, 4, 5)
}

func TestPaginateBounds(t *testing.T) {
	t.Parallel()

	tasks := sampleTasks()

	p1 := Paginate(tasks, 1, 2)
	assertIDs(t, p1.Items, 1, 2)
	if p1.TotalPages != 3 || p1.Total != 5 {
		t.Fatalf("unexpected page meta: %+v", p1)
	}

	p3 := Paginate(tasks, 3, 2)
	assertIDs(t, p3.Items, 5)

	past := Paginate(tasks, 7, 2)
	if len(past.Items) != 0 {
		t.Fatalf("page past the end should be empty, got %v", ids(past.Items))
	}
}

func TestPaginateEmptyList(t *testing.T) {
	t.Parallel()

	p := Paginate(nil, 1, 5)
	if p.TotalPages != 0 || len(p.Items) != 0 {
		t.Fatalf("empty list should have 0 pages, got %+v", p)
	}
}

// Concatenating every page in order must reconstruct the whole sequence.
func TestPaginateCoversEveryElementOnce(t *testing.T) {
	t.Parallel()

	tasks := Sort(sampleTasks(), SortDeadlineAsc)
	perPage := 2
	total := Paginate(tasks, 1, perPage).TotalPages

	var all []domain.Task
	for n := 1; n <= total; n++ {
		all = append(all, Paginate(tasks, n, perPage).Items...)
	}
	assertIDs(t, all, ids(tasks)...)
}
