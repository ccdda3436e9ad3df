package taskview

import "taskboard/internal/domain"

// DefaultPerPage matches the dashboard's initial page size.
const DefaultPerPage = 5

// View is the client-local presentation state for the task list: search
// text, filters, sort key and pagination. It holds no tasks; Apply recomputes
// the visible page from whatever list it is given. Changing any filter, the
// sort key or the page size resets to page 1.
type View struct {
	criteria Criteria
	sortKey  SortKey
	perPage  int
	page     int
	selected *domain.Task
}

func NewView() *View {
	return &View{
		criteria: Criteria{Status: StatusAll},
		sortKey:  SortPriorityDesc,
		perPage:  DefaultPerPage,
		page:     1,
	}
}

func (v *View) SetSearch(s string) {
	v.criteria.Search = s
	v.page = 1
}

// SetPriority filters by priority; 0 means all.
func (v *View) SetPriority(p int) {
	v.criteria.Priority = p
	v.page = 1
}

func (v *View) SetStatus(s Status) {
	v.criteria.Status = s
	v.page = 1
}

func (v *View) SetSort(k SortKey) {
	v.sortKey = k
	v.page = 1
}

func (v *View) SetPerPage(n int) {
	if n < 1 {
		n = 1
	}
	v.perPage = n
	v.page = 1
}

func (v *View) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	v.page = n
}

func (v *View) Page() int { return v.page }

// Select records the task opened in the detail dialog; nil closes it.
func (v *View) Select(t *domain.Task) { v.selected = t }

func (v *View) Selected() *domain.Task { return v.selected }

// Apply runs the pipeline over tasks and returns the current page. When the
// list shrank under the current page index, the page is pulled back to the
// last non-empty one.
func (v *View) Apply(tasks []domain.Task) Page {
	derived := Sort(Filter(tasks, v.criteria), v.sortKey)

	totalPages := (len(derived) + v.perPage - 1) / v.perPage
	if totalPages > 0 && v.page > totalPages {
		v.page = totalPages
	}

	return Paginate(derived, v.page, v.perPage)
}
