package taskview

import "taskboard/internal/domain"

// Page is one page of a filtered and sorted task list.
type Page struct {
	Items      []domain.Task `json:"tasks"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// Paginate slices tasks into the 1-indexed page of size perPage. Offsets are
// clamped to the list length, so a page past the end is empty rather than an
// error. An empty list has zero pages.
func Paginate(tasks []domain.Task, page, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(tasks)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := page * perPage
	if end > total {
		end = total
	}

	return Page{
		Items:      tasks[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
