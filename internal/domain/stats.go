package domain

// CategoryCount is one row of the per-category task count report.
// When counts tie, relative order is whatever the store returns.
type CategoryCount struct {
	CategoryName string `db:"category_name" json:"category_name"`
	TaskCount    int64  `db:"task_count" json:"task_count"`
}

// ProductivityDay is one day of the weekly productivity series. Productivity
// is kept as the store's textual numeric ("83.33") so rounding survives the
// trip to the client untouched; days with zero tasks never appear.
type ProductivityDay struct {
	Day            string `db:"day" json:"day"`
	TotalTasks     int64  `db:"total_tasks" json:"total_tasks"`
	CompletedTasks int64  `db:"completed_tasks" json:"completed_tasks"`
	Productivity   string `db:"productivity" json:"productivity"`
}
