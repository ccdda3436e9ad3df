package domain

import "time"

// Priority levels for a task.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

type Task struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"-"`
	CategoryID   *int64    `db:"category_id" json:"-"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Priority     int       `db:"priority" json:"priority"`
	Deadline     time.Time `db:"deadline" json:"deadline"`
	Completed    bool      `db:"completed" json:"completed"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	CategoryName string    `db:"category_name" json:"category_name"`
}

// DisplayCategory is the category name shown to the user. Tasks without a
// category render as "Uncategorized".
func (t Task) DisplayCategory() string {
	if t.CategoryName == "" {
		return "Uncategorized"
	}
	return t.CategoryName
}
