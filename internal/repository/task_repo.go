package repository

import (
	"context"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByUser returns every task the user owns, with the category name joined
// in. Tasks without a category come back with an empty name.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.title, t.priority, t.completed, t.deadline, t.created_at,
		       t.description, COALESCE(c.name, '') AS category_name
		FROM task t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Priority, &t.Completed, &t.Deadline,
			&t.CreatedAt, &t.Description, &t.CategoryName); err != nil {
			return nil, err
		}
		t.UserID = userID
		res = append(res, t)
	}
	return res, rows.Err()
}

// Insert creates the task and fills in id, created_at, completed and the
// resolved category name. A missing category or empty title surfaces as
// domain.ErrConstraint.
func (r *TaskRepository) Insert(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO task (title, user_id, category_id, deadline, priority, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, completed, created_at,
		          COALESCE((SELECT name FROM categories WHERE id = $3), '')`,
		t.Title, t.UserID, t.CategoryID, t.Deadline, t.Priority, t.Description,
	).Scan(&t.ID, &t.Completed, &t.CreatedAt, &t.CategoryName)
	if err != nil {
		return classify(err)
	}
	return nil
}

// CategoryCounts returns how many tasks the user has per category, largest
// first. Tie order between equal counts is whatever the store returns.
func (r *TaskRepository) CategoryCounts(ctx context.Context, userID int64) ([]domain.CategoryCount, error) {
	rows, err := r.db.Query(ctx, `
		WITH task_count AS (
			SELECT t.category_id, COUNT(*) AS task_count
			FROM task t
			WHERE t.user_id = $1
			GROUP BY t.category_id
		)
		SELECT c.name AS category_name, tc.task_count
		FROM task_count tc
		JOIN categories c ON tc.category_id = c.id
		ORDER BY tc.task_count DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.CategoryCount
	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.CategoryName, &cc.TaskCount); err != nil {
			return nil, err
		}
		res = append(res, cc)
	}
	return res, rows.Err()
}

// WeeklySeries returns per-day totals and productivity for the last 6 days
// including today, earliest first. Days with no tasks are absent, not
// zero-filled.
func (r *TaskRepository) WeeklySeries(ctx context.Context, userID int64) ([]domain.ProductivityDay, error) {
	rows, err := r.db.Query(ctx, `
		SELECT TO_CHAR(created_at, 'Dy') AS day,
		       COUNT(*) AS total_tasks,
		       SUM(CASE WHEN completed THEN 1 ELSE 0 END) AS completed_tasks,
		       ROUND(SUM(CASE WHEN completed THEN 1 ELSE 0 END) * 100.0 / NULLIF(COUNT(*), 0), 2)::text AS productivity
		FROM task
		WHERE user_id = $1 AND created_at >= NOW() - INTERVAL '6 days'
		GROUP BY day
		ORDER BY MIN(created_at)`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.ProductivityDay
	for rows.Next() {
		var d domain.ProductivityDay
		if err := rows.Scan(&d.Day, &d.TotalTasks, &d.CompletedTasks, &d.Productivity); err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

// SetCompleted marks the task complete, scoped to the owning user. Completing
// a missing or already-completed task is a no-op that still succeeds, so the
// operation is safe to retry.
func (r *TaskRepository) SetCompleted(ctx context.Context, userID, taskID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE task SET completed = true WHERE user_id = $1 AND id = $2`,
		userID, taskID)
	return err
}
