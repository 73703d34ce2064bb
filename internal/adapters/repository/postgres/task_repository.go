package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/team-tracker/internal/core/task"
	pgdb "github.com/ogurasousui/team-tracker/internal/platform/db/postgres"
)

// TaskRepository は PostgreSQL を利用したタスク永続化の実装です。
type TaskRepository struct {
	pool pgdb.Queryer
}

// NewTaskRepository は TaskRepository を生成します。
func NewTaskRepository(pool pgdb.Queryer) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskSelectColumns = `t.id, t.title, t.description, t.status, t.priority,
               t.assigned_to, t.created_by, t.due_date, t.created_at, t.updated_at,
               a.id, a.first_name, a.last_name, a.manager_id`

// Create はタスクを新規作成します。
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH inserted AS (
            INSERT INTO tasks (title, description, status, priority, assigned_to, created_by, due_date, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING id, title, description, status, priority, assigned_to, created_by, due_date, created_at, updated_at
        )
        SELECT t.id, t.title, t.description, t.status, t.priority,
               t.assigned_to, t.created_by, t.due_date, t.created_at, t.updated_at,
               a.id, a.first_name, a.last_name, a.manager_id
          FROM inserted t
          LEFT JOIN persons a ON a.id = t.assigned_to
    `,
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		t.AssignedTo,
		t.CreatedBy,
		nullableDate(t.DueDate),
		t.CreatedAt,
		t.UpdatedAt,
	)

	created, err := scanTask(row)
	if err != nil {
		return nil, translateTaskPgError(err)
	}
	return created, nil
}

// Update はタスクを更新します。created_by は作成時に固定されるため対象外です。
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) (*task.Task, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH updated AS (
            UPDATE tasks
               SET title = $1,
                   description = $2,
                   status = $3,
                   priority = $4,
                   assigned_to = $5,
                   due_date = $6,
                   updated_at = $7
             WHERE id = $8
            RETURNING id, title, description, status, priority, assigned_to, created_by, due_date, created_at, updated_at
        )
        SELECT t.id, t.title, t.description, t.status, t.priority,
               t.assigned_to, t.created_by, t.due_date, t.created_at, t.updated_at,
               a.id, a.first_name, a.last_name, a.manager_id
          FROM updated t
          LEFT JOIN persons a ON a.id = t.assigned_to
    `,
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		t.AssignedTo,
		nullableDate(t.DueDate),
		t.UpdatedAt,
		t.ID,
	)

	updated, err := scanTask(row)
	if err != nil {
		return nil, translateTaskPgError(err)
	}
	return updated, nil
}

// Delete はタスクを削除します。
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return translateTaskPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// FindByID は ID でタスクを取得します。
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*task.Task, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+taskSelectColumns+`
          FROM tasks t
          LEFT JOIN persons a ON a.id = t.assigned_to
         WHERE t.id = $1
         LIMIT 1
    `, id)

	found, err := scanTask(row)
	if err != nil {
		return nil, translateTaskPgError(err)
	}
	return found, nil
}

// List はタスクの一覧を取得します。AssigneePersonID と IncludeTeam の組は
// 「自分担当 OR 直属の部下担当」の和集合を単一の走査で取り出すため、同じ
// タスクが重複して返ることはありません。
func (r *TaskRepository) List(ctx context.Context, filter task.ListTasksFilter) ([]*task.Task, string, error) {
	if filter.Limit <= 0 {
		return nil, "", task.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", task.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 6)
	conditions := make([]string, 0, 4)

	if filter.AssigneePersonID != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		if filter.IncludeTeam {
			conditions = append(conditions, "(t.assigned_to = "+placeholder+" OR a.manager_id = "+placeholder+")")
		} else {
			conditions = append(conditions, "t.assigned_to = "+placeholder)
		}
		args = append(args, *filter.AssigneePersonID)
	}

	if filter.Status != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "t.status = "+placeholder)
		args = append(args, string(*filter.Status))
	}

	if filter.Priority != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "t.priority = "+placeholder)
		args = append(args, string(*filter.Priority))
	}

	if filter.TitleSearch != "" {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "t.title ILIKE "+placeholder)
		args = append(args, "%"+filter.TitleSearch+"%")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT ` + taskSelectColumns + `
          FROM tasks t
          LEFT JOIN persons a ON a.id = t.assigned_to` + whereClause + `
         ORDER BY t.created_at DESC, t.id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateTaskPgError(err)
	}
	defer rows.Close()

	tasks := make([]*task.Task, 0, filter.Limit)
	for rows.Next() {
		item, err := scanTask(rows)
		if err != nil {
			return nil, "", translateTaskPgError(err)
		}
		tasks = append(tasks, item)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateTaskPgError(err)
	}

	var nextToken string
	if len(tasks) == limitWithBuffer {
		tasks = tasks[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return tasks, nextToken, nil
}

func scanTask(row pgx.Row) (*task.Task, error) {
	var (
		t             task.Task
		status        string
		priority      string
		assignedTo    sql.NullString
		createdBy     sql.NullString
		dueDate       sql.NullTime
		snapID        sql.NullString
		snapFirstName sql.NullString
		snapLastName  sql.NullString
		snapManagerID sql.NullString
	)

	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&status,
		&priority,
		&assignedTo,
		&createdBy,
		&dueDate,
		&t.CreatedAt,
		&t.UpdatedAt,
		&snapID,
		&snapFirstName,
		&snapLastName,
		&snapManagerID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}

	t.Status = task.Status(status)
	t.Priority = task.Priority(priority)
	if assignedTo.Valid {
		t.AssignedTo = &assignedTo.String
	}
	if createdBy.Valid {
		t.CreatedBy = &createdBy.String
	}
	if dueDate.Valid {
		due := dateOnly(dueDate.Time)
		t.DueDate = &due
	}
	if snapID.Valid {
		t.Assignee = &task.AssigneeSnapshot{
			ID:        snapID.String,
			FirstName: snapFirstName.String,
			LastName:  snapLastName.String,
		}
		if snapManagerID.Valid {
			t.Assignee.ManagerID = &snapManagerID.String
		}
	}
	return &t, nil
}

func translateTaskPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return task.ErrTaskNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return task.ErrAssigneeNotFound
		case checkViolationCode:
			if pgErr.ConstraintName == "tasks_status_check" {
				return task.ErrInvalidStatus
			}
			return task.ErrInvalidPriority
		}
	}

	return err
}
