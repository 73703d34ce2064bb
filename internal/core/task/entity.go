package task

import "time"

// Status はタスクの進行状態です。
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValidStatus は status が定義済みの値かどうかを返します。
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Priority はタスクの優先度です。
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValidPriority は priority が定義済みの値かどうかを返します。
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Task はタスクエンティティです。AssignedTo が nil のタスクは未割り当てです。
// CreatedBy は作成時に固定され、以後変更されません。
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	AssignedTo  *string
	CreatedBy   *string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Assignee    *AssigneeSnapshot
}

// AssigneeSnapshot は担当者のスコープ判定に必要な最小限の情報です。
type AssigneeSnapshot struct {
	ID        string
	FirstName string
	LastName  string
	ManagerID *string
}

// IsOverdue は期限切れかどうかを返します。期限なし・完了・中止は対象外です。
func (t *Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == StatusCompleted || t.Status == StatusCancelled {
		return false
	}
	return truncateToDate(today).After(truncateToDate(*t.DueDate))
}

// DaysUntilDue は期限までの日数を返します。期限なしの場合は ok が false です。
// 期限超過の場合は負の値になります。
func (t *Task) DaysUntilDue(today time.Time) (days int, ok bool) {
	if t.DueDate == nil {
		return 0, false
	}
	diff := truncateToDate(*t.DueDate).Sub(truncateToDate(today))
	return int(diff.Hours() / 24), true
}

// Snapshot は監査履歴に残すフィールド一式を返します。
func (t *Task) Snapshot() map[string]any {
	snapshot := map[string]any{
		"title":       t.Title,
		"description": t.Description,
		"status":      string(t.Status),
		"priority":    string(t.Priority),
	}
	if t.AssignedTo != nil {
		snapshot["assigned_to"] = *t.AssignedTo
	}
	if t.CreatedBy != nil {
		snapshot["created_by"] = *t.CreatedBy
	}
	if t.DueDate != nil {
		snapshot["due_date"] = t.DueDate.Format("2006-01-02")
	}
	return snapshot
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
