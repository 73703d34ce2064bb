package task

import "errors"

var (
	ErrInvalidID          = errors.New("task: invalid id")
	ErrInvalidTitle       = errors.New("task: title must be 3 to 200 characters without markup")
	ErrInvalidDescription = errors.New("task: invalid description")
	ErrInvalidStatus      = errors.New("task: invalid status")
	ErrInvalidPriority    = errors.New("task: invalid priority")
	ErrDueDateInPast      = errors.New("task: due date cannot be in the past")
	ErrAssigneeRequired   = errors.New("task: in-progress task requires an assignee")
	ErrAssigneeNotFound   = errors.New("task: assignee not found")
	ErrInvalidPageSize    = errors.New("task: invalid page size")
	ErrInvalidPageToken   = errors.New("task: invalid page token")
	ErrTaskNotFound       = errors.New("task: not found")
	ErrAccessDenied       = errors.New("task: access denied")
)
