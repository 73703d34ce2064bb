package handler

import (
	"context"
	"fmt"
	"strings"

	taskpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/task/v1"
	"github.com/ogurasousui/team-tracker/internal/core/task"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TaskGrpcHandler は TaskService の gRPC 実装です。
type TaskGrpcHandler struct {
	svc task.UseCase
	taskpb.UnimplementedTaskServiceServer
}

// NewTaskGrpcHandler は TaskGrpcHandler を生成します。
func NewTaskGrpcHandler(svc task.UseCase) *TaskGrpcHandler {
	return &TaskGrpcHandler{svc: svc}
}

// CreateTask はタスクを作成します。
func (h *TaskGrpcHandler) CreateTask(ctx context.Context, req *taskpb.CreateTaskRequest) (*taskpb.CreateTaskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("due_date: %v", err))
	}

	created, err := h.svc.CreateTask(ctx, ident, task.CreateTaskInput{
		Title:       req.GetTitle(),
		Description: req.GetDescription(),
		Status:      toDomainTaskStatus(req.GetStatus()),
		Priority:    toDomainTaskPriority(req.GetPriority()),
		AssignedTo:  stringValueToPointer(req.AssignedTo),
		DueDate:     dueDate,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &taskpb.CreateTaskResponse{Task: toProtoTask(created)}, nil
}

// UpdateTask はタスクを更新します。
func (h *TaskGrpcHandler) UpdateTask(ctx context.Context, req *taskpb.UpdateTaskRequest) (*taskpb.UpdateTaskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	in := task.UpdateTaskInput{
		ID:          req.GetId(),
		Title:       stringValueToPointer(req.Title),
		Description: stringValueToPointer(req.Description),
	}

	if req.GetStatus() != taskpb.TaskStatus_TASK_STATUS_UNSPECIFIED {
		domainStatus := toDomainTaskStatus(req.GetStatus())
		in.Status = &domainStatus
	}
	if req.GetPriority() != taskpb.TaskPriority_TASK_PRIORITY_UNSPECIFIED {
		domainPriority := toDomainTaskPriority(req.GetPriority())
		in.Priority = &domainPriority
	}

	// 空文字のラッパーは割り当て・期限の解除を意味します。
	if req.AssignedTo != nil {
		in.AssignedToSet = true
		if value := strings.TrimSpace(req.AssignedTo.GetValue()); value != "" {
			in.AssignedTo = &value
		}
	}
	if req.DueDate != nil {
		in.DueDateSet = true
		if strings.TrimSpace(req.DueDate.GetValue()) != "" {
			due, err := parseDate(req.DueDate.GetValue())
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("due_date: %v", err))
			}
			in.DueDate = &due
		}
	}

	updated, err := h.svc.UpdateTask(ctx, ident, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &taskpb.UpdateTaskResponse{Task: toProtoTask(updated)}, nil
}

// DeleteTask はタスクを削除します。
func (h *TaskGrpcHandler) DeleteTask(ctx context.Context, req *taskpb.DeleteTaskRequest) (*taskpb.DeleteTaskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.svc.DeleteTask(ctx, ident, task.DeleteTaskInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &taskpb.DeleteTaskResponse{}, nil
}

// GetTask はタスクを取得します。
func (h *TaskGrpcHandler) GetTask(ctx context.Context, req *taskpb.GetTaskRequest) (*taskpb.GetTaskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetTask(ctx, ident, task.GetTaskInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &taskpb.GetTaskResponse{Task: toProtoTask(found)}, nil
}

// ListTasks はタスクの一覧を取得します。
func (h *TaskGrpcHandler) ListTasks(ctx context.Context, req *taskpb.ListTasksRequest) (*taskpb.ListTasksResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	in := task.ListTasksInput{
		TitleSearch: req.GetTitleSearch(),
		PageSize:    int(req.GetPageSize()),
		PageToken:   req.GetPageToken(),
	}
	if req.GetStatus() != taskpb.TaskStatus_TASK_STATUS_UNSPECIFIED {
		domainStatus := toDomainTaskStatus(req.GetStatus())
		in.Status = &domainStatus
	}
	if req.GetPriority() != taskpb.TaskPriority_TASK_PRIORITY_UNSPECIFIED {
		domainPriority := toDomainTaskPriority(req.GetPriority())
		in.Priority = &domainPriority
	}

	result, err := h.svc.ListTasks(ctx, ident, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	protoTasks := make([]*taskpb.Task, 0, len(result.Tasks))
	for _, item := range result.Tasks {
		protoTasks = append(protoTasks, toProtoTask(item))
	}

	return &taskpb.ListTasksResponse{
		Tasks:         protoTasks,
		NextPageToken: result.NextPageToken,
	}, nil
}

func toProtoTask(t *task.Task) *taskpb.Task {
	if t == nil {
		return nil
	}

	protoTask := &taskpb.Task{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      toProtoTaskStatus(t.Status),
		Priority:    toProtoTaskPriority(t.Priority),
		AssignedTo:  pointerToStringValue(t.AssignedTo),
		CreatedBy:   pointerToStringValue(t.CreatedBy),
		DueDate:     datePointerToStringValue(t.DueDate),
		CreatedAt:   timestamppb.New(t.CreatedAt),
		UpdatedAt:   timestamppb.New(t.UpdatedAt),
	}
	if t.Assignee != nil {
		protoTask.Assignee = &taskpb.AssigneeSummary{
			Id:        t.Assignee.ID,
			FirstName: t.Assignee.FirstName,
			LastName:  t.Assignee.LastName,
			ManagerId: pointerToStringValue(t.Assignee.ManagerID),
		}
	}
	return protoTask
}

func toProtoTaskStatus(status task.Status) taskpb.TaskStatus {
	switch status {
	case task.StatusPending:
		return taskpb.TaskStatus_TASK_STATUS_PENDING
	case task.StatusInProgress:
		return taskpb.TaskStatus_TASK_STATUS_IN_PROGRESS
	case task.StatusCompleted:
		return taskpb.TaskStatus_TASK_STATUS_COMPLETED
	case task.StatusCancelled:
		return taskpb.TaskStatus_TASK_STATUS_CANCELLED
	default:
		return taskpb.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

func toDomainTaskStatus(status taskpb.TaskStatus) task.Status {
	switch status {
	case taskpb.TaskStatus_TASK_STATUS_PENDING:
		return task.StatusPending
	case taskpb.TaskStatus_TASK_STATUS_IN_PROGRESS:
		return task.StatusInProgress
	case taskpb.TaskStatus_TASK_STATUS_COMPLETED:
		return task.StatusCompleted
	case taskpb.TaskStatus_TASK_STATUS_CANCELLED:
		return task.StatusCancelled
	default:
		return task.Status("")
	}
}

func toProtoTaskPriority(priority task.Priority) taskpb.TaskPriority {
	switch priority {
	case task.PriorityLow:
		return taskpb.TaskPriority_TASK_PRIORITY_LOW
	case task.PriorityMedium:
		return taskpb.TaskPriority_TASK_PRIORITY_MEDIUM
	case task.PriorityHigh:
		return taskpb.TaskPriority_TASK_PRIORITY_HIGH
	case task.PriorityUrgent:
		return taskpb.TaskPriority_TASK_PRIORITY_URGENT
	default:
		return taskpb.TaskPriority_TASK_PRIORITY_UNSPECIFIED
	}
}

func toDomainTaskPriority(priority taskpb.TaskPriority) task.Priority {
	switch priority {
	case taskpb.TaskPriority_TASK_PRIORITY_LOW:
		return task.PriorityLow
	case taskpb.TaskPriority_TASK_PRIORITY_MEDIUM:
		return task.PriorityMedium
	case taskpb.TaskPriority_TASK_PRIORITY_HIGH:
		return task.PriorityHigh
	case taskpb.TaskPriority_TASK_PRIORITY_URGENT:
		return task.PriorityUrgent
	default:
		return task.Priority("")
	}
}
