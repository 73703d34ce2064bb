package handler

import (
	"context"
	"testing"

	taskpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/task/v1"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/ogurasousui/team-tracker/internal/core/task"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubTaskUseCase struct {
	createInput task.CreateTaskInput
	createOut   *task.Task
	createErr   error

	updateInput task.UpdateTaskInput
	updateOut   *task.Task
	updateErr   error

	deleteInput task.DeleteTaskInput
	deleteErr   error

	getInput task.GetTaskInput
	getOut   *task.Task
	getErr   error

	listInput task.ListTasksInput
	listOut   *task.ListTasksResult
	listErr   error
}

func (s *stubTaskUseCase) CreateTask(ctx context.Context, _ identity.Identity, in task.CreateTaskInput) (*task.Task, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubTaskUseCase) UpdateTask(ctx context.Context, _ identity.Identity, in task.UpdateTaskInput) (*task.Task, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubTaskUseCase) DeleteTask(ctx context.Context, _ identity.Identity, in task.DeleteTaskInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func (s *stubTaskUseCase) GetTask(ctx context.Context, _ identity.Identity, in task.GetTaskInput) (*task.Task, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubTaskUseCase) ListTasks(ctx context.Context, _ identity.Identity, in task.ListTasksInput) (*task.ListTasksResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func TestTaskGrpcHandler_CreateTask_StatusMapping(t *testing.T) {
	t.Parallel()

	stub := &stubTaskUseCase{createOut: &task.Task{ID: "t-1", Status: task.StatusInProgress, Priority: task.PriorityHigh}}
	handler := NewTaskGrpcHandler(stub)

	resp, err := handler.CreateTask(adminContext(), &taskpb.CreateTaskRequest{
		Title:      "Review quarterly report",
		Status:     taskpb.TaskStatus_TASK_STATUS_IN_PROGRESS,
		Priority:   taskpb.TaskPriority_TASK_PRIORITY_HIGH,
		AssignedTo: wrapperspb.String("p-emp"),
		DueDate:    wrapperspb.String("2025-12-01"),
	})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	if stub.createInput.Status != task.StatusInProgress {
		t.Errorf("expected in_progress status, got %s", stub.createInput.Status)
	}
	if stub.createInput.DueDate == nil || stub.createInput.DueDate.Format("2006-01-02") != "2025-12-01" {
		t.Errorf("expected due date parsed, got %+v", stub.createInput.DueDate)
	}
	if resp.GetTask().GetStatus() != taskpb.TaskStatus_TASK_STATUS_IN_PROGRESS {
		t.Fatalf("unexpected response status: %v", resp.GetTask().GetStatus())
	}
}

func TestTaskGrpcHandler_UpdateTask_Unassign(t *testing.T) {
	t.Parallel()

	stub := &stubTaskUseCase{updateOut: &task.Task{ID: "t-1"}}
	handler := NewTaskGrpcHandler(stub)

	// 空文字の assigned_to は割り当て解除として扱う。
	if _, err := handler.UpdateTask(adminContext(), &taskpb.UpdateTaskRequest{
		Id:         "t-1",
		AssignedTo: wrapperspb.String(""),
	}); err != nil {
		t.Fatalf("UpdateTask returned error: %v", err)
	}

	if !stub.updateInput.AssignedToSet {
		t.Fatal("expected AssignedToSet to be true")
	}
	if stub.updateInput.AssignedTo != nil {
		t.Fatalf("expected nil assignee, got %+v", stub.updateInput.AssignedTo)
	}
}

func TestTaskGrpcHandler_CreateTask_AssigneeRequired(t *testing.T) {
	t.Parallel()

	stub := &stubTaskUseCase{createErr: task.ErrAssigneeRequired}
	handler := NewTaskGrpcHandler(stub)

	_, err := handler.CreateTask(adminContext(), &taskpb.CreateTaskRequest{
		Title:  "Review quarterly report",
		Status: taskpb.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
