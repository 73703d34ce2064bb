package task

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ogurasousui/team-tracker/internal/core/identity"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeTaskRepo struct {
	tasks     map[string]*Task
	snapshots map[string]*AssigneeSnapshot
	sequence  int
	order     []string
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		tasks:     make(map[string]*Task),
		snapshots: make(map[string]*AssigneeSnapshot),
	}
}

func (r *fakeTaskRepo) withSnapshot(t *Task) *Task {
	clone := cloneTask(t)
	if clone.AssignedTo != nil {
		if snapshot, ok := r.snapshots[*clone.AssignedTo]; ok {
			snapCopy := *snapshot
			clone.Assignee = &snapCopy
		}
	}
	return clone
}

func (r *fakeTaskRepo) Create(_ context.Context, t *Task) (*Task, error) {
	if t.AssignedTo != nil {
		if _, ok := r.snapshots[*t.AssignedTo]; !ok {
			return nil, ErrAssigneeNotFound
		}
	}
	clone := cloneTask(t)
	r.sequence++
	clone.ID = fmt.Sprintf("t-%d", r.sequence)
	r.tasks[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return r.withSnapshot(clone), nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *Task) (*Task, error) {
	if _, ok := r.tasks[t.ID]; !ok {
		return nil, ErrTaskNotFound
	}
	if t.AssignedTo != nil {
		if _, ok := r.snapshots[*t.AssignedTo]; !ok {
			return nil, ErrAssigneeNotFound
		}
	}
	r.tasks[t.ID] = cloneTask(t)
	return r.withSnapshot(t), nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	for idx, existingID := range r.order {
		if existingID == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id string) (*Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return r.withSnapshot(t), nil
}

func (r *fakeTaskRepo) List(_ context.Context, filter ListTasksFilter) ([]*Task, string, error) {
	var filtered []*Task
	for _, id := range r.order {
		t := r.withSnapshot(r.tasks[id])
		if filter.AssigneePersonID != nil && !r.matchesScope(t, filter) {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.TitleSearch != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(filter.TitleSearch)) {
			continue
		}
		filtered = append(filtered, t)
	}

	if filter.Offset > len(filtered) {
		return []*Task{}, "", nil
	}
	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	page := filtered[filter.Offset:end]
	nextToken := ""
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}
	return page, nextToken, nil
}

func (r *fakeTaskRepo) matchesScope(t *Task, filter ListTasksFilter) bool {
	if t.AssignedTo != nil && *t.AssignedTo == *filter.AssigneePersonID {
		return true
	}
	if !filter.IncludeTeam {
		return false
	}
	return t.Assignee != nil && t.Assignee.ManagerID != nil && *t.Assignee.ManagerID == *filter.AssigneePersonID
}

func cloneTask(t *Task) *Task {
	if t == nil {
		return nil
	}
	clone := *t
	if t.AssignedTo != nil {
		assignee := *t.AssignedTo
		clone.AssignedTo = &assignee
	}
	if t.CreatedBy != nil {
		creator := *t.CreatedBy
		clone.CreatedBy = &creator
	}
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	clone.Assignee = nil
	return &clone
}

func identFor(tier identity.Tier, personID string) identity.Identity {
	return identity.Identity{Actor: identity.Actor{UserID: "user-" + personID}, Tier: tier, PersonID: personID}
}

var testToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func newTestService(repo *fakeTaskRepo) *Service {
	return NewService(repo, &stubClock{now: testToday}, nil, nil)
}

func ptrStr(s string) *string       { return &s }
func ptrTime(t time.Time) *time.Time { return &t }

func seedTask(t *testing.T, svc *Service, ident identity.Identity, in CreateTaskInput) *Task {
	t.Helper()
	created, err := svc.CreateTask(context.Background(), ident, in)
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return created
}

func TestCreateTask_TierAndLink(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	svc := newTestService(repo)
	in := CreateTaskInput{Title: "Prepare onboarding"}

	created, err := svc.CreateTask(context.Background(), identFor(identity.TierManager, "p-mgr"), in)
	if err != nil {
		t.Fatalf("manager create returned error: %v", err)
	}
	if created.CreatedBy == nil || *created.CreatedBy != "p-mgr" {
		t.Fatalf("expected created_by to be the actor person, got %v", created.CreatedBy)
	}
	if created.Status != StatusPending || created.Priority != PriorityMedium {
		t.Fatalf("expected default status/priority, got %s/%s", created.Status, created.Priority)
	}

	// 従業員はタスクを作成できない。
	if _, err := svc.CreateTask(context.Background(), identFor(identity.TierEmployee, "p-emp"), in); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("employee create: expected ErrAccessDenied, got %v", err)
	}

	// 従業員に紐付いていないアクターは Tier を問わず作成できない。
	unlinked := identity.Identity{Actor: identity.Actor{UserID: "root", Superuser: true}, Tier: identity.TierSystemAdmin}
	if _, err := svc.CreateTask(context.Background(), unlinked, in); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("unlinked create: expected ErrAccessDenied, got %v", err)
	}
}

func TestCreateTask_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	repo.snapshots["p-emp"] = &AssigneeSnapshot{ID: "p-emp"}
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	cases := []struct {
		name string
		in   CreateTaskInput
		want error
	}{
		{"title too short", CreateTaskInput{Title: "ab"}, ErrInvalidTitle},
		{"title with markup", CreateTaskInput{Title: "Review <b>report</b>"}, ErrInvalidTitle},
		{"title too long", CreateTaskInput{Title: strings.Repeat("a", 201)}, ErrInvalidTitle},
		{"description with script", CreateTaskInput{Title: "Review", Description: "<script>alert(1)</script>"}, ErrInvalidDescription},
		{"unknown status", CreateTaskInput{Title: "Review", Status: Status("paused")}, ErrInvalidStatus},
		{"unknown priority", CreateTaskInput{Title: "Review", Priority: Priority("critical")}, ErrInvalidPriority},
		{"in progress without assignee", CreateTaskInput{Title: "Review", Status: StatusInProgress}, ErrAssigneeRequired},
		{"due date in the past", CreateTaskInput{Title: "Review", DueDate: ptrTime(testToday.AddDate(0, 0, -1))}, ErrDueDateInPast},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := svc.CreateTask(context.Background(), admin, tc.in); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := svc.CreateTask(context.Background(), admin, CreateTaskInput{
		Title:      "Review quarterly report",
		Status:     StatusInProgress,
		AssignedTo: ptrStr("p-emp"),
		DueDate:    ptrTime(testToday),
	}); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}
}

func TestCreateTask_LengthLimitsCountRunes(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	// 長さ制限はバイト数ではなく文字数で数える。
	if _, err := svc.CreateTask(context.Background(), admin, CreateTaskInput{Title: "あ"}); !errors.Is(err, ErrInvalidTitle) {
		t.Errorf("1-rune title: expected ErrInvalidTitle, got %v", err)
	}

	created, err := svc.CreateTask(context.Background(), admin, CreateTaskInput{
		Title:       strings.Repeat("あ", 150),
		Description: strings.Repeat("い", 2000),
	})
	if err != nil {
		t.Fatalf("150-rune title rejected: %v", err)
	}
	if got := created.Title; got != strings.Repeat("あ", 150) {
		t.Fatalf("title not preserved, got %d bytes", len(got))
	}

	if _, err := svc.CreateTask(context.Background(), admin, CreateTaskInput{
		Title:       "Review",
		Description: strings.Repeat("い", 2001),
	}); !errors.Is(err, ErrInvalidDescription) {
		t.Errorf("2001-rune description: expected ErrInvalidDescription, got %v", err)
	}
}

func TestUpdateTask_PastDueDateKept(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	repo.snapshots["p-emp"] = &AssigneeSnapshot{ID: "p-emp"}
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	created := seedTask(t, svc, admin, CreateTaskInput{Title: "Review report", DueDate: ptrTime(testToday)})

	// 期限の過去日チェックは作成時のみで、更新では過去日も受け付ける。
	past := testToday.AddDate(0, 0, -7)
	updated, err := svc.UpdateTask(context.Background(), admin, UpdateTaskInput{ID: created.ID, DueDate: &past, DueDateSet: true})
	if err != nil {
		t.Fatalf("UpdateTask returned error: %v", err)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(past) {
		t.Fatalf("expected past due date to be stored, got %v", updated.DueDate)
	}
	if !updated.IsOverdue(testToday) {
		t.Fatal("expected task to be overdue")
	}
}

func TestUpdateTask_InProgressRequiresAssignee(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	repo.snapshots["p-emp"] = &AssigneeSnapshot{ID: "p-emp"}
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	created := seedTask(t, svc, admin, CreateTaskInput{Title: "Review report", AssignedTo: ptrStr("p-emp")})

	// 担当者を外したまま進行中にはできない。
	inProgress := StatusInProgress
	_, err := svc.UpdateTask(context.Background(), admin, UpdateTaskInput{
		ID:            created.ID,
		Status:        &inProgress,
		AssignedTo:    nil,
		AssignedToSet: true,
	})
	if !errors.Is(err, ErrAssigneeRequired) {
		t.Fatalf("expected ErrAssigneeRequired, got %v", err)
	}

	if _, err := svc.UpdateTask(context.Background(), admin, UpdateTaskInput{ID: created.ID, Status: &inProgress}); err != nil {
		t.Fatalf("in-progress with assignee rejected: %v", err)
	}
}

func TestMutateTask_ManagerScope(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	managerID := "p-mgr"
	repo.snapshots["p-report"] = &AssigneeSnapshot{ID: "p-report", ManagerID: &managerID}
	repo.snapshots["p-outsider"] = &AssigneeSnapshot{ID: "p-outsider"}
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	teamTask := seedTask(t, svc, admin, CreateTaskInput{Title: "Team task", AssignedTo: ptrStr("p-report")})
	otherTask := seedTask(t, svc, admin, CreateTaskInput{Title: "Other task", AssignedTo: ptrStr("p-outsider")})

	manager := identFor(identity.TierManager, managerID)
	title := "Team task updated"
	if _, err := svc.UpdateTask(context.Background(), manager, UpdateTaskInput{ID: teamTask.ID, Title: &title}); err != nil {
		t.Fatalf("manager update of team task returned error: %v", err)
	}
	if _, err := svc.UpdateTask(context.Background(), manager, UpdateTaskInput{ID: otherTask.ID, Title: &title}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("manager update outside team: expected ErrAccessDenied, got %v", err)
	}
	if err := svc.DeleteTask(context.Background(), manager, DeleteTaskInput{ID: otherTask.ID}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("manager delete outside team: expected ErrAccessDenied, got %v", err)
	}

	// 従業員は自分に割り当てられたタスクでも変更・削除できない。
	employee := identFor(identity.TierEmployee, "p-report")
	if _, err := svc.UpdateTask(context.Background(), employee, UpdateTaskInput{ID: teamTask.ID, Title: &title}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("employee update own task: expected ErrAccessDenied, got %v", err)
	}
	if err := svc.DeleteTask(context.Background(), employee, DeleteTaskInput{ID: teamTask.ID}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("employee delete own task: expected ErrAccessDenied, got %v", err)
	}
}

func TestGetTask_ScopeByTier(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	managerID := "p-mgr"
	repo.snapshots["p-report"] = &AssigneeSnapshot{ID: "p-report", ManagerID: &managerID}
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	created := seedTask(t, svc, admin, CreateTaskInput{Title: "Team task", AssignedTo: ptrStr("p-report")})

	cases := []struct {
		name    string
		ident   identity.Identity
		allowed bool
	}{
		{"hr admin", identFor(identity.TierHRAdmin, "p-hr"), true},
		{"system admin", identity.Identity{Actor: identity.Actor{UserID: "root", Superuser: true}, Tier: identity.TierSystemAdmin}, true},
		{"assignee", identFor(identity.TierEmployee, "p-report"), true},
		{"assignee's manager", identFor(identity.TierManager, managerID), true},
		{"other employee", identFor(identity.TierEmployee, "p-other"), false},
		{"other manager", identFor(identity.TierManager, "p-other-mgr"), false},
		{"unlinked", identity.Identity{Actor: identity.Actor{UserID: "ghost"}, Tier: identity.TierUnlinked}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.GetTask(context.Background(), tc.ident, GetTaskInput{ID: created.ID})
			if tc.allowed && err != nil {
				t.Errorf("expected access, got %v", err)
			}
			if !tc.allowed && !errors.Is(err, ErrAccessDenied) {
				t.Errorf("expected ErrAccessDenied, got %v", err)
			}
		})
	}
}

func TestListTasks_ManagerUnionWithoutDuplicates(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	managerID := "p-mgr"
	repo.snapshots[managerID] = &AssigneeSnapshot{ID: managerID}
	repo.snapshots["p-report"] = &AssigneeSnapshot{ID: "p-report", ManagerID: &managerID}
	repo.snapshots["p-outsider"] = &AssigneeSnapshot{ID: "p-outsider"}
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	seedTask(t, svc, admin, CreateTaskInput{Title: "Assigned to manager", AssignedTo: ptrStr(managerID)})
	seedTask(t, svc, admin, CreateTaskInput{Title: "Assigned to report", AssignedTo: ptrStr("p-report")})
	seedTask(t, svc, admin, CreateTaskInput{Title: "Assigned elsewhere", AssignedTo: ptrStr("p-outsider")})
	seedTask(t, svc, admin, CreateTaskInput{Title: "Unassigned backlog item"})

	result, err := svc.ListTasks(context.Background(), identFor(identity.TierManager, managerID), ListTasksInput{})
	if err != nil {
		t.Fatalf("manager list returned error: %v", err)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("expected union of own and team tasks (2), got %d", len(result.Tasks))
	}
	seen := make(map[string]bool, len(result.Tasks))
	for _, item := range result.Tasks {
		if seen[item.ID] {
			t.Fatalf("task %s returned twice", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestListTasks_ScopeByTier(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	repo.snapshots["p-emp"] = &AssigneeSnapshot{ID: "p-emp"}
	repo.snapshots["p-other"] = &AssigneeSnapshot{ID: "p-other"}
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	seedTask(t, svc, admin, CreateTaskInput{Title: "Mine to do", AssignedTo: ptrStr("p-emp")})
	seedTask(t, svc, admin, CreateTaskInput{Title: "Someone else's", AssignedTo: ptrStr("p-other")})

	result, err := svc.ListTasks(context.Background(), admin, ListTasksInput{})
	if err != nil {
		t.Fatalf("admin list returned error: %v", err)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("admin should see all tasks, got %d", len(result.Tasks))
	}

	result, err = svc.ListTasks(context.Background(), identFor(identity.TierEmployee, "p-emp"), ListTasksInput{})
	if err != nil {
		t.Fatalf("employee list returned error: %v", err)
	}
	if len(result.Tasks) != 1 || result.Tasks[0].Title != "Mine to do" {
		t.Fatalf("employee should see only assigned tasks, got %+v", result.Tasks)
	}

	unlinked := identity.Identity{Actor: identity.Actor{UserID: "ghost"}, Tier: identity.TierUnlinked}
	result, err = svc.ListTasks(context.Background(), unlinked, ListTasksInput{})
	if err != nil {
		t.Fatalf("unlinked list returned error: %v", err)
	}
	if len(result.Tasks) != 0 {
		t.Fatalf("unlinked list must be an empty scope, got %d rows", len(result.Tasks))
	}
}

func TestListTasks_Filters(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	repo.snapshots["p-emp"] = &AssigneeSnapshot{ID: "p-emp"}
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	seedTask(t, svc, admin, CreateTaskInput{Title: "Write release notes", Priority: PriorityHigh})
	seedTask(t, svc, admin, CreateTaskInput{Title: "Fix login bug", Status: StatusInProgress, AssignedTo: ptrStr("p-emp")})
	seedTask(t, svc, admin, CreateTaskInput{Title: "Plan release party"})

	status := StatusInProgress
	result, err := svc.ListTasks(context.Background(), admin, ListTasksInput{Status: &status})
	if err != nil {
		t.Fatalf("status filter returned error: %v", err)
	}
	if len(result.Tasks) != 1 || result.Tasks[0].Title != "Fix login bug" {
		t.Fatalf("status filter mismatch: %+v", result.Tasks)
	}

	result, err = svc.ListTasks(context.Background(), admin, ListTasksInput{TitleSearch: "release"})
	if err != nil {
		t.Fatalf("title search returned error: %v", err)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("title search expected 2 tasks, got %d", len(result.Tasks))
	}

	badStatus := Status("paused")
	if _, err := svc.ListTasks(context.Background(), admin, ListTasksInput{Status: &badStatus}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestDaysUntilDue(t *testing.T) {
	t.Parallel()

	due := testToday.AddDate(0, 0, 3)
	task := &Task{DueDate: &due, Status: StatusPending}
	if days, ok := task.DaysUntilDue(testToday); !ok || days != 3 {
		t.Fatalf("expected 3 days until due, got %d ok=%v", days, ok)
	}

	task = &Task{Status: StatusPending}
	if _, ok := task.DaysUntilDue(testToday); ok {
		t.Fatal("task without due date must report ok=false")
	}

	past := testToday.AddDate(0, 0, -2)
	task = &Task{DueDate: &past, Status: StatusCompleted}
	if task.IsOverdue(testToday) {
		t.Fatal("completed task must not be overdue")
	}
}
