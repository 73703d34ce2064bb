package task

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ogurasousui/team-tracker/internal/core/audit"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200

	minTitleLength       = 3
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

var (
	markupPattern = regexp.MustCompile(`<[^>]+>`)
	scriptPattern = regexp.MustCompile(`(?i)<\s*script`)
)

// Service はタスクに関するユースケースをまとめます。
type Service struct {
	repo     Repository
	clock    Clock
	tx       TransactionManager
	recorder audit.Recorder
}

// UseCase はタスクユースケースの公開インターフェースです。
type UseCase interface {
	CreateTask(ctx context.Context, ident identity.Identity, in CreateTaskInput) (*Task, error)
	UpdateTask(ctx context.Context, ident identity.Identity, in UpdateTaskInput) (*Task, error)
	DeleteTask(ctx context.Context, ident identity.Identity, in DeleteTaskInput) error
	GetTask(ctx context.Context, ident identity.Identity, in GetTaskInput) (*Task, error)
	ListTasks(ctx context.Context, ident identity.Identity, in ListTasksInput) (*ListTasksResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager, recorder audit.Recorder) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &Service{repo: repo, clock: clock, tx: tx, recorder: recorder}
}

// CreateTaskInput はタスク作成時の入力です。
type CreateTaskInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	AssignedTo  *string
	DueDate     *time.Time
}

// UpdateTaskInput はタスク更新時の入力です。nil のフィールドは変更しません。
// AssignedTo を外すには AssignedToSet を true にして AssignedTo を nil にします。
type UpdateTaskInput struct {
	ID            string
	Title         *string
	Description   *string
	Status        *Status
	Priority      *Priority
	AssignedTo    *string
	AssignedToSet bool
	DueDate       *time.Time
	DueDateSet    bool
}

// DeleteTaskInput はタスク削除時の入力です。
type DeleteTaskInput struct {
	ID string
}

// GetTaskInput はタスク取得時の入力です。
type GetTaskInput struct {
	ID string
}

// ListTasksInput は一覧取得時の入力です。
type ListTasksInput struct {
	Status      *Status
	Priority    *Priority
	TitleSearch string
	PageSize    int
	PageToken   string
}

// ListTasksResult は一覧取得結果を表します。
type ListTasksResult struct {
	Tasks         []*Task
	NextPageToken string
}

// CreateTask はタスクを作成します。SystemAdmin / HRAdmin / Manager のうち、
// 従業員に紐付いているアクターだけが作成でき、作成者として記録されます。
func (s *Service) CreateTask(ctx context.Context, ident identity.Identity, in CreateTaskInput) (*Task, error) {
	if !canCreateTask(ident) {
		return nil, ErrAccessDenied
	}

	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	description, err := normalizeDescription(in.Description)
	if err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	status := in.Status
	if status == "" {
		status = StatusPending
	}
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("status: %w", ErrInvalidStatus)
	}
	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !IsValidPriority(priority) {
		return nil, fmt.Errorf("priority: %w", ErrInvalidPriority)
	}
	assignedTo := normalizePersonRef(in.AssignedTo)
	if status == StatusInProgress && assignedTo == nil {
		return nil, fmt.Errorf("assigned_to: %w", ErrAssigneeRequired)
	}

	// 期限の過去日チェックは新規作成時のみです。既存タスクの過去期限は
	// 更新時に弾きません。
	dueDate := normalizeDueDate(in.DueDate)
	if dueDate != nil && dueDate.Before(truncateToDate(s.clock.Now())) {
		return nil, fmt.Errorf("due_date: %w", ErrDueDateInPast)
	}

	creatorID := ident.PersonID

	var created *Task
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		t := &Task{
			Title:       title,
			Description: description,
			Status:      status,
			Priority:    priority,
			AssignedTo:  assignedTo,
			CreatedBy:   &creatorID,
			DueDate:     dueDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		result, err := s.repo.Create(txCtx, t)
		if err != nil {
			return err
		}
		created = result

		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindTask,
			EntityID:    created.ID,
			Change:      audit.ChangeCreated,
			ActorUserID: ident.Actor.UserID,
			Snapshot:    created.Snapshot(),
		})
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateTask はタスクを更新します。SystemAdmin / HRAdmin と、タスク担当者の
// 直属マネージャーだけが更新できます。従業員は自分のタスクであっても更新
// できません。
func (s *Service) UpdateTask(ctx context.Context, ident identity.Identity, in UpdateTaskInput) (*Task, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Task
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if !canMutateTask(ident, existing) {
			return ErrAccessDenied
		}

		if in.Title != nil {
			title, err := normalizeTitle(*in.Title)
			if err != nil {
				return fmt.Errorf("title: %w", err)
			}
			existing.Title = title
		}
		if in.Description != nil {
			description, err := normalizeDescription(*in.Description)
			if err != nil {
				return fmt.Errorf("description: %w", err)
			}
			existing.Description = description
		}
		if in.Status != nil {
			if !IsValidStatus(*in.Status) {
				return fmt.Errorf("status: %w", ErrInvalidStatus)
			}
			existing.Status = *in.Status
		}
		if in.Priority != nil {
			if !IsValidPriority(*in.Priority) {
				return fmt.Errorf("priority: %w", ErrInvalidPriority)
			}
			existing.Priority = *in.Priority
		}
		if in.AssignedToSet {
			existing.AssignedTo = normalizePersonRef(in.AssignedTo)
			existing.Assignee = nil
		}
		if in.DueDateSet {
			existing.DueDate = normalizeDueDate(in.DueDate)
		}
		if existing.Status == StatusInProgress && existing.AssignedTo == nil {
			return fmt.Errorf("assigned_to: %w", ErrAssigneeRequired)
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result

		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindTask,
			EntityID:    updated.ID,
			Change:      audit.ChangeChanged,
			ActorUserID: ident.Actor.UserID,
			Snapshot:    updated.Snapshot(),
		})
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTask はタスクを削除します。更新と同じ権限で動作します。
func (s *Service) DeleteTask(ctx context.Context, ident identity.Identity, in DeleteTaskInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if !canMutateTask(ident, existing) {
			return ErrAccessDenied
		}
		if err := s.repo.Delete(txCtx, in.ID); err != nil {
			return err
		}
		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindTask,
			EntityID:    existing.ID,
			Change:      audit.ChangeDeleted,
			ActorUserID: ident.Actor.UserID,
			Snapshot:    existing.Snapshot(),
		})
	})
}

// GetTask はタスクの詳細を取得します。
func (s *Service) GetTask(ctx context.Context, ident identity.Identity, in GetTaskInput) (*Task, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Task
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		t, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if !canViewTask(ident, t) {
			return ErrAccessDenied
		}
		found = t
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListTasks はタスクの一覧を取得します。SystemAdmin / HRAdmin は全件、
// Manager は「自分に割り当てられたタスク」と「直属の部下に割り当てられた
// タスク」の和集合、Employee は自分に割り当てられたタスクのみが対象です。
// 未紐付けのアクターにはエラーではなく空の結果を返します。
func (s *Service) ListTasks(ctx context.Context, ident identity.Identity, in ListTasksInput) (*ListTasksResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}
	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}
	if in.Status != nil && !IsValidStatus(*in.Status) {
		return nil, fmt.Errorf("status: %w", ErrInvalidStatus)
	}
	if in.Priority != nil && !IsValidPriority(*in.Priority) {
		return nil, fmt.Errorf("priority: %w", ErrInvalidPriority)
	}

	filter := ListTasksFilter{
		Status:      in.Status,
		Priority:    in.Priority,
		TitleSearch: strings.TrimSpace(in.TitleSearch),
		Limit:       limit,
		Offset:      offset,
	}
	switch {
	case ident.Tier.Admin():
	case ident.Tier == identity.TierManager && ident.Linked():
		personID := ident.PersonID
		filter.AssigneePersonID = &personID
		filter.IncludeTeam = true
	case ident.Tier == identity.TierEmployee && ident.Linked():
		personID := ident.PersonID
		filter.AssigneePersonID = &personID
	default:
		return &ListTasksResult{Tasks: []*Task{}}, nil
	}

	var (
		tasks     []*Task
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		tasks = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListTasksResult{Tasks: tasks, NextPageToken: nextToken}, nil
}

func canCreateTask(ident identity.Identity) bool {
	if !ident.Linked() {
		return false
	}
	return ident.Tier.Admin() || ident.Tier == identity.TierManager
}

func canMutateTask(ident identity.Identity, t *Task) bool {
	if ident.Tier.Admin() {
		return true
	}
	if ident.Tier != identity.TierManager || !ident.Linked() {
		return false
	}
	return t.Assignee != nil && t.Assignee.ManagerID != nil && *t.Assignee.ManagerID == ident.PersonID
}

func canViewTask(ident identity.Identity, t *Task) bool {
	if ident.Tier.Admin() {
		return true
	}
	if !ident.Linked() {
		return false
	}
	assignedToActor := t.AssignedTo != nil && *t.AssignedTo == ident.PersonID
	switch ident.Tier {
	case identity.TierManager:
		if assignedToActor {
			return true
		}
		return t.Assignee != nil && t.Assignee.ManagerID != nil && *t.Assignee.ManagerID == ident.PersonID
	case identity.TierEmployee:
		return assignedToActor
	default:
		return false
	}
}

func normalizeTitle(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(trimmed); n < minTitleLength || n > maxTitleLength {
		return "", ErrInvalidTitle
	}
	if markupPattern.MatchString(trimmed) {
		return "", ErrInvalidTitle
	}
	return trimmed, nil
}

func normalizeDescription(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > maxDescriptionLength {
		return "", ErrInvalidDescription
	}
	if scriptPattern.MatchString(trimmed) {
		return "", ErrInvalidDescription
	}
	return trimmed, nil
}

func normalizePersonRef(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeDueDate(due *time.Time) *time.Time {
	if due == nil {
		return nil
	}
	normalized := truncateToDate(*due)
	return &normalized
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}
	return offset, nil
}
