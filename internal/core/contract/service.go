package contract

import (
	"context"
	"fmt"
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

	// DefaultMinimumHourlyRate は設定が無い場合の最低時給です。
	DefaultMinimumHourlyRate = 12.45

	maxJobTitleLength  = 255
	maxContractedHours = 168
)

// Service は契約に関するユースケースと在籍状態の再計算をまとめます。
type Service struct {
	repo          Repository
	persons       PersonStatusStore
	clock         Clock
	tx            TransactionManager
	recorder      audit.Recorder
	minHourlyRate float64
}

// UseCase は契約ユースケースの公開インターフェースです。
type UseCase interface {
	CreateContract(ctx context.Context, ident identity.Identity, in CreateContractInput) (*Contract, error)
	UpdateContract(ctx context.Context, ident identity.Identity, in UpdateContractInput) (*Contract, error)
	DeleteContract(ctx context.Context, ident identity.Identity, in DeleteContractInput) error
	GetContract(ctx context.Context, ident identity.Identity, in GetContractInput) (*Contract, error)
	ListContracts(ctx context.Context, ident identity.Identity, in ListContractsInput) (*ListContractsResult, error)
}

// NewService は Service を生成します。minHourlyRate が 0 以下の場合は
// 既定の最低時給を使います。
func NewService(repo Repository, persons PersonStatusStore, clock Clock, tx TransactionManager, recorder audit.Recorder, minHourlyRate float64) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	if minHourlyRate <= 0 {
		minHourlyRate = DefaultMinimumHourlyRate
	}
	return &Service{repo: repo, persons: persons, clock: clock, tx: tx, recorder: recorder, minHourlyRate: minHourlyRate}
}

// CreateContractInput は契約作成時の入力です。
type CreateContractInput struct {
	PersonID        string
	JobTitle        string
	ContractStart   time.Time
	ContractEnd     *time.Time
	HourlyRate      float64
	ContractedHours float64
}

// UpdateContractInput は契約更新時の入力です。nil のフィールドは変更しません。
type UpdateContractInput struct {
	ID              string
	PersonID        *string
	JobTitle        *string
	ContractStart   *time.Time
	ContractEnd     *time.Time
	ContractEndSet  bool
	HourlyRate      *float64
	ContractedHours *float64
}

// DeleteContractInput は契約削除時の入力です。
type DeleteContractInput struct {
	ID string
}

// GetContractInput は契約取得時の入力です。
type GetContractInput struct {
	ID string
}

// ListContractsInput は一覧取得時の入力です。
type ListContractsInput struct {
	PersonID  *string
	PageSize  int
	PageToken string
}

// ListContractsResult は一覧取得結果を表します。
type ListContractsResult struct {
	Contracts     []*Contract
	NextPageToken string
}

// CreateContract は契約を作成します。SystemAdmin / HRAdmin 専用です。
// 作成の最後に対象従業員の在籍状態を同一トランザクション内で再計算します。
func (s *Service) CreateContract(ctx context.Context, ident identity.Identity, in CreateContractInput) (*Contract, error) {
	if !ident.Tier.Admin() {
		return nil, ErrAccessDenied
	}

	personID := strings.TrimSpace(in.PersonID)
	if personID == "" {
		return nil, fmt.Errorf("person_id: %w", ErrInvalidPersonID)
	}
	jobTitle, err := normalizeJobTitle(in.JobTitle)
	if err != nil {
		return nil, fmt.Errorf("job_title: %w", err)
	}
	if in.ContractStart.IsZero() {
		return nil, fmt.Errorf("contract_start: %w", ErrInvalidContractStart)
	}
	start := truncateToDate(in.ContractStart)
	end := normalizeEndDate(in.ContractEnd)
	if err := validateDateRange(start, end); err != nil {
		return nil, fmt.Errorf("contract_end: %w", err)
	}
	if err := s.validateHourlyRate(in.HourlyRate); err != nil {
		return nil, fmt.Errorf("hourly_rate: %w", err)
	}
	if err := validateContractedHours(in.ContractedHours); err != nil {
		return nil, fmt.Errorf("contracted_hours: %w", err)
	}

	var created *Contract
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		c := &Contract{
			PersonID:        personID,
			JobTitle:        jobTitle,
			ContractStart:   start,
			ContractEnd:     end,
			HourlyRate:      in.HourlyRate,
			ContractedHours: in.ContractedHours,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		result, err := s.repo.Create(txCtx, c)
		if err != nil {
			return err
		}
		created = result

		if err := s.recomputeActiveStatus(txCtx, created.PersonID); err != nil {
			return err
		}
		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindContract,
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

// UpdateContract は契約を更新します。SystemAdmin / HRAdmin 専用です。
// 契約を別の従業員に付け替えた場合は、付け替え元と付け替え先の両方の
// 在籍状態を再計算します。
func (s *Service) UpdateContract(ctx context.Context, ident identity.Identity, in UpdateContractInput) (*Contract, error) {
	if !ident.Tier.Admin() {
		return nil, ErrAccessDenied
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Contract
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		previousPersonID := existing.PersonID

		if in.PersonID != nil {
			personID := strings.TrimSpace(*in.PersonID)
			if personID == "" {
				return fmt.Errorf("person_id: %w", ErrInvalidPersonID)
			}
			existing.PersonID = personID
		}
		if in.JobTitle != nil {
			jobTitle, err := normalizeJobTitle(*in.JobTitle)
			if err != nil {
				return fmt.Errorf("job_title: %w", err)
			}
			existing.JobTitle = jobTitle
		}
		if in.ContractStart != nil {
			if in.ContractStart.IsZero() {
				return fmt.Errorf("contract_start: %w", ErrInvalidContractStart)
			}
			existing.ContractStart = truncateToDate(*in.ContractStart)
		}
		if in.ContractEndSet {
			existing.ContractEnd = normalizeEndDate(in.ContractEnd)
		}
		if err := validateDateRange(existing.ContractStart, existing.ContractEnd); err != nil {
			return fmt.Errorf("contract_end: %w", err)
		}
		if in.HourlyRate != nil {
			if err := s.validateHourlyRate(*in.HourlyRate); err != nil {
				return fmt.Errorf("hourly_rate: %w", err)
			}
			existing.HourlyRate = *in.HourlyRate
		}
		if in.ContractedHours != nil {
			if err := validateContractedHours(*in.ContractedHours); err != nil {
				return fmt.Errorf("contracted_hours: %w", err)
			}
			existing.ContractedHours = *in.ContractedHours
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result

		if err := s.recomputeActiveStatus(txCtx, updated.PersonID); err != nil {
			return err
		}
		if previousPersonID != updated.PersonID {
			if err := s.recomputeActiveStatus(txCtx, previousPersonID); err != nil {
				return err
			}
		}
		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindContract,
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

// DeleteContract は契約を削除します。SystemAdmin / HRAdmin 専用です。
// 最後の有効な契約を削除すると、再計算によって従業員は在籍外になります。
func (s *Service) DeleteContract(ctx context.Context, ident identity.Identity, in DeleteContractInput) error {
	if !ident.Tier.Admin() {
		return ErrAccessDenied
	}
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(txCtx, in.ID); err != nil {
			return err
		}
		if err := s.recomputeActiveStatus(txCtx, existing.PersonID); err != nil {
			return err
		}
		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindContract,
			EntityID:    existing.ID,
			Change:      audit.ChangeDeleted,
			ActorUserID: ident.Actor.UserID,
			Snapshot:    existing.Snapshot(),
		})
	})
}

// GetContract は契約の詳細を取得します。SystemAdmin / HRAdmin と、契約の
// 従業員を直属で管理するマネージャーのみが閲覧できます。従業員は自身の
// 契約であっても一覧・詳細経路では閲覧できません。
func (s *Service) GetContract(ctx context.Context, ident identity.Identity, in GetContractInput) (*Contract, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Contract
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		c, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if !canViewContract(ident, c) {
			return ErrAccessDenied
		}
		found = c
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

func canViewContract(ident identity.Identity, c *Contract) bool {
	if ident.Tier.Admin() {
		return true
	}
	if ident.Tier != identity.TierManager || !ident.Linked() {
		return false
	}
	return c.Person != nil && c.Person.ManagerID != nil && *c.Person.ManagerID == ident.PersonID
}

// ListContracts は契約の一覧を取得します。SystemAdmin / HRAdmin は全件、
// Manager は直属の部下の契約のみが対象です。Employee と未紐付けのアクターには
// エラーではなく空の結果を返します。
func (s *Service) ListContracts(ctx context.Context, ident identity.Identity, in ListContractsInput) (*ListContractsResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}
	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	filter := ListContractsFilter{PersonID: in.PersonID, Limit: limit, Offset: offset}
	switch {
	case ident.Tier.Admin():
	case ident.Tier == identity.TierManager:
		managerID := ident.PersonID
		filter.ManagerID = &managerID
	default:
		return &ListContractsResult{Contracts: []*Contract{}}, nil
	}

	var (
		contracts []*Contract
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		contracts = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListContractsResult{Contracts: contracts, NextPageToken: nextToken}, nil
}

// recomputeActiveStatus は従業員の契約を全件走査して在籍フラグを導出します。
// 差分更新はせず毎回完全に再計算するため、契約の作成・更新・削除がどの順で
// 何度起きても結果は契約集合だけで決まります。
func (s *Service) recomputeActiveStatus(ctx context.Context, personID string) error {
	contracts, err := s.repo.ListByPerson(ctx, personID)
	if err != nil {
		return err
	}
	active := ActiveFromContracts(contracts, s.clock.Now())
	return s.persons.SetActiveStatus(ctx, personID, active)
}

func (s *Service) validateHourlyRate(rate float64) error {
	if rate < s.minHourlyRate {
		return ErrHourlyRateTooLow
	}
	return nil
}

func normalizeJobTitle(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxJobTitleLength {
		return "", ErrInvalidJobTitle
	}
	return trimmed, nil
}

func normalizeEndDate(end *time.Time) *time.Time {
	if end == nil {
		return nil
	}
	normalized := truncateToDate(*end)
	return &normalized
}

func validateDateRange(start time.Time, end *time.Time) error {
	if end == nil {
		return nil
	}
	if !end.After(start) {
		return ErrInvalidDateRange
	}
	return nil
}

func validateContractedHours(hours float64) error {
	if hours < 0 || hours > maxContractedHours {
		return ErrInvalidContractedHours
	}
	return nil
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
