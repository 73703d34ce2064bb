package person

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"path/filepath"
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

// ResumeStore は履歴書ファイルの保存先です。保存先はウェブ配信されないパスで、
// ファイル名は保存時にランダムな識別子へ置き換えられます。
type ResumeStore interface {
	Save(ctx context.Context, content []byte) (string, error)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200

	maxNameLength    = 50
	maxEmailLength   = 255
	minimumAge       = 18
	maxResumeBytes   = 2 << 20
	resumeExtension  = ".pdf"
	resumeMagicBytes = "%PDF"
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z\s\-]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\-\s]{7,20}$`)
)

// Service は従業員に関するユースケースをまとめます。
type Service struct {
	repo     Repository
	clock    Clock
	tx       TransactionManager
	recorder audit.Recorder
	resumes  ResumeStore
}

// UseCase は従業員ユースケースの公開インターフェースです。
type UseCase interface {
	CreatePerson(ctx context.Context, ident identity.Identity, in CreatePersonInput) (*Person, error)
	UpdatePerson(ctx context.Context, ident identity.Identity, in UpdatePersonInput) (*Person, error)
	DeletePerson(ctx context.Context, ident identity.Identity, in DeletePersonInput) error
	GetPerson(ctx context.Context, ident identity.Identity, in GetPersonInput) (*Person, error)
	GetOwnPerson(ctx context.Context, ident identity.Identity) (*Person, error)
	ListPersons(ctx context.Context, ident identity.Identity, in ListPersonsInput) (*ListPersonsResult, error)
	AttachResume(ctx context.Context, ident identity.Identity, in AttachResumeInput) (*Person, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager, recorder audit.Recorder, resumes ResumeStore) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &Service{repo: repo, clock: clock, tx: tx, recorder: recorder, resumes: resumes}
}

// CreatePersonInput は従業員作成時の入力です。
type CreatePersonInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DateOfBirth time.Time
	Role        identity.Role
	ManagerID   *string
	UserID      *string
}

// UpdatePersonInput は従業員更新時の入力です。nil のフィールドは変更しません。
type UpdatePersonInput struct {
	ID           string
	FirstName    *string
	LastName     *string
	Email        *string
	PhoneNumber  *string
	DateOfBirth  *time.Time
	Role         *identity.Role
	ManagerID    *string
	ManagerIDSet bool
	UserID       *string
	UserIDSet    bool
}

// DeletePersonInput は従業員削除時の入力です。
type DeletePersonInput struct {
	ID string
}

// GetPersonInput は従業員取得時の入力です。
type GetPersonInput struct {
	ID string
}

// ListPersonsInput は一覧取得時の入力です。
type ListPersonsInput struct {
	PageSize  int
	PageToken string
}

// ListPersonsResult は一覧取得結果を表します。
type ListPersonsResult struct {
	Persons       []*Person
	NextPageToken string
}

// AttachResumeInput は履歴書添付時の入力です。
type AttachResumeInput struct {
	PersonID string
	Filename string
	Content  []byte
}

// CreatePerson は新しい従業員を作成します。SystemAdmin / HRAdmin 専用です。
// Active は常に false で作成され、以後は契約の再計算だけが更新します。
func (s *Service) CreatePerson(ctx context.Context, ident identity.Identity, in CreatePersonInput) (*Person, error) {
	if !ident.Tier.Admin() {
		return nil, ErrAccessDenied
	}

	firstName, err := normalizeName(in.FirstName, ErrInvalidFirstName)
	if err != nil {
		return nil, fmt.Errorf("first_name: %w", err)
	}
	lastName, err := normalizeName(in.LastName, ErrInvalidLastName)
	if err != nil {
		return nil, fmt.Errorf("last_name: %w", err)
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	phone, err := normalizePhone(in.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("phone_number: %w", err)
	}
	if !identity.IsValidRole(in.Role) {
		return nil, fmt.Errorf("role: %w", ErrInvalidRole)
	}
	dob := normalizeDate(in.DateOfBirth)
	if err := validateDateOfBirth(dob, s.clock.Now()); err != nil {
		return nil, fmt.Errorf("date_of_birth: %w", err)
	}

	var created *Person
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureEligibleManager(txCtx, in.ManagerID); err != nil {
			return err
		}

		now := s.clock.Now()
		p := &Person{
			FirstName:   firstName,
			LastName:    lastName,
			Email:       email,
			PhoneNumber: phone,
			DateOfBirth: dob,
			Role:        in.Role,
			Active:      false,
			ManagerID:   cloneString(in.ManagerID),
			UserID:      cloneString(in.UserID),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		result, err := s.repo.Create(txCtx, p)
		if err != nil {
			return err
		}

		created = result
		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindPerson,
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

// UpdatePerson は従業員情報を更新します。管理者は全フィールドを、本人は
// 連絡先フィールドのみを変更できます。本人編集では first_name / last_name /
// role / manager は送信値にかかわらず保存値のまま維持されます（検証エラーには
// しません）。Active はどちらの経路でも変更されません。
func (s *Service) UpdatePerson(ctx context.Context, ident identity.Identity, in UpdatePersonInput) (*Person, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	admin := ident.Tier.Admin()
	self := ident.Linked() && ident.PersonID == in.ID
	if !admin && !self {
		return nil, ErrAccessDenied
	}

	var updated *Person
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if admin {
			if err := s.applyAdminFields(txCtx, existing, in); err != nil {
				return err
			}
		}
		if err := applyContactFields(existing, in, s.clock.Now()); err != nil {
			return err
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindPerson,
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

func (s *Service) applyAdminFields(ctx context.Context, existing *Person, in UpdatePersonInput) error {
	if in.FirstName != nil {
		firstName, err := normalizeName(*in.FirstName, ErrInvalidFirstName)
		if err != nil {
			return fmt.Errorf("first_name: %w", err)
		}
		existing.FirstName = firstName
	}
	if in.LastName != nil {
		lastName, err := normalizeName(*in.LastName, ErrInvalidLastName)
		if err != nil {
			return fmt.Errorf("last_name: %w", err)
		}
		existing.LastName = lastName
	}
	if in.Role != nil {
		if !identity.IsValidRole(*in.Role) {
			return fmt.Errorf("role: %w", ErrInvalidRole)
		}
		existing.Role = *in.Role
	}
	if in.ManagerIDSet {
		if err := s.ensureEligibleManager(ctx, in.ManagerID); err != nil {
			return err
		}
		existing.ManagerID = cloneString(in.ManagerID)
	}
	if in.UserIDSet {
		existing.UserID = cloneString(in.UserID)
	}
	return nil
}

func applyContactFields(existing *Person, in UpdatePersonInput, now time.Time) error {
	if in.Email != nil {
		email, err := normalizeEmail(*in.Email)
		if err != nil {
			return fmt.Errorf("email: %w", err)
		}
		existing.Email = email
	}
	if in.PhoneNumber != nil {
		phone, err := normalizePhone(*in.PhoneNumber)
		if err != nil {
			return fmt.Errorf("phone_number: %w", err)
		}
		existing.PhoneNumber = phone
	}
	if in.DateOfBirth != nil {
		dob := normalizeDate(*in.DateOfBirth)
		if err := validateDateOfBirth(dob, now); err != nil {
			return fmt.Errorf("date_of_birth: %w", err)
		}
		existing.DateOfBirth = dob
	}
	return nil
}

// DeletePerson は従業員を削除します。SystemAdmin / HRAdmin 専用です。
// 従業員に紐づく契約はストレージ側のカスケードで一緒に削除されます。
func (s *Service) DeletePerson(ctx context.Context, ident identity.Identity, in DeletePersonInput) error {
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
		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindPerson,
			EntityID:    existing.ID,
			Change:      audit.ChangeDeleted,
			ActorUserID: ident.Actor.UserID,
			Snapshot:    existing.Snapshot(),
		})
	})
}

// GetPerson は従業員の詳細を取得します。SystemAdmin / HRAdmin、対象の直属
// マネージャー、本人のいずれかであれば閲覧できます。それ以外は拒否です。
// 一覧と違い、詳細は識別子を知った上でのアクセスなので空ではなく拒否を返します。
func (s *Service) GetPerson(ctx context.Context, ident identity.Identity, in GetPersonInput) (*Person, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Person
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		target, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if !canViewPerson(ident, target) {
			return ErrAccessDenied
		}
		found = target
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

func canViewPerson(ident identity.Identity, target *Person) bool {
	if ident.Tier.Admin() {
		return true
	}
	if !ident.Linked() {
		return false
	}
	if target.ID == ident.PersonID {
		return true
	}
	return ident.Tier == identity.TierManager &&
		target.ManagerID != nil && *target.ManagerID == ident.PersonID
}

// GetOwnPerson は本人の従業員レコードを返します。常に許可される自己参照で、
// Person が紐付いていない場合は not found になります。
func (s *Service) GetOwnPerson(ctx context.Context, ident identity.Identity) (*Person, error) {
	if !ident.Linked() {
		return nil, ErrPersonNotFound
	}

	var found *Person
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, ident.PersonID)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListPersons は従業員の一覧を取得します。SystemAdmin / HRAdmin は全件、
// Manager は直属の部下のみが対象です。Employee と未紐付けのアクターには
// エラーではなく空の結果を返します。
func (s *Service) ListPersons(ctx context.Context, ident identity.Identity, in ListPersonsInput) (*ListPersonsResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}
	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	filter := ListPersonsFilter{Limit: limit, Offset: offset}
	switch {
	case ident.Tier.Admin():
	case ident.Tier == identity.TierManager:
		managerID := ident.PersonID
		filter.ManagerID = &managerID
	default:
		return &ListPersonsResult{Persons: []*Person{}}, nil
	}

	var (
		persons   []*Person
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		persons = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListPersonsResult{Persons: persons, NextPageToken: nextToken}, nil
}

// AttachResume は履歴書 PDF を保存して従業員レコードに紐付けます。
// 管理者と本人のみが添付でき、2MB を超えるファイルと PDF 以外は拒否します。
func (s *Service) AttachResume(ctx context.Context, ident identity.Identity, in AttachResumeInput) (*Person, error) {
	if strings.TrimSpace(in.PersonID) == "" {
		return nil, fmt.Errorf("person_id: %w", ErrInvalidID)
	}
	if !ident.Tier.Admin() && !(ident.Linked() && ident.PersonID == in.PersonID) {
		return nil, ErrAccessDenied
	}
	if err := validateResume(in.Filename, in.Content); err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	if s.resumes == nil {
		return nil, errors.New("person: resume store is not configured")
	}

	var updated *Person
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.PersonID)
		if err != nil {
			return err
		}

		path, err := s.resumes.Save(txCtx, in.Content)
		if err != nil {
			return err
		}

		existing.ResumePath = &path
		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return s.recorder.Record(txCtx, audit.Event{
			Kind:        audit.KindPerson,
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

func (s *Service) ensureEligibleManager(ctx context.Context, managerID *string) error {
	if managerID == nil {
		return nil
	}
	manager, err := s.repo.FindByID(ctx, *managerID)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return fmt.Errorf("manager: %w", ErrManagerNotFound)
		}
		return err
	}
	if !manager.Role.CanSupervise() {
		return fmt.Errorf("manager: %w", ErrManagerNotEligible)
	}
	return nil
}

func normalizeName(raw string, invalid error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxNameLength {
		return "", invalid
	}
	if !namePattern.MatchString(trimmed) {
		return "", invalid
	}
	return trimmed, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len(trimmed) > maxEmailLength {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(trimmed), nil
}

func normalizePhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	if !phonePattern.MatchString(trimmed) {
		return "", ErrInvalidPhoneNumber
	}
	return trimmed, nil
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validateDateOfBirth(dob, now time.Time) error {
	if dob.IsZero() {
		return ErrInvalidDateOfBirth
	}
	today := normalizeDate(now)
	if dob.After(today) {
		return ErrInvalidDateOfBirth
	}
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	if age < minimumAge {
		return ErrUnderage
	}
	return nil
}

func validateResume(filename string, content []byte) error {
	if !strings.EqualFold(filepath.Ext(filename), resumeExtension) {
		return ErrInvalidResumeFile
	}
	if len(content) == 0 || !strings.HasPrefix(string(content[:min(len(content), len(resumeMagicBytes))]), resumeMagicBytes) {
		return ErrInvalidResumeFile
	}
	if len(content) > maxResumeBytes {
		return ErrResumeTooLarge
	}
	return nil
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
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
