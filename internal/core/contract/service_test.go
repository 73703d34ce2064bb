package contract

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

type fakePersonStatusStore struct {
	active map[string]bool
	writes int
}

func newFakePersonStatusStore() *fakePersonStatusStore {
	return &fakePersonStatusStore{active: make(map[string]bool)}
}

func (s *fakePersonStatusStore) SetActiveStatus(_ context.Context, personID string, active bool) error {
	s.active[personID] = active
	s.writes++
	return nil
}

type fakeContractRepo struct {
	contracts map[string]*Contract
	snapshots map[string]*PersonSnapshot
	sequence  int
	order     []string
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{
		contracts: make(map[string]*Contract),
		snapshots: make(map[string]*PersonSnapshot),
	}
}

func (r *fakeContractRepo) withSnapshot(c *Contract) *Contract {
	clone := cloneContract(c)
	if snapshot, ok := r.snapshots[c.PersonID]; ok {
		snapCopy := *snapshot
		clone.Person = &snapCopy
	}
	return clone
}

func (r *fakeContractRepo) Create(_ context.Context, c *Contract) (*Contract, error) {
	if _, ok := r.snapshots[c.PersonID]; !ok {
		return nil, ErrPersonNotFound
	}
	clone := cloneContract(c)
	r.sequence++
	clone.ID = fmt.Sprintf("c-%d", r.sequence)
	r.contracts[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return r.withSnapshot(clone), nil
}

func (r *fakeContractRepo) Update(_ context.Context, c *Contract) (*Contract, error) {
	if _, ok := r.contracts[c.ID]; !ok {
		return nil, ErrContractNotFound
	}
	if _, ok := r.snapshots[c.PersonID]; !ok {
		return nil, ErrPersonNotFound
	}
	r.contracts[c.ID] = cloneContract(c)
	return r.withSnapshot(c), nil
}

func (r *fakeContractRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contracts[id]; !ok {
		return ErrContractNotFound
	}
	delete(r.contracts, id)
	for idx, existingID := range r.order {
		if existingID == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeContractRepo) FindByID(_ context.Context, id string) (*Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, ErrContractNotFound
	}
	return r.withSnapshot(c), nil
}

func (r *fakeContractRepo) ListByPerson(_ context.Context, personID string) ([]*Contract, error) {
	var result []*Contract
	for _, id := range r.order {
		if c := r.contracts[id]; c.PersonID == personID {
			result = append(result, r.withSnapshot(c))
		}
	}
	return result, nil
}

func (r *fakeContractRepo) List(_ context.Context, filter ListContractsFilter) ([]*Contract, string, error) {
	var filtered []*Contract
	for _, id := range r.order {
		c := r.contracts[id]
		if filter.PersonID != nil && c.PersonID != *filter.PersonID {
			continue
		}
		if filter.ManagerID != nil {
			snapshot, ok := r.snapshots[c.PersonID]
			if !ok || snapshot.ManagerID == nil || *snapshot.ManagerID != *filter.ManagerID {
				continue
			}
		}
		filtered = append(filtered, r.withSnapshot(c))
	}

	if filter.Offset > len(filtered) {
		return []*Contract{}, "", nil
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

func cloneContract(c *Contract) *Contract {
	if c == nil {
		return nil
	}
	clone := *c
	if c.ContractEnd != nil {
		end := *c.ContractEnd
		clone.ContractEnd = &end
	}
	clone.Person = nil
	return &clone
}

func identFor(tier identity.Tier, personID string) identity.Identity {
	return identity.Identity{Actor: identity.Actor{UserID: "user-" + personID}, Tier: tier, PersonID: personID}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var testToday = date(2025, 6, 15)

func newTestService(repo *fakeContractRepo, persons *fakePersonStatusStore) *Service {
	return NewService(repo, persons, &stubClock{now: testToday}, nil, nil, 0)
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestActiveFromContracts(t *testing.T) {
	t.Parallel()

	openEnded := &Contract{ContractStart: date(2025, 6, 5)}
	current := &Contract{ContractStart: date(2025, 1, 1), ContractEnd: ptrTime(date(2025, 12, 31))}
	expired := &Contract{ContractStart: date(2024, 1, 1), ContractEnd: ptrTime(date(2024, 12, 31))}
	future := &Contract{ContractStart: date(2025, 7, 1)}
	endsToday := &Contract{ContractStart: date(2025, 1, 1), ContractEnd: ptrTime(testToday)}
	startsToday := &Contract{ContractStart: testToday}

	cases := []struct {
		name      string
		contracts []*Contract
		want      bool
	}{
		{"no contracts", nil, false},
		{"open ended current", []*Contract{openEnded}, true},
		{"bounded current", []*Contract{current}, true},
		{"expired only", []*Contract{expired}, false},
		{"future only", []*Contract{future}, false},
		{"ends today still valid", []*Contract{endsToday}, true},
		{"starts today already valid", []*Contract{startsToday}, true},
		{"one valid among invalid", []*Contract{expired, future, current}, true},
	}

	for _, tc := range cases {
		if got := ActiveFromContracts(tc.contracts, testToday); got != tc.want {
			t.Errorf("%s: ActiveFromContracts = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCreateContract_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakeContractRepo()
	repo.snapshots["p-1"] = &PersonSnapshot{ID: "p-1", FirstName: "Worker", LastName: "One"}
	svc := newTestService(repo, newFakePersonStatusStore())
	admin := identFor(identity.TierHRAdmin, "p-hr")

	base := CreateContractInput{
		PersonID:        "p-1",
		JobTitle:        "Developer",
		ContractStart:   date(2025, 6, 1),
		HourlyRate:      20,
		ContractedHours: 40,
	}

	bad := base
	bad.HourlyRate = 10
	if _, err := svc.CreateContract(context.Background(), admin, bad); !errors.Is(err, ErrHourlyRateTooLow) {
		t.Errorf("expected ErrHourlyRateTooLow, got %v", err)
	}

	bad = base
	bad.ContractedHours = 200
	if _, err := svc.CreateContract(context.Background(), admin, bad); !errors.Is(err, ErrInvalidContractedHours) {
		t.Errorf("expected ErrInvalidContractedHours, got %v", err)
	}

	bad = base
	bad.ContractEnd = ptrTime(date(2025, 6, 1))
	if _, err := svc.CreateContract(context.Background(), admin, bad); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for end == start, got %v", err)
	}

	bad = base
	bad.PersonID = "p-missing"
	if _, err := svc.CreateContract(context.Background(), admin, bad); !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("expected ErrPersonNotFound, got %v", err)
	}

	// 職種名の長さ制限はバイト数ではなく文字数で数える。
	multibyte := base
	multibyte.JobTitle = strings.Repeat("開", 255)
	if _, err := svc.CreateContract(context.Background(), admin, multibyte); err != nil {
		t.Errorf("255-rune job title rejected: %v", err)
	}

	bad = base
	bad.JobTitle = strings.Repeat("開", 256)
	if _, err := svc.CreateContract(context.Background(), admin, bad); !errors.Is(err, ErrInvalidJobTitle) {
		t.Errorf("expected ErrInvalidJobTitle, got %v", err)
	}

	if _, err := svc.CreateContract(context.Background(), admin, base); err != nil {
		t.Fatalf("valid contract rejected: %v", err)
	}
}

func TestContractMutations_AdminOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeContractRepo()
	repo.snapshots["p-1"] = &PersonSnapshot{ID: "p-1"}
	svc := newTestService(repo, newFakePersonStatusStore())

	in := CreateContractInput{
		PersonID:        "p-1",
		JobTitle:        "Developer",
		ContractStart:   date(2025, 6, 1),
		HourlyRate:      20,
		ContractedHours: 40,
	}

	// マネージャーは閲覧のみで契約を変更できない。
	for _, tier := range []identity.Tier{identity.TierManager, identity.TierEmployee, identity.TierUnlinked} {
		ident := identFor(tier, "p-x")
		if _, err := svc.CreateContract(context.Background(), ident, in); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("create tier %s: expected ErrAccessDenied, got %v", tier, err)
		}
		title := "New"
		if _, err := svc.UpdateContract(context.Background(), ident, UpdateContractInput{ID: "c-1", JobTitle: &title}); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("update tier %s: expected ErrAccessDenied, got %v", tier, err)
		}
		if err := svc.DeleteContract(context.Background(), ident, DeleteContractInput{ID: "c-1"}); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("delete tier %s: expected ErrAccessDenied, got %v", tier, err)
		}
	}
}

func TestActivation_CreateThenDelete(t *testing.T) {
	t.Parallel()

	repo := newFakeContractRepo()
	managerID := "p-mgr"
	repo.snapshots["p-b"] = &PersonSnapshot{ID: "p-b", FirstName: "B", ManagerID: &managerID}
	persons := newFakePersonStatusStore()
	svc := newTestService(repo, persons)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	// 開始 10 日前・終了なしの契約で B は在籍になる。
	created, err := svc.CreateContract(context.Background(), admin, CreateContractInput{
		PersonID:        "p-b",
		JobTitle:        "Engineer",
		ContractStart:   testToday.AddDate(0, 0, -10),
		HourlyRate:      20,
		ContractedHours: 40,
	})
	if err != nil {
		t.Fatalf("CreateContract returned error: %v", err)
	}
	if !persons.active["p-b"] {
		t.Fatal("expected person to be activated by a valid open-ended contract")
	}

	// その唯一の契約を削除すると在籍外になる。
	if err := svc.DeleteContract(context.Background(), admin, DeleteContractInput{ID: created.ID}); err != nil {
		t.Fatalf("DeleteContract returned error: %v", err)
	}
	if persons.active["p-b"] {
		t.Fatal("expected person to be deactivated after deleting the only valid contract")
	}
}

func TestActivation_FutureContractDoesNotActivate(t *testing.T) {
	t.Parallel()

	repo := newFakeContractRepo()
	repo.snapshots["p-1"] = &PersonSnapshot{ID: "p-1"}
	persons := newFakePersonStatusStore()
	svc := newTestService(repo, persons)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	if _, err := svc.CreateContract(context.Background(), admin, CreateContractInput{
		PersonID:        "p-1",
		JobTitle:        "Engineer",
		ContractStart:   testToday.AddDate(0, 1, 0),
		HourlyRate:      20,
		ContractedHours: 40,
	}); err != nil {
		t.Fatalf("CreateContract returned error: %v", err)
	}
	if persons.active["p-1"] {
		t.Fatal("future contract must not activate the person")
	}
}

func TestActivation_RedundantRecomputeIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := newFakeContractRepo()
	repo.snapshots["p-1"] = &PersonSnapshot{ID: "p-1"}
	persons := newFakePersonStatusStore()
	svc := newTestService(repo, persons)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	created, err := svc.CreateContract(context.Background(), admin, CreateContractInput{
		PersonID:        "p-1",
		JobTitle:        "Engineer",
		ContractStart:   date(2025, 1, 1),
		HourlyRate:      20,
		ContractedHours: 40,
	})
	if err != nil {
		t.Fatalf("CreateContract returned error: %v", err)
	}

	// 同じ内容で何度更新しても在籍状態は契約集合から決まる値のまま。
	title := "Engineer"
	for i := 0; i < 3; i++ {
		if _, err := svc.UpdateContract(context.Background(), admin, UpdateContractInput{ID: created.ID, JobTitle: &title}); err != nil {
			t.Fatalf("UpdateContract returned error: %v", err)
		}
		if !persons.active["p-1"] {
			t.Fatalf("iteration %d: expected person to stay active", i)
		}
	}
	if persons.writes != 4 {
		t.Fatalf("expected one recompute per mutation, got %d", persons.writes)
	}
}

func TestActivation_MovingContractRecomputesBothPersons(t *testing.T) {
	t.Parallel()

	repo := newFakeContractRepo()
	repo.snapshots["p-1"] = &PersonSnapshot{ID: "p-1"}
	repo.snapshots["p-2"] = &PersonSnapshot{ID: "p-2"}
	persons := newFakePersonStatusStore()
	svc := newTestService(repo, persons)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	created, err := svc.CreateContract(context.Background(), admin, CreateContractInput{
		PersonID:        "p-1",
		JobTitle:        "Engineer",
		ContractStart:   date(2025, 1, 1),
		HourlyRate:      20,
		ContractedHours: 40,
	})
	if err != nil {
		t.Fatalf("CreateContract returned error: %v", err)
	}
	if !persons.active["p-1"] {
		t.Fatal("expected p-1 active after create")
	}

	newPerson := "p-2"
	if _, err := svc.UpdateContract(context.Background(), admin, UpdateContractInput{ID: created.ID, PersonID: &newPerson}); err != nil {
		t.Fatalf("UpdateContract returned error: %v", err)
	}
	if persons.active["p-1"] {
		t.Fatal("expected p-1 deactivated after the contract moved away")
	}
	if !persons.active["p-2"] {
		t.Fatal("expected p-2 activated after receiving the contract")
	}
}

func TestListContracts_ScopeByTier(t *testing.T) {
	t.Parallel()

	repo := newFakeContractRepo()
	managerID := "p-mgr"
	repo.snapshots["p-report"] = &PersonSnapshot{ID: "p-report", ManagerID: &managerID}
	repo.snapshots["p-outsider"] = &PersonSnapshot{ID: "p-outsider"}
	persons := newFakePersonStatusStore()
	svc := newTestService(repo, persons)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	for _, personID := range []string{"p-report", "p-outsider"} {
		if _, err := svc.CreateContract(context.Background(), admin, CreateContractInput{
			PersonID:        personID,
			JobTitle:        "Engineer",
			ContractStart:   date(2025, 1, 1),
			HourlyRate:      20,
			ContractedHours: 40,
		}); err != nil {
			t.Fatalf("seed contract for %s: %v", personID, err)
		}
	}

	result, err := svc.ListContracts(context.Background(), admin, ListContractsInput{})
	if err != nil {
		t.Fatalf("admin list returned error: %v", err)
	}
	if len(result.Contracts) != 2 {
		t.Fatalf("admin should see all contracts, got %d", len(result.Contracts))
	}

	result, err = svc.ListContracts(context.Background(), identFor(identity.TierManager, managerID), ListContractsInput{})
	if err != nil {
		t.Fatalf("manager list returned error: %v", err)
	}
	if len(result.Contracts) != 1 || result.Contracts[0].PersonID != "p-report" {
		t.Fatalf("manager should see only team contracts, got %+v", result.Contracts)
	}

	result, err = svc.ListContracts(context.Background(), identFor(identity.TierEmployee, "p-report"), ListContractsInput{})
	if err != nil {
		t.Fatalf("employee list returned error: %v", err)
	}
	if len(result.Contracts) != 0 {
		t.Fatalf("employee list must be an empty scope, got %d rows", len(result.Contracts))
	}
}

func TestGetContract_EmployeeDeniedOwnContract(t *testing.T) {
	t.Parallel()

	repo := newFakeContractRepo()
	managerID := "p-mgr"
	repo.snapshots["p-emp"] = &PersonSnapshot{ID: "p-emp", ManagerID: &managerID}
	svc := newTestService(repo, newFakePersonStatusStore())
	admin := identFor(identity.TierHRAdmin, "p-hr")

	created, err := svc.CreateContract(context.Background(), admin, CreateContractInput{
		PersonID:        "p-emp",
		JobTitle:        "Engineer",
		ContractStart:   date(2025, 1, 1),
		HourlyRate:      20,
		ContractedHours: 40,
	})
	if err != nil {
		t.Fatalf("CreateContract returned error: %v", err)
	}

	// 従業員は自分の契約でも詳細を閲覧できない。
	if _, err := svc.GetContract(context.Background(), identFor(identity.TierEmployee, "p-emp"), GetContractInput{ID: created.ID}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for own contract, got %v", err)
	}

	// 直属マネージャーは閲覧できる。
	if _, err := svc.GetContract(context.Background(), identFor(identity.TierManager, managerID), GetContractInput{ID: created.ID}); err != nil {
		t.Fatalf("manager detail returned error: %v", err)
	}

	// 別のマネージャーは閲覧できない。
	if _, err := svc.GetContract(context.Background(), identFor(identity.TierManager, "p-other-mgr"), GetContractInput{ID: created.ID}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for other manager, got %v", err)
	}
}
