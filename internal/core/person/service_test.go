package person

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
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

type fakePersonRepo struct {
	persons  map[string]*Person
	sequence int
	order    []string
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{persons: make(map[string]*Person)}
}

func (r *fakePersonRepo) Create(_ context.Context, p *Person) (*Person, error) {
	for _, existing := range r.persons {
		if existing.Email == p.Email {
			return nil, ErrEmailAlreadyExists
		}
	}
	clone := clonePerson(p)
	r.sequence++
	clone.ID = fmt.Sprintf("p-%d", r.sequence)
	r.persons[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return clonePerson(clone), nil
}

func (r *fakePersonRepo) Update(_ context.Context, p *Person) (*Person, error) {
	stored, ok := r.persons[p.ID]
	if !ok {
		return nil, ErrPersonNotFound
	}
	clone := clonePerson(p)
	clone.Active = stored.Active // active is owned by the recompute path
	r.persons[p.ID] = clone
	return clonePerson(clone), nil
}

func (r *fakePersonRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.persons[id]; !ok {
		return ErrPersonNotFound
	}
	delete(r.persons, id)
	for idx, existingID := range r.order {
		if existingID == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *fakePersonRepo) FindByID(_ context.Context, id string) (*Person, error) {
	p, ok := r.persons[id]
	if !ok {
		return nil, ErrPersonNotFound
	}
	return clonePerson(p), nil
}

func (r *fakePersonRepo) FindByUserID(_ context.Context, userID string) (*Person, error) {
	for _, p := range r.persons {
		if p.UserID != nil && *p.UserID == userID {
			return clonePerson(p), nil
		}
	}
	return nil, ErrPersonNotFound
}

func (r *fakePersonRepo) List(_ context.Context, filter ListPersonsFilter) ([]*Person, string, error) {
	var filtered []*Person
	for _, id := range r.order {
		p := r.persons[id]
		if filter.ManagerID != nil {
			if p.ManagerID == nil || *p.ManagerID != *filter.ManagerID {
				continue
			}
		}
		filtered = append(filtered, clonePerson(p))
	}

	if filter.Offset > len(filtered) {
		return []*Person{}, "", nil
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

func clonePerson(p *Person) *Person {
	if p == nil {
		return nil
	}
	clone := *p
	if p.ManagerID != nil {
		managerID := *p.ManagerID
		clone.ManagerID = &managerID
	}
	if p.UserID != nil {
		userID := *p.UserID
		clone.UserID = &userID
	}
	if p.ResumePath != nil {
		path := *p.ResumePath
		clone.ResumePath = &path
	}
	return &clone
}

type stubResumeStore struct {
	saved [][]byte
	path  string
}

func (s *stubResumeStore) Save(_ context.Context, content []byte) (string, error) {
	s.saved = append(s.saved, content)
	return s.path, nil
}

func seedPerson(t *testing.T, repo *fakePersonRepo, firstName string, role identity.Role, managerID *string) *Person {
	t.Helper()
	created, err := repo.Create(context.Background(), &Person{
		FirstName:   firstName,
		LastName:    "Doe",
		Email:       firstName + "@example.com",
		DateOfBirth: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Role:        role,
		ManagerID:   managerID,
	})
	if err != nil {
		t.Fatalf("seed person: %v", err)
	}
	return created
}

func identFor(tier identity.Tier, personID string) identity.Identity {
	return identity.Identity{Actor: identity.Actor{UserID: "user-" + personID}, Tier: tier, PersonID: personID}
}

func newTestService(repo *fakePersonRepo) *Service {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	return NewService(repo, &stubClock{now: now}, nil, nil, nil)
}

func TestCreatePerson_AdminOnly(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)

	in := CreatePersonInput{
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@example.com",
		DateOfBirth: time.Date(1992, 1, 2, 0, 0, 0, 0, time.UTC),
		Role:        identity.RoleEmployee,
	}

	for _, tier := range []identity.Tier{identity.TierManager, identity.TierEmployee, identity.TierUnlinked} {
		if _, err := svc.CreatePerson(context.Background(), identFor(tier, "p-x"), in); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("tier %s: expected ErrAccessDenied, got %v", tier, err)
		}
	}

	created, err := svc.CreatePerson(context.Background(), identFor(identity.TierHRAdmin, "p-hr"), in)
	if err != nil {
		t.Fatalf("CreatePerson returned error: %v", err)
	}
	if created.Active {
		t.Fatal("new person must start inactive")
	}
}

func TestCreatePerson_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	base := CreatePersonInput{
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@example.com",
		DateOfBirth: time.Date(1992, 1, 2, 0, 0, 0, 0, time.UTC),
		Role:        identity.RoleEmployee,
	}

	bad := base
	bad.FirstName = "Al1ce!"
	if _, err := svc.CreatePerson(context.Background(), admin, bad); !errors.Is(err, ErrInvalidFirstName) {
		t.Errorf("expected ErrInvalidFirstName, got %v", err)
	}

	bad = base
	bad.Email = "not-an-email"
	if _, err := svc.CreatePerson(context.Background(), admin, bad); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}

	bad = base
	bad.PhoneNumber = "abc"
	if _, err := svc.CreatePerson(context.Background(), admin, bad); !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Errorf("expected ErrInvalidPhoneNumber, got %v", err)
	}

	bad = base
	bad.DateOfBirth = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.CreatePerson(context.Background(), admin, bad); !errors.Is(err, ErrUnderage) {
		t.Errorf("expected ErrUnderage, got %v", err)
	}

	bad = base
	bad.Role = identity.Role("director")
	if _, err := svc.CreatePerson(context.Background(), admin, bad); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestCreatePerson_ManagerMustSupervise(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)
	admin := identFor(identity.TierHRAdmin, "p-hr")

	employee := seedPerson(t, repo, "Plain", identity.RoleEmployee, nil)
	manager := seedPerson(t, repo, "Boss", identity.RoleManager, nil)

	in := CreatePersonInput{
		FirstName:   "Bob",
		LastName:    "Jones",
		Email:       "bob@example.com",
		DateOfBirth: time.Date(1990, 5, 5, 0, 0, 0, 0, time.UTC),
		Role:        identity.RoleEmployee,
		ManagerID:   &employee.ID,
	}
	if _, err := svc.CreatePerson(context.Background(), admin, in); !errors.Is(err, ErrManagerNotEligible) {
		t.Fatalf("expected ErrManagerNotEligible, got %v", err)
	}

	missing := "p-missing"
	in.ManagerID = &missing
	if _, err := svc.CreatePerson(context.Background(), admin, in); !errors.Is(err, ErrManagerNotFound) {
		t.Fatalf("expected ErrManagerNotFound, got %v", err)
	}

	in.ManagerID = &manager.ID
	created, err := svc.CreatePerson(context.Background(), admin, in)
	if err != nil {
		t.Fatalf("CreatePerson returned error: %v", err)
	}
	if created.ManagerID == nil || *created.ManagerID != manager.ID {
		t.Fatalf("expected manager %s, got %+v", manager.ID, created.ManagerID)
	}
}

func TestListPersons_ScopeByTier(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)

	manager := seedPerson(t, repo, "Boss", identity.RoleManager, nil)
	report := seedPerson(t, repo, "Report", identity.RoleEmployee, &manager.ID)
	seedPerson(t, repo, "Outsider", identity.RoleEmployee, nil)

	result, err := svc.ListPersons(context.Background(), identFor(identity.TierHRAdmin, "p-hr"), ListPersonsInput{})
	if err != nil {
		t.Fatalf("admin list returned error: %v", err)
	}
	if len(result.Persons) != 3 {
		t.Fatalf("admin should see 3 persons, got %d", len(result.Persons))
	}

	result, err = svc.ListPersons(context.Background(), identFor(identity.TierManager, manager.ID), ListPersonsInput{})
	if err != nil {
		t.Fatalf("manager list returned error: %v", err)
	}
	if len(result.Persons) != 1 || result.Persons[0].ID != report.ID {
		t.Fatalf("manager should see only direct reports, got %+v", result.Persons)
	}

	for _, ident := range []identity.Identity{
		identFor(identity.TierEmployee, report.ID),
		{Actor: identity.Actor{UserID: "u-unlinked"}, Tier: identity.TierUnlinked},
	} {
		result, err = svc.ListPersons(context.Background(), ident, ListPersonsInput{})
		if err != nil {
			t.Fatalf("list for tier %s returned error: %v", ident.Tier, err)
		}
		if len(result.Persons) != 0 {
			t.Fatalf("tier %s should get an empty scope, got %d rows", ident.Tier, len(result.Persons))
		}
	}
}

func TestGetPerson_DetailMatrix(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)

	manager := seedPerson(t, repo, "Boss", identity.RoleManager, nil)
	report := seedPerson(t, repo, "Report", identity.RoleEmployee, &manager.ID)
	outsider := seedPerson(t, repo, "Outsider", identity.RoleEmployee, nil)

	cases := []struct {
		name    string
		ident   identity.Identity
		target  string
		allowed bool
	}{
		{"hr admin any", identFor(identity.TierHRAdmin, "p-hr"), outsider.ID, true},
		{"system admin any", identity.Identity{Actor: identity.Actor{UserID: "root", Superuser: true}, Tier: identity.TierSystemAdmin}, outsider.ID, true},
		{"manager own report", identFor(identity.TierManager, manager.ID), report.ID, true},
		{"manager outsider", identFor(identity.TierManager, manager.ID), outsider.ID, false},
		{"manager self", identFor(identity.TierManager, manager.ID), manager.ID, true},
		{"employee self", identFor(identity.TierEmployee, report.ID), report.ID, true},
		{"employee other", identFor(identity.TierEmployee, report.ID), outsider.ID, false},
		{"unlinked", identity.Identity{Actor: identity.Actor{UserID: "u-x"}, Tier: identity.TierUnlinked}, report.ID, false},
	}

	for _, tc := range cases {
		_, err := svc.GetPerson(context.Background(), tc.ident, GetPersonInput{ID: tc.target})
		if tc.allowed && err != nil {
			t.Errorf("%s: expected allow, got %v", tc.name, err)
		}
		if !tc.allowed && !errors.Is(err, ErrAccessDenied) {
			t.Errorf("%s: expected ErrAccessDenied, got %v", tc.name, err)
		}
	}
}

func TestGetOwnPerson(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)
	p := seedPerson(t, repo, "Selfie", identity.RoleEmployee, nil)

	found, err := svc.GetOwnPerson(context.Background(), identFor(identity.TierEmployee, p.ID))
	if err != nil {
		t.Fatalf("GetOwnPerson returned error: %v", err)
	}
	if found.ID != p.ID {
		t.Fatalf("expected %s, got %s", p.ID, found.ID)
	}

	unlinked := identity.Identity{Actor: identity.Actor{UserID: "u-x"}, Tier: identity.TierUnlinked}
	if _, err := svc.GetOwnPerson(context.Background(), unlinked); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound for unlinked actor, got %v", err)
	}
}

func TestUpdatePerson_SelfEditLocksRestrictedFields(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)

	manager := seedPerson(t, repo, "Boss", identity.RoleManager, nil)
	p := seedPerson(t, repo, "Selfie", identity.RoleEmployee, &manager.ID)

	newName := "Hacker"
	newRole := identity.RoleHRAdmin
	newPhone := "+44 123 456 789"
	updated, err := svc.UpdatePerson(context.Background(), identFor(identity.TierEmployee, p.ID), UpdatePersonInput{
		ID:           p.ID,
		FirstName:    &newName,
		Role:         &newRole,
		ManagerID:    nil,
		ManagerIDSet: true,
		PhoneNumber:  &newPhone,
	})
	if err != nil {
		t.Fatalf("UpdatePerson returned error: %v", err)
	}

	if updated.FirstName != "Selfie" {
		t.Errorf("first name must stay locked, got %s", updated.FirstName)
	}
	if updated.Role != identity.RoleEmployee {
		t.Errorf("role must stay locked, got %s", updated.Role)
	}
	if updated.ManagerID == nil || *updated.ManagerID != manager.ID {
		t.Errorf("manager must stay locked, got %+v", updated.ManagerID)
	}
	if updated.PhoneNumber != newPhone {
		t.Errorf("phone number should update, got %s", updated.PhoneNumber)
	}
}

func TestUpdatePerson_AdminFullFieldSet(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)

	manager := seedPerson(t, repo, "Boss", identity.RoleManager, nil)
	p := seedPerson(t, repo, "Worker", identity.RoleEmployee, nil)

	newName := "Promoted"
	newRole := identity.RoleManager
	updated, err := svc.UpdatePerson(context.Background(), identFor(identity.TierHRAdmin, "p-hr"), UpdatePersonInput{
		ID:           p.ID,
		FirstName:    &newName,
		Role:         &newRole,
		ManagerID:    &manager.ID,
		ManagerIDSet: true,
	})
	if err != nil {
		t.Fatalf("UpdatePerson returned error: %v", err)
	}
	if updated.FirstName != newName || updated.Role != newRole {
		t.Fatalf("admin edit not applied: %+v", updated)
	}
	if updated.ManagerID == nil || *updated.ManagerID != manager.ID {
		t.Fatalf("manager not applied: %+v", updated.ManagerID)
	}
}

func TestUpdatePerson_StrangerDenied(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)
	p := seedPerson(t, repo, "Worker", identity.RoleEmployee, nil)
	other := seedPerson(t, repo, "Other", identity.RoleEmployee, nil)

	phone := "+1 555 000 1111"
	_, err := svc.UpdatePerson(context.Background(), identFor(identity.TierEmployee, other.ID), UpdatePersonInput{
		ID:          p.ID,
		PhoneNumber: &phone,
	})
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestDeletePerson_AdminOnly(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	svc := newTestService(repo)
	p := seedPerson(t, repo, "Target", identity.RoleEmployee, nil)

	if err := svc.DeletePerson(context.Background(), identFor(identity.TierManager, "p-mgr"), DeletePersonInput{ID: p.ID}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}

	if err := svc.DeletePerson(context.Background(), identFor(identity.TierHRAdmin, "p-hr"), DeletePersonInput{ID: p.ID}); err != nil {
		t.Fatalf("DeletePerson returned error: %v", err)
	}

	if _, err := repo.FindByID(context.Background(), p.ID); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected person to be gone, got %v", err)
	}
}

func TestAttachResume(t *testing.T) {
	t.Parallel()

	repo := newFakePersonRepo()
	store := &stubResumeStore{path: "/var/lib/team-tracker/resumes/8f14e45f.pdf"}
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	svc := NewService(repo, &stubClock{now: now}, nil, nil, store)

	p := seedPerson(t, repo, "Selfie", identity.RoleEmployee, nil)
	other := seedPerson(t, repo, "Other", identity.RoleEmployee, nil)
	pdf := []byte("%PDF-1.7 test content")

	updated, err := svc.AttachResume(context.Background(), identFor(identity.TierEmployee, p.ID), AttachResumeInput{
		PersonID: p.ID,
		Filename: "cv.pdf",
		Content:  pdf,
	})
	if err != nil {
		t.Fatalf("AttachResume returned error: %v", err)
	}
	if updated.ResumePath == nil || *updated.ResumePath != store.path {
		t.Fatalf("expected resume path %s, got %+v", store.path, updated.ResumePath)
	}

	if _, err := svc.AttachResume(context.Background(), identFor(identity.TierEmployee, other.ID), AttachResumeInput{
		PersonID: p.ID,
		Filename: "cv.pdf",
		Content:  pdf,
	}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for other employee, got %v", err)
	}

	if _, err := svc.AttachResume(context.Background(), identFor(identity.TierEmployee, p.ID), AttachResumeInput{
		PersonID: p.ID,
		Filename: "cv.exe",
		Content:  pdf,
	}); !errors.Is(err, ErrInvalidResumeFile) {
		t.Fatalf("expected ErrInvalidResumeFile, got %v", err)
	}

	huge := append([]byte("%PDF"), bytes.Repeat([]byte("a"), maxResumeBytes)...)
	if _, err := svc.AttachResume(context.Background(), identFor(identity.TierEmployee, p.ID), AttachResumeInput{
		PersonID: p.ID,
		Filename: "cv.pdf",
		Content:  huge,
	}); !errors.Is(err, ErrResumeTooLarge) {
		t.Fatalf("expected ErrResumeTooLarge, got %v", err)
	}
}
