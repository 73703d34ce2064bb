package identity

import (
	"context"
	"errors"
	"testing"
)

type stubDirectory struct {
	linked map[string]*LinkedPerson
	err    error
}

func (d *stubDirectory) FindLinkedPerson(_ context.Context, userID string) (*LinkedPerson, error) {
	if d.err != nil {
		return nil, d.err
	}
	linked, ok := d.linked[userID]
	if !ok {
		return nil, ErrNotLinked
	}
	return linked, nil
}

func TestNormalizeRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want Role
	}{
		{"employee", RoleEmployee},
		{"Employee", RoleEmployee},
		{"manager", RoleManager},
		{"Manager", RoleManager},
		{"hr_admin", RoleHRAdmin},
		{"HR Admin", RoleHRAdmin},
		{"hr admin", RoleHRAdmin},
		{"HR-Admin", RoleHRAdmin},
		{" hradmin ", RoleHRAdmin},
	}

	for _, tc := range cases {
		got, err := NormalizeRole(tc.raw)
		if err != nil {
			t.Fatalf("NormalizeRole(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}

	if _, err := NormalizeRole("director"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestResolve_TierByRole(t *testing.T) {
	t.Parallel()

	dir := &stubDirectory{linked: map[string]*LinkedPerson{
		"u-emp": {ID: "p-emp", Role: RoleEmployee},
		"u-mgr": {ID: "p-mgr", Role: RoleManager},
		"u-hr":  {ID: "p-hr", Role: RoleHRAdmin},
	}}
	resolver := NewResolver(dir)

	cases := []struct {
		userID     string
		wantTier   Tier
		wantPerson string
	}{
		{"u-emp", TierEmployee, "p-emp"},
		{"u-mgr", TierManager, "p-mgr"},
		{"u-hr", TierHRAdmin, "p-hr"},
		{"u-ghost", TierUnlinked, ""},
	}

	for _, tc := range cases {
		ident, err := resolver.Resolve(context.Background(), Actor{UserID: tc.userID})
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", tc.userID, err)
		}
		if ident.Tier != tc.wantTier {
			t.Errorf("Resolve(%q) tier = %q, want %q", tc.userID, ident.Tier, tc.wantTier)
		}
		if ident.PersonID != tc.wantPerson {
			t.Errorf("Resolve(%q) person = %q, want %q", tc.userID, ident.PersonID, tc.wantPerson)
		}
	}
}

func TestResolve_SuperuserOverridesLinkedRole(t *testing.T) {
	t.Parallel()

	dir := &stubDirectory{linked: map[string]*LinkedPerson{
		"u-1": {ID: "p-1", Role: RoleEmployee},
	}}
	resolver := NewResolver(dir)

	ident, err := resolver.Resolve(context.Background(), Actor{UserID: "u-1", Superuser: true})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if ident.Tier != TierSystemAdmin {
		t.Fatalf("expected TierSystemAdmin, got %q", ident.Tier)
	}
	if ident.PersonID != "p-1" {
		t.Fatalf("expected linked person to be preserved, got %q", ident.PersonID)
	}
}

func TestResolve_SuperuserWithoutLink(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&stubDirectory{})

	ident, err := resolver.Resolve(context.Background(), Actor{UserID: "u-root", Superuser: true})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if ident.Tier != TierSystemAdmin {
		t.Fatalf("expected TierSystemAdmin, got %q", ident.Tier)
	}
	if ident.Linked() {
		t.Fatal("expected unlinked identity")
	}
}

func TestResolve_DirectoryError(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&stubDirectory{err: errors.New("boom")})

	if _, err := resolver.Resolve(context.Background(), Actor{UserID: "u-1"}); err == nil {
		t.Fatal("expected directory error to propagate")
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	t.Parallel()

	ident := Identity{Actor: Actor{UserID: "u-1"}, Tier: TierManager, PersonID: "p-1"}
	ctx := NewContext(context.Background(), ident)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if got != ident {
		t.Fatalf("unexpected identity: %+v", got)
	}

	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("expected no identity in empty context")
	}
}
