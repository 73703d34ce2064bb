package audit

import (
	"context"
	"errors"
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

type fakeAuditRepo struct {
	events   map[Kind][]Event
	security []SecurityEvent
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{events: make(map[Kind][]Event)}
}

func (r *fakeAuditRepo) Insert(_ context.Context, ev Event) error {
	r.events[ev.Kind] = append(r.events[ev.Kind], ev)
	return nil
}

func (r *fakeAuditRepo) ListRecentByKind(_ context.Context, kind Kind, limit int) ([]Event, error) {
	events := r.events[kind]
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (r *fakeAuditRepo) InsertSecurityEvent(_ context.Context, ev SecurityEvent) error {
	r.security = append(r.security, ev)
	return nil
}

func (r *fakeAuditRepo) ListSecurityEvents(_ context.Context, limit int) ([]SecurityEvent, error) {
	events := r.security
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func hrAdmin() identity.Identity {
	return identity.Identity{Actor: identity.Actor{UserID: "u-hr"}, Tier: identity.TierHRAdmin, PersonID: "p-hr"}
}

func TestRecord_FillsOccurredAt(t *testing.T) {
	t.Parallel()

	repo := newFakeAuditRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(repo, &stubClock{now: now})

	err := svc.Record(context.Background(), Event{
		Kind:     KindPerson,
		EntityID: "p-1",
		Change:   ChangeCreated,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	if got := repo.events[KindPerson][0].OccurredAt; !got.Equal(now) {
		t.Fatalf("expected occurred_at %v, got %v", now, got)
	}
}

func TestRecord_RejectsInvalidEvent(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAuditRepo(), nil)

	if err := svc.Record(context.Background(), Event{Kind: "group", EntityID: "g-1", Change: ChangeCreated}); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
	if err := svc.Record(context.Background(), Event{Kind: KindTask, Change: ChangeCreated}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for missing entity id, got %v", err)
	}
}

func TestListHistory_MergesStreamsNewestFirst(t *testing.T) {
	t.Parallel()

	repo := newFakeAuditRepo()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.events[KindPerson] = []Event{{Kind: KindPerson, EntityID: "p-1", Change: ChangeCreated, OccurredAt: base.Add(1 * time.Hour)}}
	repo.events[KindContract] = []Event{{Kind: KindContract, EntityID: "c-1", Change: ChangeDeleted, OccurredAt: base.Add(3 * time.Hour)}}
	repo.events[KindTask] = []Event{
		{Kind: KindTask, EntityID: "t-1", Change: ChangeChanged, OccurredAt: base.Add(2 * time.Hour)},
		{Kind: KindTask, EntityID: "t-2", Change: ChangeCreated, OccurredAt: base},
	}

	svc := NewService(repo, nil)

	feed, err := svc.ListHistory(context.Background(), hrAdmin(), ListHistoryInput{})
	if err != nil {
		t.Fatalf("ListHistory returned error: %v", err)
	}

	wantOrder := []string{"c-1", "t-1", "p-1", "t-2"}
	if len(feed) != len(wantOrder) {
		t.Fatalf("expected %d events, got %d", len(wantOrder), len(feed))
	}
	for i, id := range wantOrder {
		if feed[i].EntityID != id {
			t.Errorf("feed[%d] = %s, want %s", i, feed[i].EntityID, id)
		}
	}
}

func TestListHistory_CapsWindow(t *testing.T) {
	t.Parallel()

	repo := newFakeAuditRepo()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < maxHistoryWindow+50; i++ {
		repo.events[KindTask] = append(repo.events[KindTask], Event{
			Kind:       KindTask,
			EntityID:   "t",
			Change:     ChangeChanged,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	svc := NewService(repo, nil)

	feed, err := svc.ListHistory(context.Background(), hrAdmin(), ListHistoryInput{Limit: 0})
	if err != nil {
		t.Fatalf("ListHistory returned error: %v", err)
	}
	if len(feed) != maxHistoryWindow {
		t.Fatalf("expected window of %d, got %d", maxHistoryWindow, len(feed))
	}
}

func TestListHistory_TierRules(t *testing.T) {
	t.Parallel()

	repo := newFakeAuditRepo()
	repo.events[KindPerson] = []Event{{Kind: KindPerson, EntityID: "p-1", Change: ChangeCreated}}
	svc := NewService(repo, nil)

	sysadmin := identity.Identity{Actor: identity.Actor{UserID: "root", Superuser: true}, Tier: identity.TierSystemAdmin}
	feed, err := svc.ListHistory(context.Background(), sysadmin, ListHistoryInput{})
	if err != nil {
		t.Fatalf("ListHistory for sysadmin returned error: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("expected empty feed for sysadmin, got %d events", len(feed))
	}

	for _, tier := range []identity.Tier{identity.TierManager, identity.TierEmployee, identity.TierUnlinked} {
		_, err := svc.ListHistory(context.Background(), identity.Identity{Tier: tier}, ListHistoryInput{})
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("tier %s: expected ErrAccessDenied, got %v", tier, err)
		}
	}
}

func TestListSecurityLogs_SystemAdminOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeAuditRepo()
	repo.security = []SecurityEvent{{Event: EventPermissionDenied, ActorUserID: "u-1", Target: "/task.v1.TaskService/DeleteTask"}}
	svc := NewService(repo, nil)

	sysadmin := identity.Identity{Actor: identity.Actor{UserID: "root", Superuser: true}, Tier: identity.TierSystemAdmin}
	logs, err := svc.ListSecurityLogs(context.Background(), sysadmin, ListSecurityLogsInput{})
	if err != nil {
		t.Fatalf("ListSecurityLogs returned error: %v", err)
	}
	if len(logs) != 1 || logs[0].Event != EventPermissionDenied {
		t.Fatalf("unexpected logs: %+v", logs)
	}

	if _, err := svc.ListSecurityLogs(context.Background(), hrAdmin(), ListSecurityLogsInput{}); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for hr admin, got %v", err)
	}
}
