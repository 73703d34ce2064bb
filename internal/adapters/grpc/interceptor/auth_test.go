package interceptor

import (
	"context"
	"errors"
	"testing"

	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type stubDirectory struct {
	persons map[string]*identity.LinkedPerson
}

func (s *stubDirectory) FindLinkedPerson(_ context.Context, userID string) (*identity.LinkedPerson, error) {
	p, ok := s.persons[userID]
	if !ok {
		return nil, identity.ErrNotLinked
	}
	return p, nil
}

func TestUnaryAuth_ResolvesLinkedManager(t *testing.T) {
	t.Parallel()

	resolver := identity.NewResolver(&stubDirectory{persons: map[string]*identity.LinkedPerson{
		"user-1": {ID: "p-1", Role: identity.RoleManager},
	}})
	intercept := UnaryAuth(resolver)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-actor-user-id", "user-1",
	))

	var captured identity.Identity
	_, err := intercept(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/person.v1.PersonService/GetPerson"},
		func(ctx context.Context, _ any) (any, error) {
			ident, ok := identity.FromContext(ctx)
			if !ok {
				return nil, errors.New("identity missing from context")
			}
			captured = ident
			return nil, nil
		})
	if err != nil {
		t.Fatalf("interceptor returned error: %v", err)
	}

	if captured.Tier != identity.TierManager {
		t.Fatalf("expected manager tier, got %s", captured.Tier)
	}
	if captured.PersonID != "p-1" {
		t.Fatalf("expected linked person, got %s", captured.PersonID)
	}
}

func TestUnaryAuth_SuperuserOverridesTier(t *testing.T) {
	t.Parallel()

	resolver := identity.NewResolver(&stubDirectory{persons: map[string]*identity.LinkedPerson{}})
	intercept := UnaryAuth(resolver)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-actor-user-id", "root",
		"x-actor-superuser", "true",
	))

	_, err := intercept(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/audit.v1.AuditService/ListSecurityLogs"},
		func(ctx context.Context, _ any) (any, error) {
			ident, _ := identity.FromContext(ctx)
			if ident.Tier != identity.TierSystemAdmin {
				return nil, errors.New("expected system admin tier")
			}
			return nil, nil
		})
	if err != nil {
		t.Fatalf("interceptor returned error: %v", err)
	}
}

func TestUnaryAuth_NoHeadersYieldsUnlinked(t *testing.T) {
	t.Parallel()

	resolver := identity.NewResolver(&stubDirectory{persons: map[string]*identity.LinkedPerson{}})
	intercept := UnaryAuth(resolver)

	_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/task.v1.TaskService/ListTasks"},
		func(ctx context.Context, _ any) (any, error) {
			ident, _ := identity.FromContext(ctx)
			if ident.Tier != identity.TierUnlinked {
				return nil, errors.New("expected unlinked tier")
			}
			return nil, nil
		})
	if err != nil {
		t.Fatalf("interceptor returned error: %v", err)
	}
}
