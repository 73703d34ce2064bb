package interceptor

import (
	"context"
	"strings"

	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	actorUserIDHeader    = "x-actor-user-id"
	actorSuperuserHeader = "x-actor-superuser"
)

// UnaryAuth はメタデータからアクターを読み取り、Tier と Person 紐付けを
// 解決した Identity をコンテキストへ積みます。ヘッダーが無いリクエストは
// 未紐付けアクターとして通します。
func UnaryAuth(resolver *identity.Resolver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		actor := actorFromMetadata(ctx)

		ident, err := resolver.Resolve(ctx, actor)
		if err != nil {
			return nil, status.Error(codes.Internal, "identity resolution failed")
		}

		return next(identity.NewContext(ctx, ident), req)
	}
}

func actorFromMetadata(ctx context.Context) identity.Actor {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return identity.Actor{}
	}

	actor := identity.Actor{}
	if values := md.Get(actorUserIDHeader); len(values) > 0 {
		actor.UserID = strings.TrimSpace(values[0])
	}
	if values := md.Get(actorSuperuserHeader); len(values) > 0 {
		switch strings.ToLower(strings.TrimSpace(values[0])) {
		case "1", "true":
			actor.Superuser = true
		}
	}
	return actor
}
