package interceptor

import (
	"context"

	"github.com/ogurasousui/team-tracker/internal/core/audit"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnarySecurityLog は認可拒否を構造化ログとセキュリティログの両方へ残します。
// 記録の失敗でリクエスト自体のエラーを握り潰すことはありません。
func UnarySecurityLog(logger *logrus.Logger, recorder audit.SecurityRecorder) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		resp, err := next(ctx, req)
		if err == nil || status.Code(err) != codes.PermissionDenied {
			return resp, err
		}

		ident, _ := identity.FromContext(ctx)
		logger.WithFields(logrus.Fields{
			"event":  audit.EventPermissionDenied,
			"actor":  ident.Actor.UserID,
			"tier":   string(ident.Tier),
			"method": info.FullMethod,
		}).Warn("permission denied")

		if recorder != nil {
			if recordErr := recorder.RecordSecurityEvent(ctx, audit.SecurityEvent{
				Event:       audit.EventPermissionDenied,
				ActorUserID: ident.Actor.UserID,
				Target:      info.FullMethod,
			}); recordErr != nil {
				logger.WithError(recordErr).Error("failed to record security event")
			}
		}

		return resp, err
	}
}
