package audit

import "context"

// Repository は履歴レコード永続化の抽象です。
type Repository interface {
	Insert(ctx context.Context, ev Event) error
	ListRecentByKind(ctx context.Context, kind Kind, limit int) ([]Event, error)
	InsertSecurityEvent(ctx context.Context, ev SecurityEvent) error
	ListSecurityEvents(ctx context.Context, limit int) ([]SecurityEvent, error)
}
