package audit

import "time"

// Kind は変更履歴の対象エンティティ種別です。
type Kind string

const (
	KindPerson   Kind = "person"
	KindContract Kind = "contract"
	KindTask     Kind = "task"
)

// Kinds は履歴フィードに含める全種別です。
var Kinds = []Kind{KindPerson, KindContract, KindTask}

// ChangeType は変更の種類を表します。
type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeChanged ChangeType = "changed"
	ChangeDeleted ChangeType = "deleted"
)

// Event はエンティティ変更 1 件の履歴レコードです。
// Snapshot には変更後（削除時は削除直前）のフィールド一式を入れます。
type Event struct {
	ID          string
	Kind        Kind
	EntityID    string
	Change      ChangeType
	ActorUserID string
	OccurredAt  time.Time
	Snapshot    map[string]any
}

// セキュリティイベント名。
const (
	EventPermissionDenied = "PERMISSION_DENIED"
	EventLoginSuccess     = "LOGIN_SUCCESS"
	EventLoginFailed      = "LOGIN_FAILED"
	EventLogout           = "LOGOUT"
)

// SecurityEvent は認可拒否や認証まわりのセキュリティログ 1 件です。
type SecurityEvent struct {
	ID          string
	Event       string
	ActorUserID string
	Target      string
	OccurredAt  time.Time
}
