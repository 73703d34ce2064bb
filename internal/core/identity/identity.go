package identity

import (
	"context"
	"errors"
	"strings"
)

// Role は Person の職務ロールの正規値です。
// 移行前のデータには "Manager" や "HR Admin" といった表記ゆれが存在するため、
// 取り込み時は必ず NormalizeRole を通して正規化します。
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHRAdmin  Role = "hr_admin"
)

// NormalizeRole は表記ゆれを含むロール文字列を正規値に変換します。
func NormalizeRole(raw string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	switch normalized {
	case "employee":
		return RoleEmployee, nil
	case "manager":
		return RoleManager, nil
	case "hr_admin", "hradmin":
		return RoleHRAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// IsValidRole はロールが正規値かどうかを返します。
func IsValidRole(role Role) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleHRAdmin:
		return true
	default:
		return false
	}
}

// CanSupervise は部下を持てるロールかどうかを返します。
func (r Role) CanSupervise() bool {
	return r == RoleManager || r == RoleHRAdmin
}

// Tier は認可判定に用いる権限レベルです。
// SystemAdmin > HRAdmin > Manager > Employee > Unlinked の順に強くなります。
type Tier string

const (
	TierSystemAdmin Tier = "system_admin"
	TierHRAdmin     Tier = "hr_admin"
	TierManager     Tier = "manager"
	TierEmployee    Tier = "employee"
	TierUnlinked    Tier = "unlinked"
)

// Admin は全レコードへのアクセスが許される Tier かどうかを返します。
func (t Tier) Admin() bool {
	return t == TierSystemAdmin || t == TierHRAdmin
}

// Actor は認証済みの操作主体です。Superuser は認証基盤側の管理者フラグで、
// Person の紐付けとは独立しています。
type Actor struct {
	UserID    string
	Superuser bool
}

// Identity は Actor に Tier と Person の紐付けを解決した結果です。
// PersonID は紐付く Person が存在しない場合は空文字列になります。
type Identity struct {
	Actor    Actor
	Tier     Tier
	PersonID string
}

// Linked は Person が紐付いているかどうかを返します。
func (i Identity) Linked() bool {
	return i.PersonID != ""
}

// LinkedPerson は Directory が返す最小限の Person 情報です。
type LinkedPerson struct {
	ID   string
	Role Role
}

// Directory は認証ユーザーに紐づく Person を引くための抽象です。
type Directory interface {
	FindLinkedPerson(ctx context.Context, userID string) (*LinkedPerson, error)
}

// Resolver は Actor から Identity を解決します。副作用はありません。
type Resolver struct {
	dir Directory
}

// NewResolver は Resolver を生成します。
func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve は Actor の Tier と Person 紐付けを決定します。
// Superuser フラグは Person の有無にかかわらず常に SystemAdmin を優先します。
func (r *Resolver) Resolve(ctx context.Context, actor Actor) (Identity, error) {
	ident := Identity{Actor: actor, Tier: TierUnlinked}

	if r.dir != nil && strings.TrimSpace(actor.UserID) != "" {
		linked, err := r.dir.FindLinkedPerson(ctx, actor.UserID)
		if err != nil && !errors.Is(err, ErrNotLinked) {
			return Identity{}, err
		}
		if linked != nil {
			ident.PersonID = linked.ID
			ident.Tier = tierForRole(linked.Role)
		}
	}

	if actor.Superuser {
		ident.Tier = TierSystemAdmin
	}

	return ident, nil
}

func tierForRole(role Role) Tier {
	switch role {
	case RoleHRAdmin:
		return TierHRAdmin
	case RoleManager:
		return TierManager
	case RoleEmployee:
		return TierEmployee
	default:
		return TierUnlinked
	}
}
