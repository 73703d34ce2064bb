package person

import (
	"time"

	"github.com/ogurasousui/team-tracker/internal/core/identity"
)

// Person は従業員エンティティです。Active は契約から導出される派生値で、
// 契約の再計算以外の経路で書き換わることはありません。
type Person struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DateOfBirth time.Time
	Role        identity.Role
	Active      bool
	ManagerID   *string
	UserID      *string
	ResumePath  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName は表示用の氏名を返します。
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Snapshot は監査履歴に残すフィールド一式を返します。
func (p *Person) Snapshot() map[string]any {
	snapshot := map[string]any{
		"first_name":    p.FirstName,
		"last_name":     p.LastName,
		"email":         p.Email,
		"phone_number":  p.PhoneNumber,
		"date_of_birth": p.DateOfBirth.Format("2006-01-02"),
		"role":          string(p.Role),
		"active":        p.Active,
	}
	if p.ManagerID != nil {
		snapshot["manager_id"] = *p.ManagerID
	}
	if p.UserID != nil {
		snapshot["user_id"] = *p.UserID
	}
	return snapshot
}
