package contract

import "time"

// Contract は雇用契約エンティティです。ContractEnd が nil の契約は無期限です。
type Contract struct {
	ID              string
	PersonID        string
	JobTitle        string
	ContractStart   time.Time
	ContractEnd     *time.Time
	HourlyRate      float64
	ContractedHours float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Person          *PersonSnapshot
}

// PersonSnapshot は契約に紐づく従業員情報のスナップショットです。
// ManagerID はマネージャー向けスコープ判定に使います。
type PersonSnapshot struct {
	ID        string
	FirstName string
	LastName  string
	ManagerID *string
}

// ValidOn は指定日が契約期間に含まれるかどうかを返します。
func (c *Contract) ValidOn(day time.Time) bool {
	day = truncateToDate(day)
	if c.ContractStart.After(day) {
		return false
	}
	return c.ContractEnd == nil || !day.After(*c.ContractEnd)
}

// ActiveFromContracts は契約集合から従業員の在籍状態を導出します。
// 差分計算ではなく常に全件を走査するため、何度呼んでも同じ入力からは
// 同じ結果になります。
func ActiveFromContracts(contracts []*Contract, today time.Time) bool {
	for _, c := range contracts {
		if c.ValidOn(today) {
			return true
		}
	}
	return false
}

// Snapshot は監査履歴に残すフィールド一式を返します。
func (c *Contract) Snapshot() map[string]any {
	snapshot := map[string]any{
		"person_id":        c.PersonID,
		"job_title":        c.JobTitle,
		"contract_start":   c.ContractStart.Format("2006-01-02"),
		"hourly_rate":      c.HourlyRate,
		"contracted_hours": c.ContractedHours,
	}
	if c.ContractEnd != nil {
		snapshot["contract_end"] = c.ContractEnd.Format("2006-01-02")
	}
	return snapshot
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
