package contract

import "context"

// Repository は契約永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, c *Contract) (*Contract, error)
	Update(ctx context.Context, c *Contract) (*Contract, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Contract, error)
	ListByPerson(ctx context.Context, personID string) ([]*Contract, error)
	List(ctx context.Context, filter ListContractsFilter) ([]*Contract, string, error)
}

// ListContractsFilter は一覧取得用フィルタです。ManagerID を指定すると
// そのマネージャー直下の従業員の契約に絞り込みます。
type ListContractsFilter struct {
	PersonID  *string
	ManagerID *string
	Limit     int
	Offset    int
}

// PersonStatusStore は従業員の在籍フラグを書き込むための抽象です。
// active の書き込み経路はこのインターフェース経由の再計算だけです。
type PersonStatusStore interface {
	SetActiveStatus(ctx context.Context, personID string, active bool) error
}
