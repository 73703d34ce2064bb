package person

import "context"

// Repository は従業員永続化の抽象です。Update は active カラムに触れません。
// active の書き込みは契約側の再計算だけが SetActiveStatus 経由で行います。
type Repository interface {
	Create(ctx context.Context, p *Person) (*Person, error)
	Update(ctx context.Context, p *Person) (*Person, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Person, error)
	FindByUserID(ctx context.Context, userID string) (*Person, error)
	List(ctx context.Context, filter ListPersonsFilter) ([]*Person, string, error)
}

// ListPersonsFilter は一覧取得用フィルタです。ManagerID を指定すると
// そのマネージャー直下の従業員に絞り込みます。
type ListPersonsFilter struct {
	ManagerID *string
	Limit     int
	Offset    int
}
