package task

import "context"

// Repository はタスク永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, t *Task) (*Task, error)
	Update(ctx context.Context, t *Task) (*Task, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*Task, string, error)
}

// ListTasksFilter は一覧取得用フィルタです。AssigneePersonID と IncludeTeam を
// 併用すると「自分に割り当てられたタスク、または自分の直属の部下に割り当て
// られたタスク」の和集合になります。同じタスクが二重に返ることはありません。
type ListTasksFilter struct {
	AssigneePersonID *string
	IncludeTeam      bool
	Status           *Status
	Priority         *Priority
	TitleSearch      string
	Limit            int
	Offset           int
}
