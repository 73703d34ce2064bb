package postgres

import (
	"context"
	"errors"

	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/ogurasousui/team-tracker/internal/core/person"
)

// IdentityDirectory は persons テーブルを identity.Directory として公開します。
type IdentityDirectory struct {
	persons *PersonRepository
}

// NewIdentityDirectory は IdentityDirectory を生成します。
func NewIdentityDirectory(persons *PersonRepository) *IdentityDirectory {
	return &IdentityDirectory{persons: persons}
}

// FindLinkedPerson は外部アカウント ID に紐づく Person を引きます。
// 紐付きが無い場合は identity.ErrNotLinked を返します。
func (d *IdentityDirectory) FindLinkedPerson(ctx context.Context, userID string) (*identity.LinkedPerson, error) {
	p, err := d.persons.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, person.ErrPersonNotFound) {
			return nil, identity.ErrNotLinked
		}
		return nil, err
	}
	return &identity.LinkedPerson{ID: p.ID, Role: p.Role}, nil
}
