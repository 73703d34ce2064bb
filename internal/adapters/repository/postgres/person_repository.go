package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/ogurasousui/team-tracker/internal/core/person"
	pgdb "github.com/ogurasousui/team-tracker/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// PersonRepository は PostgreSQL を利用した従業員永続化の実装です。
// contract 側の PersonStatusStore も兼ねます。
type PersonRepository struct {
	pool pgdb.Queryer
}

// NewPersonRepository は PersonRepository を生成します。
func NewPersonRepository(pool pgdb.Queryer) *PersonRepository {
	return &PersonRepository{pool: pool}
}

const personColumns = `id, first_name, last_name, email, phone_number, date_of_birth,
               role, active, manager_id, user_id, resume_path, created_at, updated_at`

// Create は従業員を新規作成します。
func (r *PersonRepository) Create(ctx context.Context, p *person.Person) (*person.Person, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO persons (first_name, last_name, email, phone_number, date_of_birth, role, active, manager_id, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+personColumns+`
    `,
		p.FirstName,
		p.LastName,
		p.Email,
		p.PhoneNumber,
		dateOnly(p.DateOfBirth),
		string(p.Role),
		p.Active,
		p.ManagerID,
		p.UserID,
		p.CreatedAt,
		p.UpdatedAt,
	)

	created, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonPgError(err)
	}
	return created, nil
}

// Update は従業員情報を更新します。active カラムは対象外で、契約再計算だけが
// SetActiveStatus 経由で書き換えます。
func (r *PersonRepository) Update(ctx context.Context, p *person.Person) (*person.Person, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE persons
           SET first_name = $1,
               last_name = $2,
               email = $3,
               phone_number = $4,
               date_of_birth = $5,
               role = $6,
               manager_id = $7,
               user_id = $8,
               resume_path = $9,
               updated_at = $10
         WHERE id = $11
        RETURNING `+personColumns+`
    `,
		p.FirstName,
		p.LastName,
		p.Email,
		p.PhoneNumber,
		dateOnly(p.DateOfBirth),
		string(p.Role),
		p.ManagerID,
		p.UserID,
		p.ResumePath,
		p.UpdatedAt,
		p.ID,
	)

	updated, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonPgError(err)
	}
	return updated, nil
}

// SetActiveStatus は在籍フラグを書き込みます。契約の再計算専用の経路です。
func (r *PersonRepository) SetActiveStatus(ctx context.Context, personID string, active bool) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `UPDATE persons SET active = $1, updated_at = now() WHERE id = $2`, active, personID)
	if err != nil {
		return translatePersonPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return person.ErrPersonNotFound
	}
	return nil
}

// Delete は従業員を削除します。契約は DB 側のカスケードで一緒に消えます。
func (r *PersonRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return translatePersonPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return person.ErrPersonNotFound
	}
	return nil
}

// FindByID は ID で従業員を取得します。
func (r *PersonRepository) FindByID(ctx context.Context, id string) (*person.Person, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+personColumns+`
          FROM persons
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonPgError(err)
	}
	return found, nil
}

// FindByUserID は外部アカウント ID で従業員を取得します。
func (r *PersonRepository) FindByUserID(ctx context.Context, userID string) (*person.Person, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+personColumns+`
          FROM persons
         WHERE user_id = $1
         LIMIT 1
    `, userID)

	found, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonPgError(err)
	}
	return found, nil
}

// List は従業員の一覧を取得します。
func (r *PersonRepository) List(ctx context.Context, filter person.ListPersonsFilter) ([]*person.Person, string, error) {
	if filter.Limit <= 0 {
		return nil, "", person.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", person.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 3)
	conditions := make([]string, 0, 1)

	if filter.ManagerID != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "manager_id = "+placeholder)
		args = append(args, *filter.ManagerID)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT ` + personColumns + `
          FROM persons` + whereClause + `
         ORDER BY created_at DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translatePersonPgError(err)
	}
	defer rows.Close()

	persons := make([]*person.Person, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, "", translatePersonPgError(err)
		}
		persons = append(persons, p)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translatePersonPgError(err)
	}

	var nextToken string
	if len(persons) == limitWithBuffer {
		persons = persons[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return persons, nextToken, nil
}

func scanPerson(row pgx.Row) (*person.Person, error) {
	var (
		p           person.Person
		role        string
		dateOfBirth time.Time
		managerID   sql.NullString
		userID      sql.NullString
		resumePath  sql.NullString
	)

	if err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.PhoneNumber,
		&dateOfBirth,
		&role,
		&p.Active,
		&managerID,
		&userID,
		&resumePath,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, person.ErrPersonNotFound
		}
		return nil, err
	}

	p.Role = identity.Role(role)
	p.DateOfBirth = dateOnly(dateOfBirth)
	if managerID.Valid {
		p.ManagerID = &managerID.String
	}
	if userID.Valid {
		p.UserID = &userID.String
	}
	if resumePath.Valid {
		p.ResumePath = &resumePath.String
	}
	return &p, nil
}

func translatePersonPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return person.ErrPersonNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return person.ErrEmailAlreadyExists
		case foreignKeyViolationCode:
			if pgErr.ConstraintName == "persons_manager_id_fkey" {
				return person.ErrManagerNotFound
			}
			return err
		case checkViolationCode:
			return person.ErrInvalidRole
		}
	}

	return err
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
