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
	"github.com/ogurasousui/team-tracker/internal/core/contract"
	pgdb "github.com/ogurasousui/team-tracker/internal/platform/db/postgres"
)

// ContractRepository は PostgreSQL を利用した契約永続化の実装です。
type ContractRepository struct {
	pool pgdb.Queryer
}

// NewContractRepository は ContractRepository を生成します。
func NewContractRepository(pool pgdb.Queryer) *ContractRepository {
	return &ContractRepository{pool: pool}
}

const contractSelectColumns = `c.id, c.person_id, c.job_title, c.contract_start, c.contract_end,
               c.hourly_rate, c.contracted_hours, c.created_at, c.updated_at,
               p.id, p.first_name, p.last_name, p.manager_id`

// Create は契約を新規作成します。
func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) (*contract.Contract, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH inserted AS (
            INSERT INTO contracts (person_id, job_title, contract_start, contract_end, hourly_rate, contracted_hours, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            RETURNING id, person_id, job_title, contract_start, contract_end, hourly_rate, contracted_hours, created_at, updated_at
        )
        SELECT c.id, c.person_id, c.job_title, c.contract_start, c.contract_end,
               c.hourly_rate, c.contracted_hours, c.created_at, c.updated_at,
               p.id, p.first_name, p.last_name, p.manager_id
          FROM inserted c
          JOIN persons p ON p.id = c.person_id
    `,
		c.PersonID,
		c.JobTitle,
		c.ContractStart,
		nullableDate(c.ContractEnd),
		c.HourlyRate,
		c.ContractedHours,
		c.CreatedAt,
		c.UpdatedAt,
	)

	created, err := scanContract(row)
	if err != nil {
		return nil, translateContractPgError(err)
	}
	return created, nil
}

// Update は契約を更新します。
func (r *ContractRepository) Update(ctx context.Context, c *contract.Contract) (*contract.Contract, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH updated AS (
            UPDATE contracts
               SET person_id = $1,
                   job_title = $2,
                   contract_start = $3,
                   contract_end = $4,
                   hourly_rate = $5,
                   contracted_hours = $6,
                   updated_at = $7
             WHERE id = $8
            RETURNING id, person_id, job_title, contract_start, contract_end, hourly_rate, contracted_hours, created_at, updated_at
        )
        SELECT c.id, c.person_id, c.job_title, c.contract_start, c.contract_end,
               c.hourly_rate, c.contracted_hours, c.created_at, c.updated_at,
               p.id, p.first_name, p.last_name, p.manager_id
          FROM updated c
          JOIN persons p ON p.id = c.person_id
    `,
		c.PersonID,
		c.JobTitle,
		c.ContractStart,
		nullableDate(c.ContractEnd),
		c.HourlyRate,
		c.ContractedHours,
		c.UpdatedAt,
		c.ID,
	)

	updated, err := scanContract(row)
	if err != nil {
		return nil, translateContractPgError(err)
	}
	return updated, nil
}

// Delete は契約を削除します。
func (r *ContractRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return translateContractPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}
	return nil
}

// FindByID は ID で契約を取得します。
func (r *ContractRepository) FindByID(ctx context.Context, id string) (*contract.Contract, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+contractSelectColumns+`
          FROM contracts c
          JOIN persons p ON p.id = c.person_id
         WHERE c.id = $1
         LIMIT 1
    `, id)

	found, err := scanContract(row)
	if err != nil {
		return nil, translateContractPgError(err)
	}
	return found, nil
}

// ListByPerson は従業員の契約を全件取得します。在籍再計算の走査用です。
func (r *ContractRepository) ListByPerson(ctx context.Context, personID string) ([]*contract.Contract, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+contractSelectColumns+`
          FROM contracts c
          JOIN persons p ON p.id = c.person_id
         WHERE c.person_id = $1
         ORDER BY c.contract_start DESC, c.id DESC
    `, personID)
	if err != nil {
		return nil, translateContractPgError(err)
	}
	defer rows.Close()

	var contracts []*contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, translateContractPgError(err)
		}
		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, translateContractPgError(err)
	}

	return contracts, nil
}

// List は契約の一覧を取得します。
func (r *ContractRepository) List(ctx context.Context, filter contract.ListContractsFilter) ([]*contract.Contract, string, error) {
	if filter.Limit <= 0 {
		return nil, "", contract.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", contract.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 4)
	conditions := make([]string, 0, 2)

	if filter.PersonID != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "c.person_id = "+placeholder)
		args = append(args, *filter.PersonID)
	}

	if filter.ManagerID != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "p.manager_id = "+placeholder)
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
        SELECT ` + contractSelectColumns + `
          FROM contracts c
          JOIN persons p ON p.id = c.person_id` + whereClause + `
         ORDER BY c.created_at DESC, c.id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateContractPgError(err)
	}
	defer rows.Close()

	contracts := make([]*contract.Contract, 0, filter.Limit)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, "", translateContractPgError(err)
		}
		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateContractPgError(err)
	}

	var nextToken string
	if len(contracts) == limitWithBuffer {
		contracts = contracts[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return contracts, nextToken, nil
}

func scanContract(row pgx.Row) (*contract.Contract, error) {
	var (
		c             contract.Contract
		contractEnd   sql.NullTime
		snapID        string
		snapFirstName string
		snapLastName  string
		snapManagerID sql.NullString
	)

	if err := row.Scan(
		&c.ID,
		&c.PersonID,
		&c.JobTitle,
		&c.ContractStart,
		&contractEnd,
		&c.HourlyRate,
		&c.ContractedHours,
		&c.CreatedAt,
		&c.UpdatedAt,
		&snapID,
		&snapFirstName,
		&snapLastName,
		&snapManagerID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contract.ErrContractNotFound
		}
		return nil, err
	}

	c.ContractStart = dateOnly(c.ContractStart)
	if contractEnd.Valid {
		end := dateOnly(contractEnd.Time)
		c.ContractEnd = &end
	}
	c.Person = &contract.PersonSnapshot{
		ID:        snapID,
		FirstName: snapFirstName,
		LastName:  snapLastName,
	}
	if snapManagerID.Valid {
		c.Person.ManagerID = &snapManagerID.String
	}
	return &c, nil
}

func translateContractPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return contract.ErrContractNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return contract.ErrPersonNotFound
		case checkViolationCode:
			if pgErr.ConstraintName == "contracts_date_range_check" {
				return contract.ErrInvalidDateRange
			}
			return contract.ErrInvalidContractedHours
		}
	}

	return err
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return dateOnly(*value)
}
