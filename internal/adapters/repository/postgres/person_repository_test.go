package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/ogurasousui/team-tracker/internal/core/person"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanPerson_Success(t *testing.T) {
	t.Parallel()

	dob := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now().UTC()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 13 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "p-1"
		*(dest[1].(*string)) = "Taro"
		*(dest[2].(*string)) = "Yamada"
		*(dest[3].(*string)) = "taro@example.com"
		*(dest[4].(*string)) = "+81-90-0000-0000"
		*(dest[5].(*time.Time)) = dob
		*(dest[6].(*string)) = string(identity.RoleManager)
		*(dest[7].(*bool)) = true

		managerDest := dest[8].(*sql.NullString)
		managerDest.String = "p-boss"
		managerDest.Valid = true

		userDest := dest[9].(*sql.NullString)
		userDest.String = "user-1"
		userDest.Valid = true

		// resume_path は NULL のまま
		*(dest[11].(*time.Time)) = createdAt
		*(dest[12].(*time.Time)) = createdAt.Add(time.Minute)
		return nil
	}}

	p, err := scanPerson(row)
	if err != nil {
		t.Fatalf("scanPerson returned error: %v", err)
	}

	if p.Role != identity.RoleManager {
		t.Fatalf("expected manager role, got %s", p.Role)
	}
	if !p.Active {
		t.Fatal("expected active person")
	}
	if p.ManagerID == nil || *p.ManagerID != "p-boss" {
		t.Fatalf("expected manager id, got %+v", p.ManagerID)
	}
	if p.UserID == nil || *p.UserID != "user-1" {
		t.Fatalf("expected user id, got %+v", p.UserID)
	}
	if p.ResumePath != nil {
		t.Fatalf("expected nil resume path, got %+v", p.ResumePath)
	}
	if !p.DateOfBirth.Equal(dob) {
		t.Fatalf("expected date of birth %v, got %v", dob, p.DateOfBirth)
	}
}

func TestScanPerson_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanPerson(row)
	if !errors.Is(err, person.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestTranslatePersonPgError(t *testing.T) {
	t.Parallel()

	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode}
	if !errors.Is(translatePersonPgError(uniqueErr), person.ErrEmailAlreadyExists) {
		t.Fatal("expected unique violation to map to ErrEmailAlreadyExists")
	}

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "persons_manager_id_fkey"}
	if !errors.Is(translatePersonPgError(fkErr), person.ErrManagerNotFound) {
		t.Fatal("expected fk violation to map to ErrManagerNotFound")
	}

	checkErr := &pgconn.PgError{Code: checkViolationCode}
	if !errors.Is(translatePersonPgError(checkErr), person.ErrInvalidRole) {
		t.Fatal("expected check violation to map to ErrInvalidRole")
	}

	other := errors.New("other")
	if translatePersonPgError(other) != other {
		t.Fatal("unexpected translation for generic error")
	}
}

func TestPersonRepository_SetActiveStatus_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPersonRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE persons SET active = $1, updated_at = now() WHERE id = $2`)).
		WithArgs(true, "p-missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := repo.SetActiveStatus(context.Background(), "p-missing", true); !errors.Is(err, person.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPersonRepository_List_ManagerFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPersonRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT ` + personColumns + `
          FROM persons WHERE manager_id = $1
         ORDER BY created_at DESC, id DESC
         LIMIT $2
        OFFSET $3
    `)

	now := time.Now().UTC()
	dob := time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone_number", "date_of_birth", "role", "active", "manager_id", "user_id", "resume_path", "created_at", "updated_at"}).
		AddRow("p-1", "Taro", "Yamada", "taro@example.com", "+81-90-0000-0000", dob, string(identity.RoleEmployee), true, "p-mgr", nil, nil, now, now)

	managerID := "p-mgr"
	mock.ExpectQuery(query).
		WithArgs(managerID, 3, 0).
		WillReturnRows(rows)

	persons, nextToken, err := repo.List(context.Background(), person.ListPersonsFilter{ManagerID: &managerID, Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(persons) != 1 {
		t.Fatalf("expected 1 person, got %d", len(persons))
	}
	if nextToken != "" {
		t.Fatalf("expected empty next token, got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
