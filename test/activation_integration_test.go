//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/team-tracker/internal/adapters/repository/postgres"
	"github.com/ogurasousui/team-tracker/internal/core/audit"
	"github.com/ogurasousui/team-tracker/internal/core/contract"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/ogurasousui/team-tracker/internal/core/person"
	"github.com/ogurasousui/team-tracker/internal/platform/config"
	pg "github.com/ogurasousui/team-tracker/internal/platform/db/postgres"
)

const migrationsDir = "assets/migrations"

func TestContractActivationIntegration(t *testing.T) {
	t.Parallel()

	cfgPath := configPathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	now := time.Now().UTC()
	clock := stubClock{now: now}
	txManager := pg.NewTransactionManager(pool)

	auditRepo := repo.NewAuditRepository(pool)
	auditSvc := audit.NewService(auditRepo, clock)

	personRepo := repo.NewPersonRepository(pool)
	personSvc := person.NewService(personRepo, clock, txManager, auditSvc, nil)

	contractRepo := repo.NewContractRepository(pool)
	contractSvc := contract.NewService(contractRepo, personRepo, clock, txManager, auditSvc, 0)

	admin := identity.Identity{
		Actor: identity.Actor{UserID: "integration-admin", Superuser: true},
		Tier:  identity.TierSystemAdmin,
	}

	created, err := personSvc.CreatePerson(ctx, admin, person.CreatePersonInput{
		FirstName:   "Integration",
		LastName:    "Tester",
		Email:       "integration@example.com",
		PhoneNumber: "+81-90-0000-0000",
		DateOfBirth: time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
		Role:        identity.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("CreatePerson error: %v", err)
	}
	if created.Active {
		t.Fatal("expected person without contracts to be inactive")
	}

	signed, err := contractSvc.CreateContract(ctx, admin, contract.CreateContractInput{
		PersonID:        created.ID,
		JobTitle:        "Software Engineer",
		ContractStart:   now.AddDate(0, -1, 0),
		HourlyRate:      45.0,
		ContractedHours: 40,
	})
	if err != nil {
		t.Fatalf("CreateContract error: %v", err)
	}

	activated, err := personRepo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if !activated.Active {
		t.Fatal("expected person to be active after an ongoing contract is added")
	}

	if err := contractSvc.DeleteContract(ctx, admin, contract.DeleteContractInput{ID: signed.ID}); err != nil {
		t.Fatalf("DeleteContract error: %v", err)
	}

	deactivated, err := personRepo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if deactivated.Active {
		t.Fatal("expected person to be inactive after the last contract is removed")
	}

	if err := personSvc.DeletePerson(ctx, admin, person.DeletePersonInput{ID: created.ID}); err != nil {
		t.Fatalf("DeletePerson error: %v", err)
	}

	if _, err := personRepo.FindByID(ctx, created.ID); !errors.Is(err, person.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
