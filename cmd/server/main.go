package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/ogurasousui/team-tracker/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/team-tracker/internal/adapters/repository/postgres"
	"github.com/ogurasousui/team-tracker/internal/core/audit"
	"github.com/ogurasousui/team-tracker/internal/core/contract"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/ogurasousui/team-tracker/internal/core/person"
	"github.com/ogurasousui/team-tracker/internal/core/task"
	"github.com/ogurasousui/team-tracker/internal/platform/config"
	pg "github.com/ogurasousui/team-tracker/internal/platform/db/postgres"
	"github.com/ogurasousui/team-tracker/internal/platform/server"
	"github.com/ogurasousui/team-tracker/internal/platform/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}

	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize database pool")
	}
	defer dbPool.Close()

	resumeStore, err := storage.NewResumeStore(cfg.Storage.ResumeDir)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize resume store")
	}

	txManager := pg.NewTransactionManager(dbPool)

	auditRepo := postgres.NewAuditRepository(dbPool)
	auditSvc := audit.NewService(auditRepo, nil)

	personRepo := postgres.NewPersonRepository(dbPool)
	personSvc := person.NewService(personRepo, nil, txManager, auditSvc, resumeStore)

	contractRepo := postgres.NewContractRepository(dbPool)
	contractSvc := contract.NewService(contractRepo, personRepo, nil, txManager, auditSvc, cfg.Contracts.MinimumHourlyRate)

	taskRepo := postgres.NewTaskRepository(dbPool)
	taskSvc := task.NewService(taskRepo, nil, txManager, auditSvc)

	resolver := identity.NewResolver(postgres.NewIdentityDirectory(personRepo))

	grpcServer := server.New(cfg.Server.ListenAddr, server.Services{
		Person:   personSvc,
		Contract: contractSvc,
		Task:     taskSvc,
		Audit:    auditSvc,
	}, grpc.ChainUnaryInterceptor(
		interceptor.UnaryAuth(resolver),
		interceptor.UnarySecurityLog(logger, auditSvc),
	))

	logger.WithField("listen_addr", cfg.Server.ListenAddr).Info("gRPC server listening")

	if err := grpcServer.Run(ctx); err != nil {
		logger.WithError(err).Fatal("server stopped with error")
	}
}
