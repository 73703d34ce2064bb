package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	auditpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/audit/v1"
	contractpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/contract/v1"
	personpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/person/v1"
	taskpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/task/v1"
	"github.com/ogurasousui/team-tracker/internal/adapters/grpc/handler"
	"github.com/ogurasousui/team-tracker/internal/core/audit"
	"github.com/ogurasousui/team-tracker/internal/core/contract"
	"github.com/ogurasousui/team-tracker/internal/core/person"
	"github.com/ogurasousui/team-tracker/internal/core/task"
	"google.golang.org/grpc"
)

// Services はサーバーへ登録するユースケース一式です。
type Services struct {
	Person   person.UseCase
	Contract contract.UseCase
	Task     task.UseCase
	Audit    audit.UseCase
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, services Services, opts ...grpc.ServerOption) *Server {
	srv := grpc.NewServer(opts...)
	personpb.RegisterPersonServiceServer(srv, handler.NewPersonGrpcHandler(services.Person))
	contractpb.RegisterContractServiceServer(srv, handler.NewContractGrpcHandler(services.Contract))
	taskpb.RegisterTaskServiceServer(srv, handler.NewTaskGrpcHandler(services.Task))
	auditpb.RegisterAuditServiceServer(srv, handler.NewAuditGrpcHandler(services.Audit))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
