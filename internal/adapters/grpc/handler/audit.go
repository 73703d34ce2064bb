package handler

import (
	"context"

	auditpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/audit/v1"
	"github.com/ogurasousui/team-tracker/internal/core/audit"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// AuditGrpcHandler は AuditService の gRPC 実装です。
type AuditGrpcHandler struct {
	svc audit.UseCase
	auditpb.UnimplementedAuditServiceServer
}

// NewAuditGrpcHandler は AuditGrpcHandler を生成します。
func NewAuditGrpcHandler(svc audit.UseCase) *AuditGrpcHandler {
	return &AuditGrpcHandler{svc: svc}
}

// ListHistory は直近の変更履歴フィードを取得します。
func (h *AuditGrpcHandler) ListHistory(ctx context.Context, req *auditpb.ListHistoryRequest) (*auditpb.ListHistoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	events, err := h.svc.ListHistory(ctx, ident, audit.ListHistoryInput{Limit: int(req.GetLimit())})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoEvents := make([]*auditpb.HistoryEvent, 0, len(events))
	for _, ev := range events {
		protoEvent, err := toProtoHistoryEvent(ev)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		protoEvents = append(protoEvents, protoEvent)
	}

	return &auditpb.ListHistoryResponse{Events: protoEvents}, nil
}

// ListSecurityLogs はセキュリティログを取得します。
func (h *AuditGrpcHandler) ListSecurityLogs(ctx context.Context, req *auditpb.ListSecurityLogsRequest) (*auditpb.ListSecurityLogsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := h.svc.ListSecurityLogs(ctx, ident, audit.ListSecurityLogsInput{Limit: int(req.GetLimit())})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoLogs := make([]*auditpb.SecurityLog, 0, len(logs))
	for _, entry := range logs {
		protoLogs = append(protoLogs, &auditpb.SecurityLog{
			Id:          entry.ID,
			Event:       entry.Event,
			ActorUserId: entry.ActorUserID,
			Target:      entry.Target,
			OccurredAt:  timestamppb.New(entry.OccurredAt),
		})
	}

	return &auditpb.ListSecurityLogsResponse{Logs: protoLogs}, nil
}

func toProtoHistoryEvent(ev audit.Event) (*auditpb.HistoryEvent, error) {
	var snapshot *structpb.Struct
	if ev.Snapshot != nil {
		s, err := structpb.NewStruct(ev.Snapshot)
		if err != nil {
			return nil, err
		}
		snapshot = s
	}

	return &auditpb.HistoryEvent{
		Id:          ev.ID,
		Kind:        toProtoEntityKind(ev.Kind),
		EntityId:    ev.EntityID,
		Change:      toProtoChangeType(ev.Change),
		ActorUserId: ev.ActorUserID,
		OccurredAt:  timestamppb.New(ev.OccurredAt),
		Snapshot:    snapshot,
	}, nil
}

func toProtoEntityKind(kind audit.Kind) auditpb.EntityKind {
	switch kind {
	case audit.KindPerson:
		return auditpb.EntityKind_ENTITY_KIND_PERSON
	case audit.KindContract:
		return auditpb.EntityKind_ENTITY_KIND_CONTRACT
	case audit.KindTask:
		return auditpb.EntityKind_ENTITY_KIND_TASK
	default:
		return auditpb.EntityKind_ENTITY_KIND_UNSPECIFIED
	}
}

func toProtoChangeType(change audit.ChangeType) auditpb.ChangeType {
	switch change {
	case audit.ChangeCreated:
		return auditpb.ChangeType_CHANGE_TYPE_CREATED
	case audit.ChangeChanged:
		return auditpb.ChangeType_CHANGE_TYPE_CHANGED
	case audit.ChangeDeleted:
		return auditpb.ChangeType_CHANGE_TYPE_DELETED
	default:
		return auditpb.ChangeType_CHANGE_TYPE_UNSPECIFIED
	}
}
