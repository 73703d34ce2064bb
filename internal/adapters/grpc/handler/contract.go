package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	contractpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/contract/v1"
	"github.com/ogurasousui/team-tracker/internal/core/contract"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ContractGrpcHandler は ContractService の gRPC 実装です。
type ContractGrpcHandler struct {
	svc contract.UseCase
	contractpb.UnimplementedContractServiceServer
}

// NewContractGrpcHandler は ContractGrpcHandler を生成します。
func NewContractGrpcHandler(svc contract.UseCase) *ContractGrpcHandler {
	return &ContractGrpcHandler{svc: svc}
}

// CreateContract は契約を作成します。
func (h *ContractGrpcHandler) CreateContract(ctx context.Context, req *contractpb.CreateContractRequest) (*contractpb.CreateContractResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, err := parseDate(req.GetContractStart())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("contract_start: %v", err))
	}

	end, err := parseOptionalDate(req.ContractEnd)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("contract_end: %v", err))
	}

	created, err := h.svc.CreateContract(ctx, ident, contract.CreateContractInput{
		PersonID:        req.GetPersonId(),
		JobTitle:        req.GetJobTitle(),
		ContractStart:   start,
		ContractEnd:     end,
		HourlyRate:      req.GetHourlyRate(),
		ContractedHours: req.GetContractedHours(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &contractpb.CreateContractResponse{Contract: toProtoContract(created)}, nil
}

// UpdateContract は契約を更新します。
func (h *ContractGrpcHandler) UpdateContract(ctx context.Context, req *contractpb.UpdateContractRequest) (*contractpb.UpdateContractResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	in := contract.UpdateContractInput{
		ID:       req.GetId(),
		PersonID: stringValueToPointer(req.PersonId),
		JobTitle: stringValueToPointer(req.JobTitle),
	}

	if req.ContractStart != nil {
		start, err := parseDate(req.ContractStart.GetValue())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("contract_start: %v", err))
		}
		in.ContractStart = &start
	}

	// 空文字の contract_end は無期限への変更を意味します。
	if req.ContractEnd != nil {
		in.ContractEndSet = true
		if strings.TrimSpace(req.ContractEnd.GetValue()) != "" {
			end, err := parseDate(req.ContractEnd.GetValue())
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("contract_end: %v", err))
			}
			in.ContractEnd = &end
		}
	}

	if req.HourlyRate != nil {
		rate := req.HourlyRate.GetValue()
		in.HourlyRate = &rate
	}
	if req.ContractedHours != nil {
		hours := req.ContractedHours.GetValue()
		in.ContractedHours = &hours
	}

	updated, err := h.svc.UpdateContract(ctx, ident, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &contractpb.UpdateContractResponse{Contract: toProtoContract(updated)}, nil
}

// DeleteContract は契約を削除します。
func (h *ContractGrpcHandler) DeleteContract(ctx context.Context, req *contractpb.DeleteContractRequest) (*contractpb.DeleteContractResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.svc.DeleteContract(ctx, ident, contract.DeleteContractInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &contractpb.DeleteContractResponse{}, nil
}

// GetContract は契約を取得します。
func (h *ContractGrpcHandler) GetContract(ctx context.Context, req *contractpb.GetContractRequest) (*contractpb.GetContractResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetContract(ctx, ident, contract.GetContractInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &contractpb.GetContractResponse{Contract: toProtoContract(found)}, nil
}

// ListContracts は契約の一覧を取得します。
func (h *ContractGrpcHandler) ListContracts(ctx context.Context, req *contractpb.ListContractsRequest) (*contractpb.ListContractsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.ListContracts(ctx, ident, contract.ListContractsInput{
		PersonID:  stringValueToPointer(req.PersonId),
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoContracts := make([]*contractpb.Contract, 0, len(result.Contracts))
	for _, c := range result.Contracts {
		protoContracts = append(protoContracts, toProtoContract(c))
	}

	return &contractpb.ListContractsResponse{
		Contracts:     protoContracts,
		NextPageToken: result.NextPageToken,
	}, nil
}

func toProtoContract(c *contract.Contract) *contractpb.Contract {
	if c == nil {
		return nil
	}

	return &contractpb.Contract{
		Id:              c.ID,
		PersonId:        c.PersonID,
		JobTitle:        c.JobTitle,
		ContractStart:   c.ContractStart.Format(dateLayout),
		ContractEnd:     datePointerToStringValue(c.ContractEnd),
		HourlyRate:      c.HourlyRate,
		ContractedHours: c.ContractedHours,
		CreatedAt:       timestamppb.New(c.CreatedAt),
		UpdatedAt:       timestamppb.New(c.UpdatedAt),
		Person:          toProtoPersonSummary(c.Person),
	}
}

func toProtoPersonSummary(snapshot *contract.PersonSnapshot) *contractpb.PersonSummary {
	if snapshot == nil {
		return nil
	}

	return &contractpb.PersonSummary{
		Id:        snapshot.ID,
		FirstName: snapshot.FirstName,
		LastName:  snapshot.LastName,
		ManagerId: pointerToStringValue(snapshot.ManagerID),
	}
}

func datePointerToStringValue(value *time.Time) *wrapperspb.StringValue {
	if value == nil {
		return nil
	}
	return wrapperspb.String(value.Format(dateLayout))
}

func parseOptionalDate(value *wrapperspb.StringValue) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(value.GetValue())
	if trimmed == "" {
		return nil, nil
	}
	t, err := parseDate(trimmed)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
