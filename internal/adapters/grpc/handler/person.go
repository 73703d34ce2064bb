package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	personpb "github.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/person/v1"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/ogurasousui/team-tracker/internal/core/person"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const dateLayout = "2006-01-02"

// PersonGrpcHandler は PersonService の gRPC 実装です。
type PersonGrpcHandler struct {
	svc person.UseCase
	personpb.UnimplementedPersonServiceServer
}

// NewPersonGrpcHandler は PersonGrpcHandler を生成します。
func NewPersonGrpcHandler(svc person.UseCase) *PersonGrpcHandler {
	return &PersonGrpcHandler{svc: svc}
}

// CreatePerson は従業員を作成します。
func (h *PersonGrpcHandler) CreatePerson(ctx context.Context, req *personpb.CreatePersonRequest) (*personpb.CreatePersonResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	dob, err := parseDate(req.GetDateOfBirth())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("date_of_birth: %v", err))
	}

	created, err := h.svc.CreatePerson(ctx, ident, person.CreatePersonInput{
		FirstName:   req.GetFirstName(),
		LastName:    req.GetLastName(),
		Email:       req.GetEmail(),
		PhoneNumber: req.GetPhoneNumber(),
		DateOfBirth: dob,
		Role:        toDomainRole(req.GetRole()),
		ManagerID:   stringValueToPointer(req.ManagerId),
		UserID:      stringValueToPointer(req.UserId),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &personpb.CreatePersonResponse{Person: toProtoPerson(created)}, nil
}

// UpdatePerson は従業員情報を更新します。
func (h *PersonGrpcHandler) UpdatePerson(ctx context.Context, req *personpb.UpdatePersonRequest) (*personpb.UpdatePersonResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	in := person.UpdatePersonInput{
		ID:          req.GetId(),
		FirstName:   stringValueToPointer(req.FirstName),
		LastName:    stringValueToPointer(req.LastName),
		Email:       stringValueToPointer(req.Email),
		PhoneNumber: stringValueToPointer(req.PhoneNumber),
	}

	if req.DateOfBirth != nil {
		dob, err := parseDate(req.DateOfBirth.GetValue())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("date_of_birth: %v", err))
		}
		in.DateOfBirth = &dob
	}

	if req.GetRole() != personpb.PersonRole_PERSON_ROLE_UNSPECIFIED {
		role := toDomainRole(req.GetRole())
		in.Role = &role
	}

	// 空文字のラッパーは紐付け解除を意味します。
	if req.ManagerId != nil {
		in.ManagerIDSet = true
		if value := strings.TrimSpace(req.ManagerId.GetValue()); value != "" {
			in.ManagerID = &value
		}
	}
	if req.UserId != nil {
		in.UserIDSet = true
		if value := strings.TrimSpace(req.UserId.GetValue()); value != "" {
			in.UserID = &value
		}
	}

	updated, err := h.svc.UpdatePerson(ctx, ident, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &personpb.UpdatePersonResponse{Person: toProtoPerson(updated)}, nil
}

// DeletePerson は従業員を削除します。
func (h *PersonGrpcHandler) DeletePerson(ctx context.Context, req *personpb.DeletePersonRequest) (*personpb.DeletePersonResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.svc.DeletePerson(ctx, ident, person.DeletePersonInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &personpb.DeletePersonResponse{}, nil
}

// GetPerson は従業員を取得します。
func (h *PersonGrpcHandler) GetPerson(ctx context.Context, req *personpb.GetPersonRequest) (*personpb.GetPersonResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetPerson(ctx, ident, person.GetPersonInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &personpb.GetPersonResponse{Person: toProtoPerson(found)}, nil
}

// GetOwnPerson はアクター自身の従業員情報を取得します。
func (h *PersonGrpcHandler) GetOwnPerson(ctx context.Context, _ *personpb.GetOwnPersonRequest) (*personpb.GetOwnPersonResponse, error) {
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetOwnPerson(ctx, ident)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &personpb.GetOwnPersonResponse{Person: toProtoPerson(found)}, nil
}

// ListPersons は従業員の一覧を取得します。
func (h *PersonGrpcHandler) ListPersons(ctx context.Context, req *personpb.ListPersonsRequest) (*personpb.ListPersonsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.ListPersons(ctx, ident, person.ListPersonsInput{
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoPersons := make([]*personpb.Person, 0, len(result.Persons))
	for _, p := range result.Persons {
		protoPersons = append(protoPersons, toProtoPerson(p))
	}

	return &personpb.ListPersonsResponse{
		Persons:       protoPersons,
		NextPageToken: result.NextPageToken,
	}, nil
}

// AttachResume は従業員に履歴書 PDF を添付します。
func (h *PersonGrpcHandler) AttachResume(ctx context.Context, req *personpb.AttachResumeRequest) (*personpb.AttachResumeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ident, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := h.svc.AttachResume(ctx, ident, person.AttachResumeInput{
		PersonID: req.GetPersonId(),
		Filename: req.GetFileName(),
		Content:  req.GetContent(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &personpb.AttachResumeResponse{Person: toProtoPerson(updated)}, nil
}

func toProtoPerson(p *person.Person) *personpb.Person {
	if p == nil {
		return nil
	}

	return &personpb.Person{
		Id:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		DateOfBirth: p.DateOfBirth.Format(dateLayout),
		Role:        toProtoRole(p.Role),
		Active:      p.Active,
		ManagerId:   pointerToStringValue(p.ManagerID),
		UserId:      pointerToStringValue(p.UserID),
		ResumePath:  pointerToStringValue(p.ResumePath),
		CreatedAt:   timestamppb.New(p.CreatedAt),
		UpdatedAt:   timestamppb.New(p.UpdatedAt),
	}
}

func toProtoRole(role identity.Role) personpb.PersonRole {
	switch role {
	case identity.RoleEmployee:
		return personpb.PersonRole_PERSON_ROLE_EMPLOYEE
	case identity.RoleManager:
		return personpb.PersonRole_PERSON_ROLE_MANAGER
	case identity.RoleHRAdmin:
		return personpb.PersonRole_PERSON_ROLE_HR_ADMIN
	default:
		return personpb.PersonRole_PERSON_ROLE_UNSPECIFIED
	}
}

func toDomainRole(role personpb.PersonRole) identity.Role {
	switch role {
	case personpb.PersonRole_PERSON_ROLE_EMPLOYEE:
		return identity.RoleEmployee
	case personpb.PersonRole_PERSON_ROLE_MANAGER:
		return identity.RoleManager
	case personpb.PersonRole_PERSON_ROLE_HR_ADMIN:
		return identity.RoleHRAdmin
	default:
		return identity.Role("")
	}
}

func stringValueToPointer(value *wrapperspb.StringValue) *string {
	if value == nil {
		return nil
	}
	v := value.GetValue()
	return &v
}

func pointerToStringValue(value *string) *wrapperspb.StringValue {
	if value == nil {
		return nil
	}
	return wrapperspb.String(*value)
}

func parseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	t, err := time.ParseInLocation(dateLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid format, expected YYYY-MM-DD")
	}
	return t, nil
}
