package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/team-tracker/internal/core/audit"
	"github.com/ogurasousui/team-tracker/internal/core/contract"
	"github.com/ogurasousui/team-tracker/internal/core/identity"
	"github.com/ogurasousui/team-tracker/internal/core/person"
	"github.com/ogurasousui/team-tracker/internal/core/task"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// identityFromContext は認証インターセプターが解決した Identity を取り出します。
func identityFromContext(ctx context.Context) (identity.Identity, error) {
	ident, ok := identity.FromContext(ctx)
	if !ok {
		return identity.Identity{}, status.Error(codes.Unauthenticated, "identity is required")
	}
	return ident, nil
}

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, person.ErrAccessDenied),
		errors.Is(err, contract.ErrAccessDenied),
		errors.Is(err, task.ErrAccessDenied),
		errors.Is(err, audit.ErrAccessDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, person.ErrInvalidID),
		errors.Is(err, person.ErrInvalidFirstName),
		errors.Is(err, person.ErrInvalidLastName),
		errors.Is(err, person.ErrInvalidEmail),
		errors.Is(err, person.ErrInvalidPhoneNumber),
		errors.Is(err, person.ErrInvalidDateOfBirth),
		errors.Is(err, person.ErrUnderage),
		errors.Is(err, person.ErrInvalidRole),
		errors.Is(err, person.ErrManagerNotFound),
		errors.Is(err, person.ErrManagerNotEligible),
		errors.Is(err, person.ErrInvalidResumeFile),
		errors.Is(err, person.ErrResumeTooLarge),
		errors.Is(err, person.ErrInvalidPageSize),
		errors.Is(err, person.ErrInvalidPageToken),
		errors.Is(err, contract.ErrInvalidID),
		errors.Is(err, contract.ErrInvalidPersonID),
		errors.Is(err, contract.ErrInvalidJobTitle),
		errors.Is(err, contract.ErrInvalidContractStart),
		errors.Is(err, contract.ErrInvalidDateRange),
		errors.Is(err, contract.ErrHourlyRateTooLow),
		errors.Is(err, contract.ErrInvalidContractedHours),
		errors.Is(err, contract.ErrInvalidPageSize),
		errors.Is(err, contract.ErrInvalidPageToken),
		errors.Is(err, task.ErrInvalidID),
		errors.Is(err, task.ErrInvalidTitle),
		errors.Is(err, task.ErrInvalidDescription),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrDueDateInPast),
		errors.Is(err, task.ErrAssigneeRequired),
		errors.Is(err, task.ErrInvalidPageSize),
		errors.Is(err, task.ErrInvalidPageToken):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, person.ErrEmailAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, person.ErrPersonNotFound),
		errors.Is(err, contract.ErrContractNotFound),
		errors.Is(err, contract.ErrPersonNotFound),
		errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, task.ErrAssigneeNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
