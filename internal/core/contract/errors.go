package contract

import "errors"

var (
	ErrInvalidID              = errors.New("contract: invalid id")
	ErrInvalidPersonID        = errors.New("contract: invalid person id")
	ErrInvalidJobTitle        = errors.New("contract: invalid job title")
	ErrInvalidContractStart   = errors.New("contract: contract start is required")
	ErrInvalidDateRange       = errors.New("contract: contract end must be after contract start")
	ErrHourlyRateTooLow       = errors.New("contract: hourly rate is below the minimum")
	ErrInvalidContractedHours = errors.New("contract: contracted hours must be between 0 and 168")
	ErrInvalidPageSize        = errors.New("contract: invalid page size")
	ErrInvalidPageToken       = errors.New("contract: invalid page token")
	ErrContractNotFound       = errors.New("contract: not found")
	ErrPersonNotFound         = errors.New("contract: person not found")
	ErrAccessDenied           = errors.New("contract: access denied")
)
