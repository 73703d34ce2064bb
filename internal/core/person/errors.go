package person

import "errors"

var (
	ErrInvalidID          = errors.New("person: invalid id")
	ErrInvalidFirstName   = errors.New("person: invalid first name")
	ErrInvalidLastName    = errors.New("person: invalid last name")
	ErrInvalidEmail       = errors.New("person: invalid email")
	ErrInvalidPhoneNumber = errors.New("person: invalid phone number")
	ErrInvalidDateOfBirth = errors.New("person: invalid date of birth")
	ErrUnderage           = errors.New("person: must be at least 18 years old")
	ErrInvalidRole        = errors.New("person: invalid role")
	ErrManagerNotEligible = errors.New("person: manager must have role manager or hr_admin")
	ErrManagerNotFound    = errors.New("person: manager not found")
	ErrInvalidPageSize    = errors.New("person: invalid page size")
	ErrInvalidPageToken   = errors.New("person: invalid page token")
	ErrInvalidResumeFile  = errors.New("person: resume must be a pdf file")
	ErrResumeTooLarge     = errors.New("person: resume exceeds the size limit")
	ErrPersonNotFound     = errors.New("person: not found")
	ErrEmailAlreadyExists = errors.New("person: email already exists")
	ErrAccessDenied       = errors.New("person: access denied")
)
