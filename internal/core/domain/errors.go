package domain

import "errors"

var (
	ErrMissingFields       = errors.New("missing fields")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidCompany      = errors.New("invalid company selection")
	ErrDuplicateEmail      = errors.New("this email has already voted")
	ErrDuplicatePhone      = errors.New("this phone has already voted")
	ErrAlreadyVoted        = errors.New("already voted")
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrCompanyNameTaken    = errors.New("company name already exists")
	ErrCompanyNotFound     = errors.New("company not found")
)
