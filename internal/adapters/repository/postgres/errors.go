package postgres

import (
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/companyvote/api/internal/core/domain"
)

const uniqueViolation = "23505"

// mapVoteInsertError classifies a unique-constraint violation by the
// conflicting column. When the driver reports the violation without a
// recognizable constraint name, the generic duplicate error is returned.
func mapVoteInsertError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return err
	}

	switch {
	case strings.Contains(pqErr.Constraint, "email"):
		return domain.ErrDuplicateEmail
	case strings.Contains(pqErr.Constraint, "phone"):
		return domain.ErrDuplicatePhone
	default:
		return domain.ErrAlreadyVoted
	}
}

func mapCompanyInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrCompanyNameTaken
	}
	return err
}
