package ports

import (
	"context"

	"github.com/companyvote/api/internal/core/domain"
)

type VoteRepository interface {
	// Insert persists the vote and returns it with its generated id. The
	// store's unique constraints are the sole duplicate gate; violations
	// surface as domain.ErrDuplicateEmail, domain.ErrDuplicatePhone or
	// domain.ErrAlreadyVoted.
	Insert(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	ListWithCompany(ctx context.Context) ([]domain.VoteWithCompany, error)
}

type SubmitVoteInput struct {
	Name      string
	Email     string
	Phone     string
	CompanyID int64
}

type VoteService interface {
	Submit(ctx context.Context, input SubmitVoteInput) (*domain.Vote, error)
	ListAll(ctx context.Context) ([]domain.VoteWithCompany, error)
}
