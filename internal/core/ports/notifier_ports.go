package ports

import (
	"context"

	"github.com/companyvote/api/internal/core/domain"
)

// VoteNotifier forwards a successful vote to an external channel. Callers
// dispatch it off the request path; an error only means the delivery
// failed, never that the vote did.
type VoteNotifier interface {
	NotifyVoteCast(ctx context.Context, n domain.VoteNotification) error
}
