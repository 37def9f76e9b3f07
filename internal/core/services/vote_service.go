package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

// Deliberately loose: local part, an @, a domain with at least one dot.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const notifyTimeout = 15 * time.Second

type voteService struct {
	companyRepo ports.CompanyRepository
	voteRepo    ports.VoteRepository
	notifier    ports.VoteNotifier
}

func NewVoteService(companyRepo ports.CompanyRepository, voteRepo ports.VoteRepository, notifier ports.VoteNotifier) ports.VoteService {
	return &voteService{
		companyRepo: companyRepo,
		voteRepo:    voteRepo,
		notifier:    notifier,
	}
}

func (s *voteService) Submit(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)

	if name == "" || email == "" || phone == "" || input.CompanyID == 0 {
		return nil, domain.ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	company, err := s.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return nil, domain.ErrInvalidCompany
		}
		return nil, err
	}
	if !company.Active {
		return nil, domain.ErrInvalidCompany
	}

	// No pre-check for an existing vote here: the store's unique
	// constraints on email and phone arbitrate concurrent submissions.
	vote := &domain.Vote{
		VoterName: name,
		Email:     email,
		Phone:     phone,
		CompanyID: company.ID,
	}
	saved, err := s.voteRepo.Insert(ctx, vote)
	if err != nil {
		return nil, err
	}

	s.dispatchNotification(saved, company)

	return saved, nil
}

// dispatchNotification forwards the vote to the webhook on its own
// goroutine with a detached context; the HTTP response never waits on it
// and delivery failures are only logged.
func (s *voteService) dispatchNotification(vote *domain.Vote, company *domain.Company) {
	notification := domain.VoteNotification{
		VoteID:      vote.ID,
		VoterName:   vote.VoterName,
		Email:       vote.Email,
		Phone:       vote.Phone,
		CompanyName: company.Name,
	}
	if company.Website != nil {
		notification.CompanyWebsite = *company.Website
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyVoteCast(ctx, notification); err != nil {
			log.Printf("vote notification failed for vote %d: %v", notification.VoteID, err)
		}
	}()
}

func (s *voteService) ListAll(ctx context.Context) ([]domain.VoteWithCompany, error) {
	return s.voteRepo.ListWithCompany(ctx)
}
