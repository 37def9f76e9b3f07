package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) Insert(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	query := `
		INSERT INTO votes (voter_name, email, phone, company_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, voter_name, email, phone, company_id, created_at
	`
	var saved domain.Vote
	err := r.db.QueryRowContext(ctx, query, vote.VoterName, vote.Email, vote.Phone, vote.CompanyID).Scan(
		&saved.ID, &saved.VoterName, &saved.Email, &saved.Phone, &saved.CompanyID, &saved.CreatedAt,
	)
	if err != nil {
		if mapped := mapVoteInsertError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}
	return &saved, nil
}

func (r *voteRepository) ListWithCompany(ctx context.Context) ([]domain.VoteWithCompany, error) {
	query := `
		SELECT v.id, v.voter_name, v.email, v.phone, v.company_id, v.created_at, c.name
		FROM votes v
		JOIN companies c ON c.id = v.company_id
		ORDER BY v.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	votes := []domain.VoteWithCompany{}
	for rows.Next() {
		var row domain.VoteWithCompany
		if err := rows.Scan(
			&row.ID, &row.VoterName, &row.Email, &row.Phone, &row.CompanyID, &row.CreatedAt, &row.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		votes = append(votes, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}
