package domain

import "time"

type Vote struct {
	ID        int64     `json:"id"`
	VoterName string    `json:"voterName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CompanyID int64     `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}

// VoteWithCompany is the admin vote listing row.
type VoteWithCompany struct {
	Vote
	CompanyName string `json:"companyName"`
}

// VoteNotification is the payload forwarded to the webhook after a
// successful submission.
type VoteNotification struct {
	VoteID         int64  `json:"voteId"`
	VoterName      string `json:"voterName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CompanyName    string `json:"companyName"`
	CompanyWebsite string `json:"companyWebsite,omitempty"`
}
