package talent

import (
	"context"

	userDomain "jobboard-api/internal/domain/user"
)

// Candidate rows are keyed by the owning user id; talent_profiles has
// no surrogate key of its own.
type Candidate struct {
	UserID userDomain.ID
	Path   string
}

type Repository interface {
	FetchProfile(ctx context.Context, userID userDomain.ID) (*Profile, error)
	UpsertResumePath(ctx context.Context, userID userDomain.ID, path string) (*Profile, error)

	FetchResumeCandidates(ctx context.Context) ([]Candidate, error)
	UpdateCandidateResumePath(ctx context.Context, userID userDomain.ID, path string) error
}
