package company

import (
	"context"
)

// Candidate is a row whose logo still lives on local staging storage
// and is eligible for migration to the durable store.
type Candidate struct {
	ID   ID
	Path string
}

type Repository interface {
	FetchCompanyByUUID(ctx context.Context, uuid UUID) (*Company, error)
	FetchCompanyBySlug(ctx context.Context, slug string) (*Company, error)
	CreateCompany(ctx context.Context, req Company) (*Company, error)
	UpdateLogoPath(ctx context.Context, uuid UUID, path string) error

	FetchLogoCandidates(ctx context.Context) ([]Candidate, error)
	UpdateCandidateLogoPath(ctx context.Context, id ID, path string) error
}
