package user

import (
	"context"
)

type Candidate struct {
	ID   ID
	Path string
}

type Repository interface {
	FetchUserByUUID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)

	FetchAvatarCandidates(ctx context.Context) ([]Candidate, error)
	UpdateCandidateAvatarPath(ctx context.Context, id ID, path string) error
}
