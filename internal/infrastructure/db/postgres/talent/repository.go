package talent

import (
	"context"

	domain "jobboard-api/internal/domain/talent"
	userDomain "jobboard-api/internal/domain/user"
	"jobboard-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchProfile(ctx context.Context, userID userDomain.ID) (*domain.Profile, error) {
	p := new(Profile)

	err := r.db.QueryRow(ctx, SelectProfileByUserID, userID).Scan(
		&p.UserID,
		&p.Headline,
		&p.ResumePath,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) UpsertResumePath(ctx context.Context, userID userDomain.ID, path string) (*domain.Profile, error) {
	p := new(Profile)

	err := r.db.QueryRow(ctx, UpsertResumePath, userID, path).Scan(
		&p.UserID,
		&p.Headline,
		&p.ResumePath,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchResumeCandidates(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.db.Query(ctx, SelectResumeCandidates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cands []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err = rows.Scan(&c.UserID, &c.Path); err != nil {
			return nil, err
		}
		cands = append(cands, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cands, nil
}

func (r *Repository) UpdateCandidateResumePath(ctx context.Context, userID userDomain.ID, path string) error {
	_, err := r.db.Exec(ctx, UpdateResumePathByUserID, path, userID)
	return err
}
