package company

import (
	"context"

	domain "jobboard-api/internal/domain/company"
	"jobboard-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchCompanyByUUID(ctx context.Context, uuid domain.UUID) (*domain.Company, error) {
	return r.fetchOne(ctx, SelectCompanyByUUID, uuid)
}

func (r *Repository) FetchCompanyBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	return r.fetchOne(ctx, SelectCompanyBySlug, slug)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.Company, error) {
	c := new(Company)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID,
		&c.UUID,
		&c.Name,
		&c.Slug,
		&c.Website,
		&c.LogoPath,

		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) CreateCompany(ctx context.Context, req domain.Company) (*domain.Company, error) {
	c := new(Company)

	err := r.db.QueryRow(
		ctx,
		InsertCompany,
		req.Name, req.Slug, req.Website, req.LogoPath,
	).Scan(
		&c.ID,
		&c.UUID,
		&c.Name,
		&c.Slug,
		&c.Website,
		&c.LogoPath,

		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) UpdateLogoPath(ctx context.Context, uuid domain.UUID, path string) error {
	_, err := r.db.Exec(ctx, UpdateLogoPathByUUID, path, uuid)
	return err
}

func (r *Repository) FetchLogoCandidates(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.db.Query(ctx, SelectLogoCandidates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cands []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err = rows.Scan(&c.ID, &c.Path); err != nil {
			return nil, err
		}
		cands = append(cands, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cands, nil
}

func (r *Repository) UpdateCandidateLogoPath(ctx context.Context, id domain.ID, path string) error {
	_, err := r.db.Exec(ctx, UpdateLogoPathByID, path, id)
	return err
}
