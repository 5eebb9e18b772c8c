package ports

import (
	"context"

	"jobboard-api/internal/domain/company"
)

type CompanyService interface {
	CreateCompany(ctx context.Context, name, website string) (*company.Company, error)
	FindCompanyBySlug(ctx context.Context, slug string) (*company.Company, error)
	AttachLogo(ctx context.Context, uuid company.UUID, path string) error
}
