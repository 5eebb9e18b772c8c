package company

import (
	domain "jobboard-api/internal/domain/company"
)

func ToResponseCompany(cDomain domain.Company) Company {
	var c = Company{
		UUID:      cDomain.UUID,
		Name:      cDomain.Name,
		Slug:      cDomain.Slug,
		Website:   cDomain.Website,
		LogoPath:  cDomain.LogoPath,
		CreatedAt: cDomain.CreatedAt,
	}

	return c
}
