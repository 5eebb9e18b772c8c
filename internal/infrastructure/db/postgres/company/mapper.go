package company

import (
	domain "jobboard-api/internal/domain/company"
)

func fromDBModel(model *Company) *domain.Company {
	var c = &domain.Company{
		UUID:     model.UUID,
		Name:     model.Name,
		Slug:     model.Slug,
		Website:  model.Website,
		LogoPath: model.LogoPath,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}

	return c
}
