package talent

import (
	domain "jobboard-api/internal/domain/talent"
	userDomain "jobboard-api/internal/domain/user"
)

func fromDBModel(model *Profile) *domain.Profile {
	var p = &domain.Profile{
		UserID:     userDomain.ID(model.UserID),
		Headline:   model.Headline,
		ResumePath: model.ResumePath,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return p
}
