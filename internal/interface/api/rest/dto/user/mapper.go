package user

import (
	domain "jobboard-api/internal/domain/user"
)

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		UUID:       uDomain.UUID,
		Email:      uDomain.Email,
		Role:       uDomain.Role,
		Name:       uDomain.Name,
		AvatarPath: uDomain.AvatarPath,
		CreatedAt:  uDomain.CreatedAt,
	}

	return u
}
