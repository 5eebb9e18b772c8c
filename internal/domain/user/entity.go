package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		Email        string
		PasswordHash *string
		Role         string
		Name         string
		// AvatarPath is a staging reference (/uploads/avatars/...) or a
		// canonical object reference after migration.
		AvatarPath string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)
