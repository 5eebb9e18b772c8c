package company

import (
	"time"

	"github.com/google/uuid"
)

type (
	Company struct {
		ID   uint64
		UUID uuid.UUID

		Name     string
		Slug     string
		Website  string
		LogoPath string

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Companies []*Company
)
