package company

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	// Company is an employer profile. LogoPath is either a staging
	// reference (/uploads/logos/...) or, after migration, a canonical
	// object reference (/objects/logos/<id><ext>).
	Company struct {
		UUID     UUID
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
