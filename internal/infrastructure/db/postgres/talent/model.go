package talent

import (
	"time"
)

type (
	Profile struct {
		UserID     uint64
		Headline   string
		ResumePath string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Profiles []*Profile
)
