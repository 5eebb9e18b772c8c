package talent

import (
	"time"

	userDomain "jobboard-api/internal/domain/user"
)

type (
	// Profile is a talent (job seeker) profile, keyed by the owning
	// user's internal id. ResumePath follows the same staging/canonical
	// reference convention as company logos and user avatars.
	Profile struct {
		UserID     userDomain.ID
		Headline   string
		ResumePath string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Profiles []*Profile
)
