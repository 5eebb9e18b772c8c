package ports

import (
	"context"

	"jobboard-api/internal/domain/talent"
	"jobboard-api/internal/domain/user"
)

type TalentService interface {
	AttachResume(ctx context.Context, userUUID user.UUID, path string) (*talent.Profile, error)
	FindProfile(ctx context.Context, userUUID user.UUID) (*talent.Profile, error)
}
