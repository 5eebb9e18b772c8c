package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	talentDomain "jobboard-api/internal/domain/talent"
	userDomain "jobboard-api/internal/domain/user"
	"jobboard-api/internal/infrastructure/mq"
)

func TestTalentService_AttachResume(t *testing.T) {
	userUUID := uuid.New()
	users := &FakeUserRepo{
		FetchInternalIDFunc: func(ctx context.Context, u userDomain.UUID) (userDomain.ID, error) {
			assert.Equal(t, userUUID, u)
			return 42, nil
		},
	}
	talents := &FakeTalentRepo{
		UpsertResumePathFunc: func(ctx context.Context, userID userDomain.ID, path string) (*talentDomain.Profile, error) {
			assert.Equal(t, userDomain.ID(42), userID)
			return &talentDomain.Profile{UserID: userID, ResumePath: path}, nil
		},
	}

	rb := NewFakeRabbit()
	ts := &TalentService{
		talentRepository: talents,
		userRepository:   users,
		mq:               rb,
		mCounter:         testCounter(),
	}

	ref := "/uploads/resumes/1700000000000-cccccccccccccccc.pdf"
	p, err := ts.AttachResume(context.Background(), userUUID, ref)
	require.NoError(t, err)
	assert.Equal(t, ref, p.ResumePath)

	select {
	case ev := <-rb.ch:
		assert.Equal(t, mq.ActionResumeStored, ev.Action)
		assert.Equal(t, "resume", ev.Kind)
		assert.Equal(t, ref, ev.Path)
	default:
		t.Fatal("expected a resume.stored event")
	}
}
