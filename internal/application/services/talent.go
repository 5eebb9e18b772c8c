package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"jobboard-api/internal/application/ports"
	domain "jobboard-api/internal/domain/talent"
	userDomain "jobboard-api/internal/domain/user"
	"jobboard-api/internal/infrastructure/mq"
)

type TalentService struct {
	talentRepository domain.Repository
	userRepository   userDomain.Repository
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

func NewTalentService(
	talentRepository domain.Repository,
	userRepository userDomain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.TalentService {
	return &TalentService{
		talentRepository: talentRepository,
		userRepository:   userRepository,
		mq:               rabbit,
		mCounter:         mCounter,
	}
}

func (ts *TalentService) FindProfile(ctx context.Context, userUUID userDomain.UUID) (*domain.Profile, error) {
	id, err := ts.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return ts.talentRepository.FetchProfile(ctx, id)
}

func (ts *TalentService) AttachResume(ctx context.Context, userUUID userDomain.UUID, path string) (*domain.Profile, error) {
	id, err := ts.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	p, err := ts.talentRepository.UpsertResumePath(ctx, id, path)
	if err != nil {
		return nil, err
	}

	ts.mq.GetInputChan() <- mq.Event{
		Id:         uuid.New(),
		TS:         time.Now(),
		Action:     mq.ActionResumeStored,
		EntityUUID: userUUID.String(),
		Kind:       "resume",
		Path:       path,
	}

	ts.mCounter.WithLabelValues("resume_attached_total").Inc()

	return p, nil
}
