package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"jobboard-api/internal/application/ports"
	domain "jobboard-api/internal/domain/company"
	"jobboard-api/internal/infrastructure/mq"
)

// The slug probe loop is bounded so a broken uniqueness check cannot
// spin forever; see UniqueSlug.
const maxSlugAttempts = 1000

const pgUniqueViolation = "23505"

var (
	ErrSlugExhausted = errors.New("exhausted slug suffixes")
	ErrCompanyExists = errors.New("company slug already taken")
	ErrCompanyNoName = errors.New("company name is required")
)

type CompanyService struct {
	companyRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewCompanyService(
	companyRepository domain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.CompanyService {
	return &CompanyService{
		companyRepository: companyRepository,
		mq:                rabbit,
		mCounter:          mCounter,
	}
}

func (cs *CompanyService) CreateCompany(ctx context.Context, name, website string) (*domain.Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrCompanyNoName
	}

	slug, err := cs.UniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	c, err := cs.companyRepository.CreateCompany(ctx, domain.Company{
		Name:    strings.TrimSpace(name),
		Slug:    slug,
		Website: website,
	})
	if err != nil {
		// A concurrent caller can win the slug between the probe and
		// the insert; surface that as a conflict, not a 500.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrCompanyExists
		}
		return nil, err
	}

	cs.mq.GetInputChan() <- mq.Event{
		Id:         uuid.New(),
		TS:         time.Now(),
		Action:     mq.ActionCompanyCreated,
		EntityUUID: c.UUID.String(),
	}

	cs.mCounter.WithLabelValues("company_created_total").Inc()

	return c, nil
}

func (cs *CompanyService) FindCompanyBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	return cs.companyRepository.FetchCompanyBySlug(ctx, slug)
}

func (cs *CompanyService) AttachLogo(ctx context.Context, companyUUID domain.UUID, path string) error {
	if err := cs.companyRepository.UpdateLogoPath(ctx, companyUUID, path); err != nil {
		return err
	}

	cs.mq.GetInputChan() <- mq.Event{
		Id:         uuid.New(),
		TS:         time.Now(),
		Action:     mq.ActionUploadStored,
		EntityUUID: companyUUID.String(),
		Kind:       "logo",
		Path:       path,
	}

	cs.mCounter.WithLabelValues("logo_attached_total").Inc()

	return nil
}

// UniqueSlug derives a URL-safe slug from the company name and probes
// the store until a free one is found, appending -1, -2, ... The lookup
// has read-only semantics; persisting the slug is the caller's job.
func (cs *CompanyService) UniqueSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	if base == "" {
		base = fmt.Sprintf("company-%d", time.Now().UnixMilli())
	}

	slug := base
	for n := 1; n <= maxSlugAttempts; n++ {
		_, err := cs.companyRepository.FetchCompanyBySlug(ctx, slug)
		if errors.Is(err, pgx.ErrNoRows) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}

	return "", ErrSlugExhausted
}

// slugify lower-cases the name, strips accents and collapses every run
// of characters outside [a-z0-9] into a single hyphen.
func slugify(name string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ := transform.String(t, strings.TrimSpace(name))
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
