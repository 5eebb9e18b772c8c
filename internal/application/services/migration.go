package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobboard-api/internal/application/ports"
	companyDomain "jobboard-api/internal/domain/company"
	talentDomain "jobboard-api/internal/domain/talent"
	userDomain "jobboard-api/internal/domain/user"
	"jobboard-api/internal/infrastructure/db/postgres"
)

// Object ids are derived from the owning row, not freshly generated, so
// a retry after a crash between upload and row update overwrites the
// same object instead of minting an orphan.
var migrationNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// DefaultCandidateTimeout bounds each candidate's read/upload/update; a
// stuck store call becomes a per-candidate failure, not a hung batch.
const DefaultCandidateTimeout = 2 * time.Minute

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Report aggregates one migration pass. A zero-candidate run is a
// successful no-op.
type Report struct {
	Migrated int
	Skipped  int
	Failed   int
}

func (r *Report) merge(o Report) {
	r.Migrated += o.Migrated
	r.Skipped += o.Skipped
	r.Failed += o.Failed
}

// candidate is one row still pointing at staging storage, normalized
// across the three owning-entity kinds.
type candidate struct {
	rowKey string
	path   string
	update func(ctx context.Context, canonical string) error
}

type Migrator struct {
	logger *zap.Logger
	// lockDB must be a single dedicated connection, held for the whole
	// run; see postgres.AcquireMigrationLock.
	lockDB    postgres.Querier
	store     ports.ObjectStore
	companies companyDomain.Repository
	users     userDomain.Repository
	talents   talentDomain.Repository

	stagingRoot      string
	candidateTimeout time.Duration
}

func NewMigrator(
	logger *zap.Logger,
	lockDB postgres.Querier,
	store ports.ObjectStore,
	companies companyDomain.Repository,
	users userDomain.Repository,
	talents talentDomain.Repository,
	stagingRoot string,
) *Migrator {
	return &Migrator{
		logger:           logger,
		lockDB:           lockDB,
		store:            store,
		companies:        companies,
		users:            users,
		talents:          talents,
		stagingRoot:      stagingRoot,
		candidateTimeout: DefaultCandidateTimeout,
	}
}

// Run sweeps companies, users and talent profiles for staging
// references, uploads each referenced file to the durable store and
// rewrites the reference column to its canonical form. Candidates are
// processed independently: one failure never aborts the batch.
// Candidate selection is re-derived from row state, so re-running after
// a crash (or on an already-migrated database) is safe and cheap.
func (m *Migrator) Run(ctx context.Context) (Report, error) {
	var report Report

	if err := postgres.AcquireMigrationLock(ctx, m.lockDB); err != nil {
		return report, err
	}
	defer func() {
		if err := postgres.ReleaseMigrationLock(context.WithoutCancel(ctx), m.lockDB); err != nil {
			m.logger.Warn("release migration lock", zap.Error(err))
		}
	}()

	kinds := []struct {
		name   string
		gather func(context.Context) ([]candidate, error)
	}{
		{"logo", m.logoCandidates},
		{"avatar", m.avatarCandidates},
		{"resume", m.resumeCandidates},
	}

	for _, k := range kinds {
		cands, err := k.gather(ctx)
		if err != nil {
			return report, fmt.Errorf("select %s candidates: %w", k.name, err)
		}

		var kr Report
		for _, c := range cands {
			switch m.migrateOne(ctx, k.name, c) {
			case stateMigrated:
				kr.Migrated++
			case stateSkipped:
				kr.Skipped++
			case stateFailed:
				kr.Failed++
			}
		}

		m.logger.Info("kind done",
			zap.String("kind", k.name),
			zap.Int("migrated", kr.Migrated),
			zap.Int("skipped", kr.Skipped),
			zap.Int("failed", kr.Failed),
		)
		report.merge(kr)
	}

	return report, nil
}

type migrateState int

const (
	stateMigrated migrateState = iota
	stateSkipped
	stateFailed
)

func (m *Migrator) migrateOne(ctx context.Context, kind string, c candidate) migrateState {
	ctx, cancel := context.WithTimeout(ctx, m.candidateTimeout)
	defer cancel()

	local := filepath.Join(m.stagingRoot, filepath.FromSlash(strings.TrimPrefix(c.path, "/")))

	info, err := os.Stat(local)
	if errors.Is(err, fs.ErrNotExist) {
		// The row references a file that never landed or was cleaned up
		// by hand. Not an error; the row keeps its staging reference.
		m.logger.Warn("staging file missing, skipping",
			zap.String("row", c.rowKey),
			zap.String("path", local),
		)
		return stateSkipped
	}
	if err != nil {
		m.logger.Error("stat staging file", zap.String("row", c.rowKey), zap.Error(err))
		return stateFailed
	}

	f, err := os.Open(local)
	if err != nil {
		m.logger.Error("open staging file", zap.String("row", c.rowKey), zap.Error(err))
		return stateFailed
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(c.path))
	objectID := uuid.NewSHA1(migrationNamespace, []byte(kind+":"+c.rowKey))
	key := fmt.Sprintf(".private/%ss/%s%s", kind, objectID, ext)

	contentType, ok := contentTypes[ext]
	if !ok {
		contentType = "application/octet-stream"
	}

	err = m.store.Put(ctx, key, f, info.Size(), contentType, map[string]string{
		"original-name": filepath.Base(c.path),
		"uploaded-at":   time.Now().UTC().Format(time.RFC3339),
		"source-path":   local,
	})
	if err != nil {
		m.logger.Error("upload to store", zap.String("row", c.rowKey), zap.Error(err))
		return stateFailed
	}

	// The reference swap is a single-row update, deliberately outside
	// any shared transaction with the upload above; see Run.
	canonical := fmt.Sprintf("/objects/%ss/%s%s", kind, objectID, ext)
	if err = c.update(ctx, canonical); err != nil {
		m.logger.Error("update reference", zap.String("row", c.rowKey), zap.Error(err))
		return stateFailed
	}

	m.logger.Info("migrated",
		zap.String("row", c.rowKey),
		zap.String("from", c.path),
		zap.String("to", canonical),
	)
	return stateMigrated
}

func (m *Migrator) logoCandidates(ctx context.Context) ([]candidate, error) {
	rows, err := m.companies.FetchLogoCandidates(ctx)
	if err != nil {
		return nil, err
	}

	cands := make([]candidate, 0, len(rows))
	for _, row := range rows {
		id := row.ID
		cands = append(cands, candidate{
			rowKey: fmt.Sprintf("company:%d", id),
			path:   row.Path,
			update: func(ctx context.Context, canonical string) error {
				return m.companies.UpdateCandidateLogoPath(ctx, id, canonical)
			},
		})
	}
	return cands, nil
}

func (m *Migrator) avatarCandidates(ctx context.Context) ([]candidate, error) {
	rows, err := m.users.FetchAvatarCandidates(ctx)
	if err != nil {
		return nil, err
	}

	cands := make([]candidate, 0, len(rows))
	for _, row := range rows {
		id := row.ID
		cands = append(cands, candidate{
			rowKey: fmt.Sprintf("user:%d", id),
			path:   row.Path,
			update: func(ctx context.Context, canonical string) error {
				return m.users.UpdateCandidateAvatarPath(ctx, id, canonical)
			},
		})
	}
	return cands, nil
}

func (m *Migrator) resumeCandidates(ctx context.Context) ([]candidate, error) {
	rows, err := m.talents.FetchResumeCandidates(ctx)
	if err != nil {
		return nil, err
	}

	cands := make([]candidate, 0, len(rows))
	for _, row := range rows {
		id := row.UserID
		cands = append(cands, candidate{
			rowKey: fmt.Sprintf("talent:%d", id),
			path:   row.Path,
			update: func(ctx context.Context, canonical string) error {
				return m.talents.UpdateCandidateResumePath(ctx, id, canonical)
			},
		})
	}
	return cands, nil
}
