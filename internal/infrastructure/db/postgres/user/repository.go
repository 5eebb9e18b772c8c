package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	domain "jobboard-api/internal/domain/user"
	"jobboard-api/internal/infrastructure/db/postgres"
)

const pgUniqueViolation = "23505"

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByUUID, uuid)
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,
		&u.AvatarPath,

		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.PasswordHash, req.Role, req.Name,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,
		&u.AvatarPath,

		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid domain.UUID) (domain.ID, error) {
	var id domain.ID
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) FetchAvatarCandidates(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.db.Query(ctx, SelectAvatarCandidates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cands []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err = rows.Scan(&c.ID, &c.Path); err != nil {
			return nil, err
		}
		cands = append(cands, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cands, nil
}

func (r *Repository) UpdateCandidateAvatarPath(ctx context.Context, id domain.ID, path string) error {
	_, err := r.db.Exec(ctx, UpdateAvatarPathByID, path, id)
	return err
}
