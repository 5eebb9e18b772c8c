package user

const (
	SelectUserByUUID = `
		SELECT id, uuid, email, password_hash, role, name, avatar_path, created_at, updated_at, deleted_at
		FROM users
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectUserByEmail = `
		SELECT id, uuid, email, password_hash, role, name, avatar_path, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, role, name)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, email, password_hash, role, name, avatar_path, created_at, updated_at, deleted_at
	`
	SelectIdByUUID = `SELECT id FROM users WHERE uuid = $1::uuid`

	// Migration: rows whose avatar still points at local staging.
	SelectAvatarCandidates = `
		SELECT id, avatar_path
		FROM users
		WHERE avatar_path LIKE '/uploads/avatars/%'
	`
	UpdateAvatarPathByID = `
		UPDATE users
		SET avatar_path = $1,
		    updated_at = now()
		WHERE id = $2
	`
)
