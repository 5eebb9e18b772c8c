package company

const (
	SelectCompanyByUUID = `
		SELECT id, uuid, name, slug, website, logo_path, created_at, updated_at, deleted_at
		FROM companies
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectCompanyBySlug = `
		SELECT id, uuid, name, slug, website, logo_path, created_at, updated_at, deleted_at
		FROM companies
		WHERE slug = $1 AND deleted_at IS NULL
	`
	InsertCompany = `
		INSERT INTO companies (name, slug, website, logo_path)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, name, slug, website, logo_path, created_at, updated_at, deleted_at
	`
	UpdateLogoPathByUUID = `
		UPDATE companies
		SET logo_path = $1,
		    updated_at = now()
		WHERE uuid = $2 AND deleted_at IS NULL
	`

	// Migration: rows whose logo still points at local staging.
	SelectLogoCandidates = `
		SELECT id, logo_path
		FROM companies
		WHERE logo_path LIKE '/uploads/logos/%'
	`
	UpdateLogoPathByID = `
		UPDATE companies
		SET logo_path = $1,
		    updated_at = now()
		WHERE id = $2
	`
)
