package talent

const (
	SelectProfileByUserID = `
		SELECT user_id, headline, resume_path, created_at, updated_at
		FROM talent_profiles
		WHERE user_id = $1
	`
	UpsertResumePath = `
		INSERT INTO talent_profiles (user_id, headline, resume_path)
		VALUES ($1, '', $2)
		ON CONFLICT (user_id) DO UPDATE
		SET resume_path = EXCLUDED.resume_path,
		    updated_at = now()
		RETURNING
		  user_id, headline, resume_path, created_at, updated_at
	`

	// Migration: rows whose resume still points at local staging.
	SelectResumeCandidates = `
		SELECT user_id, resume_path
		FROM talent_profiles
		WHERE resume_path LIKE '/uploads/resumes/%'
	`
	UpdateResumePathByUserID = `
		UPDATE talent_profiles
		SET resume_path = $1,
		    updated_at = now()
		WHERE user_id = $2
	`
)
