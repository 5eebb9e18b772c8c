package postgres

import (
	"context"
	"fmt"
)

// Advisory lock guarding the upload migration. Two concurrent migrator
// runs could otherwise claim the same candidate and leave an orphaned
// object behind the losing writer.
//
// Session advisory locks live on the connection that took them, so the
// Querier passed to Acquire/Release must be a single dedicated
// connection held for the whole run, never a pool: on a pool the lock
// would sit on an arbitrary pooled connection and lapse whenever the
// pool reaps it.
const migrationLockKey = int64(8_420_117)

var ErrLockHeld = fmt.Errorf("migration lock is held by another session")

func AcquireMigrationLock(ctx context.Context, db Querier) error {
	var acquired bool
	if err := db.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, migrationLockKey).Scan(&acquired); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	if !acquired {
		return ErrLockHeld
	}
	return nil
}

func ReleaseMigrationLock(ctx context.Context, db Querier) error {
	if _, err := db.Exec(ctx, `SELECT pg_advisory_unlock($1)`, migrationLockKey); err != nil {
		return fmt.Errorf("release migration lock: %w", err)
	}
	return nil
}
