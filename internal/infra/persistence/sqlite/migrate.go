package sqlite

import (
	"context"
	"database/sql"
	"io/fs"
	"sort"
	"strings"
	"time"

	"navshortcut/internal/errors"
)

const migrationTable = "schema_migrations"

// applyMigrations executes every *.sql file of migrationFS at most once, in name order.
func applyMigrations(ctx context.Context, sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return errors.Wrap(err, "read migrations dir")
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	if _, err := sqlDB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return errors.Wrap(err, "ensure migration table")
	}

	for _, file := range sqlFiles {
		applied, err := isApplied(ctx, sqlDB, file)
		if err != nil {
			return errors.Wrapf(err, "check migration %s", file)
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return errors.Wrapf(err, "read migration %s", file)
		}

		if err := applyOne(ctx, sqlDB, file, string(content)); err != nil {
			return err
		}
	}

	return nil
}

func applyOne(ctx context.Context, sqlDB *sql.DB, name, content string) error {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "begin migration %s", name)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, content); err != nil {
		return errors.Wrapf(err, "exec migration %s", name)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
		name,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		return errors.Wrapf(err, "record migration %s", name)
	}

	return errors.Wrapf(tx.Commit(), "commit migration %s", name)
}

func isApplied(ctx context.Context, sqlDB *sql.DB, name string) (bool, error) {
	var count int
	if err := sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(1) FROM `+migrationTable+` WHERE name = ?`,
		name,
	).Scan(&count); err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}
