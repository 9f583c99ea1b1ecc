package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"quiz-board/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var embeddedMigrations embed.FS

// Migrations returns the schema files shipped with the binary.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// MigrationStatus is one row of `migrate status`.
type MigrationStatus struct {
	Version   string
	AppliedAt *time.Time
}

// Migrator applies *.up.sql files in lexical order and records each version in
// schema_migrations. Files already recorded are skipped.
type Migrator struct {
	db    *sqlx.DB
	files fs.FS
}

func NewMigrator(db *sqlx.DB, files fs.FS) *Migrator {
	return &Migrator{db: db, files: files}
}

func (m *Migrator) versions() ([]string, error) {
	matches, err := fs.Glob(m.files, "*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var count int
	err := m.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`)
	if err != nil {
		return fmt.Errorf("could not inspect schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err = m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (
		version    VARCHAR2(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[string]time.Time, error) {
	rows := []struct {
		Version   string    `db:"VERSION"`
		AppliedAt time.Time `db:"APPLIED_AT"`
	}{}
	if err := m.db.SelectContext(ctx, &rows, `SELECT version, applied_at FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("could not read schema_migrations: %w", err)
	}
	out := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		out[r.Version] = r.AppliedAt
	}
	return out, nil
}

// Up applies every pending migration and returns the versions it ran.
// Oracle DDL auto-commits, so a failing file can leave earlier statements of
// that file applied; the version row is only written once the whole file succeeds.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}
	files, err := m.versions()
	if err != nil {
		return nil, err
	}

	var ran []string
	for _, name := range files {
		if _, ok := done[name]; ok {
			continue
		}
		content, err := fs.ReadFile(m.files, name)
		if err != nil {
			return ran, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := m.db.ExecContext(ctx, stmt); err != nil {
				return ran, fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		if _, err := m.db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, applied_at) VALUES (:1, :2)`,
			name, time.Now().UTC()); err != nil {
			return ran, fmt.Errorf("could not record migration %s: %w", name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
		ran = append(ran, name)
	}
	return ran, nil
}

// Status lists every known migration with its applied time, if any.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}
	files, err := m.versions()
	if err != nil {
		return nil, err
	}
	out := make([]MigrationStatus, 0, len(files))
	for _, name := range files {
		st := MigrationStatus{Version: name}
		if at, ok := done[name]; ok {
			at := at
			st.AppliedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}

// SplitStatements breaks a script on terminating semicolons and drops "--"
// comment lines. The Oracle drivers execute one statement per call.
func SplitStatements(script string) []string {
	var (
		stmts []string
		cur   strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSpace(cur.String())
			stmts = append(stmts, strings.TrimSuffix(stmt, ";"))
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
