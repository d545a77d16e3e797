// Package repository holds the Postgres persistence of the published snapshot.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/orangepax/outlet-sales-sync/infrastructure/database/postgres"
)

const snapshotArtifactTable = "snapshot_artifact"

const createSnapshotArtifactTable = `CREATE TABLE IF NOT EXISTS snapshot_artifact (
	name       TEXT PRIMARY KEY,
	checksum   TEXT NOT NULL,
	content    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// SnapshotArtifact is the single stored version of an artifact. There is no history.
type SnapshotArtifact struct {
	Name      string
	Checksum  string
	Content   []byte
	UpdatedAt time.Time
}

//go:generate mockgen -source=snapshot_artifact.go -destination=mocks/mock_snapshot_artifact.go -package=mocks

type SnapshotArtifactRepository interface {
	EnsureSchema(ctx context.Context) error
	GetChecksum(ctx context.Context, name string) (string, bool, error)
	Save(ctx context.Context, artifact *SnapshotArtifact) error
}

type snapshotArtifactRepository struct {
	conn postgres.Queryer
}

func NewSnapshotArtifactRepository(conn postgres.Queryer) SnapshotArtifactRepository {
	return &snapshotArtifactRepository{
		conn: conn,
	}
}

func (r *snapshotArtifactRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.Exec(ctx, createSnapshotArtifactTable); err != nil {
		return fmt.Errorf("failed to create %s table: %w", snapshotArtifactTable, err)
	}
	return nil
}

func (r *snapshotArtifactRepository) GetChecksum(ctx context.Context, name string) (string, bool, error) {
	sqlQuery, args, err := checksumQuery(name)
	if err != nil {
		return "", false, fmt.Errorf("failed to build query: %w", err)
	}

	var checksum string
	if err := r.conn.QueryRow(ctx, sqlQuery, args...).Scan(&checksum); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read checksum: %w", err)
	}

	return checksum, true, nil
}

func (r *snapshotArtifactRepository) Save(ctx context.Context, artifact *SnapshotArtifact) error {
	sqlQuery, args, err := upsertQuery(artifact)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", artifact.Name, err)
	}
	return nil
}

func checksumQuery(name string) (string, []interface{}, error) {
	return squirrel.
		Select("checksum").
		From(snapshotArtifactTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertQuery(artifact *SnapshotArtifact) (string, []interface{}, error) {
	return squirrel.
		Insert(snapshotArtifactTable).
		Columns("name", "checksum", "content", "updated_at").
		Values(artifact.Name, artifact.Checksum, string(artifact.Content), artifact.UpdatedAt).
		Suffix("ON CONFLICT (name) DO UPDATE SET checksum = EXCLUDED.checksum, content = EXCLUDED.content, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
