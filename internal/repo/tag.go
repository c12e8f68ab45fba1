package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/tagbook/internal/domain"
)

// TagRepo defines the persistence operations for Tags.
// The service layer depends on this interface, not the Postgres implementation.
type TagRepo interface {
	// List returns every tag ordered by creation time, then name.
	List(ctx context.Context) ([]domain.Tag, error)

	// GetByName returns the tag whose name matches exactly.
	// Returns domain.ErrNotFound if no such tag exists.
	GetByName(ctx context.Context, name string) (domain.Tag, error)

	// Create inserts a new tag and returns the persisted row.
	// Returns domain.ErrConflict if a tag with the same name already exists;
	// the existing row is never overwritten.
	Create(ctx context.Context, tag domain.Tag) (domain.Tag, error)

	// Delete removes a tag by name. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, name string) error
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

// List returns all tags, oldest first.
func (r *pgTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	const q = `
		SELECT name, creator_id, created_on
		FROM tags
		ORDER BY created_on, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TagRepo.List: scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: rows: %w", err)
	}
	return tags, nil
}

// GetByName retrieves a tag by its exact name.
func (r *pgTagRepo) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	const q = `
		SELECT name, creator_id, created_on
		FROM tags
		WHERE name = @name`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name})
	tag, err := scanTag(row)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByName: %w", err)
	}
	return tag, nil
}

// Create inserts a tag. ON CONFLICT DO NOTHING makes the uniqueness check and
// the insert a single atomic statement: when the name is taken RETURNING yields
// no row, which is reported as domain.ErrConflict.
func (r *pgTagRepo) Create(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	const q = `
		INSERT INTO tags (name, creator_id, created_on)
		VALUES (@name, @creator_id, @created_on)
		ON CONFLICT (name) DO NOTHING
		RETURNING name, creator_id, created_on`

	args := pgx.NamedArgs{
		"name":       tag.Name,
		"creator_id": tag.CreatorID,
		"created_on": tag.CreatedOn,
	}

	row := r.db.QueryRow(ctx, q, args)
	created, err := scanTag(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", domain.ErrConflict)
		}
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", err)
	}
	return created, nil
}

// Delete removes a tag by name.
func (r *pgTagRepo) Delete(ctx context.Context, name string) error {
	const q = `DELETE FROM tags WHERE name = @name`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"name": name})
	if err != nil {
		return fmt.Errorf("repo.TagRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TagRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTag maps a single database row into a domain.Tag.
// created_on is normalised to UTC.
func scanTag(s scanner) (domain.Tag, error) {
	var t domain.Tag
	err := s.Scan(&t.Name, &t.CreatorID, &t.CreatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, err
	}
	t.CreatedOn = t.CreatedOn.UTC()
	return t, nil
}
