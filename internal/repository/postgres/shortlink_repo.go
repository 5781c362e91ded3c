package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/scheffer1/CVFast-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type shortLinkRepo struct {
	db *pgxpool.Pool
}

func NewShortLinkRepository(db *pgxpool.Pool) domain.ShortLinkRepository {
	return &shortLinkRepo{db: db}
}

func (r *shortLinkRepo) Create(ctx context.Context, link *domain.ShortLink) error {
	query := `INSERT INTO short_links (id, curriculum_id, hash, is_revoked, created_at)
	          VALUES ($1, $2, $3, FALSE, $4)`
	_, err := r.db.Exec(ctx, query, link.ID, link.CurriculumID, link.Hash, link.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateHash
		}
		return err
	}
	return nil
}

func (r *shortLinkRepo) GetByID(ctx context.Context, id string) (*domain.ShortLink, error) {
	query := `SELECT id, curriculum_id, hash, is_revoked, created_at, revoked_at
	          FROM short_links WHERE id = $1`
	var s domain.ShortLink
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CurriculumID, &s.Hash, &s.IsRevoked, &s.CreatedAt, &s.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// GetActiveByHash collapses "no such hash" and "revoked" into (nil, nil).
// The resolution path must not be able to tell the two apart.
func (r *shortLinkRepo) GetActiveByHash(ctx context.Context, hash string) (*domain.ShortLink, error) {
	query := `SELECT id, curriculum_id, hash, is_revoked, created_at, revoked_at
	          FROM short_links WHERE hash = $1 AND is_revoked = FALSE`
	var s domain.ShortLink
	err := r.db.QueryRow(ctx, query, hash).Scan(
		&s.ID, &s.CurriculumID, &s.Hash, &s.IsRevoked, &s.CreatedAt, &s.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Revoke is a single conditional write; the is_revoked guard makes it
// idempotent under concurrent calls and keeps revoked_at at its first value.
func (r *shortLinkRepo) Revoke(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `UPDATE short_links SET is_revoked = TRUE, revoked_at = $2
	          WHERE id = $1 AND is_revoked = FALSE`
	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *shortLinkRepo) ListByCurriculum(ctx context.Context, curriculumID string) ([]domain.ShortLink, error) {
	query := `SELECT id, curriculum_id, hash, is_revoked, created_at, revoked_at
	          FROM short_links WHERE curriculum_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, curriculumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ShortLink{}
	for rows.Next() {
		var s domain.ShortLink
		if err := rows.Scan(&s.ID, &s.CurriculumID, &s.Hash, &s.IsRevoked, &s.CreatedAt, &s.RevokedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
