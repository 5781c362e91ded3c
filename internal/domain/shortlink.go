package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateHash is returned by ShortLinkRepository writes when the
// generated hash collides with an existing row (unique index violation).
// Callers regenerate and retry.
var ErrDuplicateHash = errors.New("short link hash already exists")

// ShortLink maps an 8-character URL-safe hash to a curriculum. Revocation
// is one-way: is_revoked never goes back to false and revoked_at is set
// exactly once.
type ShortLink struct {
	ID           string     `json:"id"`
	CurriculumID string     `json:"curriculum_id"`
	Hash         string     `json:"hash"`
	IsRevoked    bool       `json:"is_revoked"`
	CreatedAt    time.Time  `json:"created_at"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
}

// ShareURL builds the public share address for the link.
func (s *ShortLink) ShareURL(baseURL string) string {
	return baseURL + "/api/shortlinks/access/" + s.Hash
}

// AccessLog is an append-only audit record of one successful resolution.
// Rows are never updated or deleted except by cascade with their link.
type AccessLog struct {
	ID          int64     `json:"id"`
	ShortLinkID string    `json:"short_link_id"`
	IP          string    `json:"ip"`
	UserAgent   *string   `json:"user_agent,omitempty"`
	AccessedAt  time.Time `json:"accessed_at"`
}

type CreateShortLinkInput struct {
	CurriculumID string `json:"curriculum_id" validate:"required,uuid"`
}

type ShortLinkRepository interface {
	Create(ctx context.Context, link *ShortLink) error
	GetByID(ctx context.Context, id string) (*ShortLink, error)
	// GetActiveByHash returns (nil, nil) both when the hash does not exist
	// and when the link is revoked; the two cases are indistinguishable on
	// purpose so the public API cannot leak whether a hash ever existed.
	GetActiveByHash(ctx context.Context, hash string) (*ShortLink, error)
	// Revoke flips is_revoked for a live link and reports whether a row
	// changed. Revoking an already-revoked link changes nothing.
	Revoke(ctx context.Context, id string, at time.Time) (bool, error)
	ListByCurriculum(ctx context.Context, curriculumID string) ([]ShortLink, error)
}

type AccessLogRepository interface {
	Create(ctx context.Context, log *AccessLog) error
	ListByShortLink(ctx context.Context, shortLinkID string) ([]AccessLog, error)
}

type ShortLinkUsecase interface {
	Create(ctx context.Context, input CreateShortLinkInput) (*ShortLink, error)
	Revoke(ctx context.Context, id string) (bool, error)
	ListByCurriculum(ctx context.Context, curriculumID string) ([]ShortLink, error)
	Logs(ctx context.Context, shortLinkID string) ([]AccessLog, error)
	// ExportLogs renders the access history as an XLSX workbook.
	ExportLogs(ctx context.Context, shortLinkID string) ([]byte, string, error)
	// Resolve is the anonymous read path: hash in, résumé projection out.
	// Unknown hash, revoked link and insufficient visibility all surface
	// as the same not-found error.
	Resolve(ctx context.Context, hash string, ip string, userAgent *string) (*CurriculumFull, error)
}
