package postgres

import (
	"context"

	"github.com/scheffer1/CVFast-sub000/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type accessLogRepo struct {
	db *pgxpool.Pool
}

func NewAccessLogRepository(db *pgxpool.Pool) domain.AccessLogRepository {
	return &accessLogRepo{db: db}
}

// Create appends one access record. There is deliberately no update or
// delete on this table; rows only disappear by cascade with their link.
func (r *accessLogRepo) Create(ctx context.Context, log *domain.AccessLog) error {
	query := `INSERT INTO access_logs (short_link_id, ip, user_agent, accessed_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, log.ShortLinkID, log.IP, log.UserAgent, log.AccessedAt).Scan(&log.ID)
}

func (r *accessLogRepo) ListByShortLink(ctx context.Context, shortLinkID string) ([]domain.AccessLog, error) {
	query := `SELECT id, short_link_id, ip, user_agent, accessed_at
	          FROM access_logs WHERE short_link_id = $1 ORDER BY accessed_at DESC`
	rows, err := r.db.Query(ctx, query, shortLinkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.AccessLog{}
	for rows.Next() {
		var l domain.AccessLog
		if err := rows.Scan(&l.ID, &l.ShortLinkID, &l.IP, &l.UserAgent, &l.AccessedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
