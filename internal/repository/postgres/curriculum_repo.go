package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scheffer1/CVFast-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type curriculumRepo struct {
	db *pgxpool.Pool
}

func NewCurriculumRepository(db *pgxpool.Pool) domain.CurriculumRepository {
	return &curriculumRepo{db: db}
}

func (r *curriculumRepo) CreateWithLink(ctx context.Context, curriculum *domain.Curriculum, link *domain.ShortLink) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	curriculumQuery := `INSERT INTO curricula (id, user_id, title, summary, status, created_at, updated_at)
	                    VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.Exec(ctx, curriculumQuery,
		curriculum.ID, curriculum.UserID, curriculum.Title, curriculum.Summary,
		curriculum.Status, curriculum.CreatedAt, curriculum.UpdatedAt,
	)
	if err != nil {
		return err
	}

	linkQuery := `INSERT INTO short_links (id, curriculum_id, hash, is_revoked, created_at)
	              VALUES ($1, $2, $3, FALSE, $4)`
	_, err = tx.Exec(ctx, linkQuery, link.ID, link.CurriculumID, link.Hash, link.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Hash collision rolls back the curriculum as well; the caller
			// regenerates and retries the whole creation.
			return domain.ErrDuplicateHash
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *curriculumRepo) GetByID(ctx context.Context, id string) (*domain.Curriculum, error) {
	query := `SELECT id, user_id, title, summary, status, created_at, updated_at
	          FROM curricula WHERE id = $1`
	var c domain.Curriculum
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.Title, &c.Summary, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// GetFull loads the curriculum with every child collection plus its
// non-revoked short-links. Revoked links stay out of the projection.
func (r *curriculumRepo) GetFull(ctx context.Context, id string) (*domain.CurriculumFull, error) {
	curriculum, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if curriculum == nil {
		return nil, nil
	}

	result := &domain.CurriculumFull{
		Curriculum:  *curriculum,
		Experiences: []domain.Experience{},
		Educations:  []domain.Education{},
		Skills:      []domain.Skill{},
		Languages:   []domain.Language{},
		Contacts:    []domain.Contact{},
		Addresses:   []domain.Address{},
		ShortLinks:  []domain.ShortLink{},
	}

	if err := r.fetchExperiences(ctx, id, result); err != nil {
		return nil, err
	}
	if err := r.fetchEducations(ctx, id, result); err != nil {
		return nil, err
	}
	if err := r.fetchSkills(ctx, id, result); err != nil {
		return nil, err
	}
	if err := r.fetchLanguages(ctx, id, result); err != nil {
		return nil, err
	}
	if err := r.fetchContacts(ctx, id, result); err != nil {
		return nil, err
	}
	if err := r.fetchAddresses(ctx, id, result); err != nil {
		return nil, err
	}
	if err := r.fetchActiveLinks(ctx, id, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *curriculumRepo) fetchExperiences(ctx context.Context, id string, result *domain.CurriculumFull) error {
	query := `SELECT id, curriculum_id, company, position, description, start_date, end_date
	          FROM experiences WHERE curriculum_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to fetch experiences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.CurriculumID, &e.Company, &e.Position, &e.Description, &e.StartDate, &e.EndDate); err != nil {
			return err
		}
		result.Experiences = append(result.Experiences, e)
	}
	return rows.Err()
}

func (r *curriculumRepo) fetchEducations(ctx context.Context, id string, result *domain.CurriculumFull) error {
	query := `SELECT id, curriculum_id, institution, degree, field, start_date, end_date
	          FROM educations WHERE curriculum_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to fetch educations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.CurriculumID, &e.Institution, &e.Degree, &e.Field, &e.StartDate, &e.EndDate); err != nil {
			return err
		}
		result.Educations = append(result.Educations, e)
	}
	return rows.Err()
}

func (r *curriculumRepo) fetchSkills(ctx context.Context, id string, result *domain.CurriculumFull) error {
	query := `SELECT id, curriculum_id, name, level, keywords
	          FROM skills WHERE curriculum_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Skill
		var keywords []string
		if err := rows.Scan(&s.ID, &s.CurriculumID, &s.Name, &s.Level, pq.Array(&keywords)); err != nil {
			return err
		}
		s.Keywords = keywords
		result.Skills = append(result.Skills, s)
	}
	return rows.Err()
}

func (r *curriculumRepo) fetchLanguages(ctx context.Context, id string, result *domain.CurriculumFull) error {
	query := `SELECT id, curriculum_id, name, proficiency
	          FROM languages WHERE curriculum_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to fetch languages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.CurriculumID, &l.Name, &l.Proficiency); err != nil {
			return err
		}
		result.Languages = append(result.Languages, l)
	}
	return rows.Err()
}

func (r *curriculumRepo) fetchContacts(ctx context.Context, id string, result *domain.CurriculumFull) error {
	query := `SELECT id, curriculum_id, kind, value, label
	          FROM contacts WHERE curriculum_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to fetch contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.CurriculumID, &c.Kind, &c.Value, &c.Label); err != nil {
			return err
		}
		result.Contacts = append(result.Contacts, c)
	}
	return rows.Err()
}

func (r *curriculumRepo) fetchAddresses(ctx context.Context, id string, result *domain.CurriculumFull) error {
	query := `SELECT id, curriculum_id, street, city, state, country, zip_code
	          FROM addresses WHERE curriculum_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to fetch addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.CurriculumID, &a.Street, &a.City, &a.State, &a.Country, &a.ZipCode); err != nil {
			return err
		}
		result.Addresses = append(result.Addresses, a)
	}
	return rows.Err()
}

func (r *curriculumRepo) fetchActiveLinks(ctx context.Context, id string, result *domain.CurriculumFull) error {
	query := `SELECT id, curriculum_id, hash, is_revoked, created_at, revoked_at
	          FROM short_links WHERE curriculum_id = $1 AND is_revoked = FALSE ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to fetch short links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.ShortLink
		if err := rows.Scan(&s.ID, &s.CurriculumID, &s.Hash, &s.IsRevoked, &s.CreatedAt, &s.RevokedAt); err != nil {
			return err
		}
		result.ShortLinks = append(result.ShortLinks, s)
	}
	return rows.Err()
}

func (r *curriculumRepo) ListByUser(ctx context.Context, userID string) ([]domain.Curriculum, error) {
	query := `SELECT id, user_id, title, summary, status, created_at, updated_at
	          FROM curricula WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Curriculum{}
	for rows.Next() {
		var c domain.Curriculum
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Summary, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *curriculumRepo) Update(ctx context.Context, curriculum *domain.Curriculum) error {
	query := `UPDATE curricula SET title = $2, summary = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, curriculum.ID, curriculum.Title, curriculum.Summary, curriculum.UpdatedAt)
	return err
}

func (r *curriculumRepo) UpdateStatus(ctx context.Context, id string, status domain.CurriculumStatus, at time.Time) error {
	query := `UPDATE curricula SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, status, at)
	return err
}

func (r *curriculumRepo) Touch(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE curricula SET updated_at = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, at)
	return err
}

func (r *curriculumRepo) Delete(ctx context.Context, id string) error {
	// Children, short-links and access logs go with it via ON DELETE CASCADE.
	query := `DELETE FROM curricula WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
