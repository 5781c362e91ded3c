package postgres

import (
	"context"

	"github.com/scheffer1/CVFast-sub000/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type sectionRepo struct {
	db *pgxpool.Pool
}

func NewSectionRepository(db *pgxpool.Pool) domain.SectionRepository {
	return &sectionRepo{db: db}
}

// ---- Experiences ----

func (r *sectionRepo) CreateExperience(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (curriculum_id, company, position, description, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query, e.CurriculumID, e.Company, e.Position, e.Description, e.StartDate, e.EndDate).Scan(&e.ID)
}

func (r *sectionRepo) UpdateExperience(ctx context.Context, e *domain.Experience) (bool, error) {
	query := `UPDATE experiences SET company = $3, position = $4, description = $5, start_date = $6, end_date = $7
	          WHERE id = $1 AND curriculum_id = $2`
	tag, err := r.db.Exec(ctx, query, e.ID, e.CurriculumID, e.Company, e.Position, e.Description, e.StartDate, e.EndDate)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *sectionRepo) DeleteExperience(ctx context.Context, curriculumID string, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND curriculum_id = $2`, id, curriculumID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ---- Educations ----

func (r *sectionRepo) CreateEducation(ctx context.Context, e *domain.Education) error {
	query := `INSERT INTO educations (curriculum_id, institution, degree, field, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query, e.CurriculumID, e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate).Scan(&e.ID)
}

func (r *sectionRepo) UpdateEducation(ctx context.Context, e *domain.Education) (bool, error) {
	query := `UPDATE educations SET institution = $3, degree = $4, field = $5, start_date = $6, end_date = $7
	          WHERE id = $1 AND curriculum_id = $2`
	tag, err := r.db.Exec(ctx, query, e.ID, e.CurriculumID, e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *sectionRepo) DeleteEducation(ctx context.Context, curriculumID string, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND curriculum_id = $2`, id, curriculumID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ---- Skills ----

func (r *sectionRepo) CreateSkill(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (curriculum_id, name, level, keywords)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, s.CurriculumID, s.Name, s.Level, pq.Array(s.Keywords)).Scan(&s.ID)
}

func (r *sectionRepo) UpdateSkill(ctx context.Context, s *domain.Skill) (bool, error) {
	query := `UPDATE skills SET name = $3, level = $4, keywords = $5
	          WHERE id = $1 AND curriculum_id = $2`
	tag, err := r.db.Exec(ctx, query, s.ID, s.CurriculumID, s.Name, s.Level, pq.Array(s.Keywords))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *sectionRepo) DeleteSkill(ctx context.Context, curriculumID string, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND curriculum_id = $2`, id, curriculumID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ---- Languages ----

func (r *sectionRepo) CreateLanguage(ctx context.Context, l *domain.Language) error {
	query := `INSERT INTO languages (curriculum_id, name, proficiency)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, l.CurriculumID, l.Name, l.Proficiency).Scan(&l.ID)
}

func (r *sectionRepo) UpdateLanguage(ctx context.Context, l *domain.Language) (bool, error) {
	query := `UPDATE languages SET name = $3, proficiency = $4
	          WHERE id = $1 AND curriculum_id = $2`
	tag, err := r.db.Exec(ctx, query, l.ID, l.CurriculumID, l.Name, l.Proficiency)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *sectionRepo) DeleteLanguage(ctx context.Context, curriculumID string, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM languages WHERE id = $1 AND curriculum_id = $2`, id, curriculumID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ---- Contacts ----

func (r *sectionRepo) CreateContact(ctx context.Context, c *domain.Contact) error {
	query := `INSERT INTO contacts (curriculum_id, kind, value, label)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, c.CurriculumID, c.Kind, c.Value, c.Label).Scan(&c.ID)
}

func (r *sectionRepo) UpdateContact(ctx context.Context, c *domain.Contact) (bool, error) {
	query := `UPDATE contacts SET kind = $3, value = $4, label = $5
	          WHERE id = $1 AND curriculum_id = $2`
	tag, err := r.db.Exec(ctx, query, c.ID, c.CurriculumID, c.Kind, c.Value, c.Label)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *sectionRepo) DeleteContact(ctx context.Context, curriculumID string, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND curriculum_id = $2`, id, curriculumID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ---- Addresses ----

func (r *sectionRepo) CreateAddress(ctx context.Context, a *domain.Address) error {
	query := `INSERT INTO addresses (curriculum_id, street, city, state, country, zip_code)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query, a.CurriculumID, a.Street, a.City, a.State, a.Country, a.ZipCode).Scan(&a.ID)
}

func (r *sectionRepo) UpdateAddress(ctx context.Context, a *domain.Address) (bool, error) {
	query := `UPDATE addresses SET street = $3, city = $4, state = $5, country = $6, zip_code = $7
	          WHERE id = $1 AND curriculum_id = $2`
	tag, err := r.db.Exec(ctx, query, a.ID, a.CurriculumID, a.Street, a.City, a.State, a.Country, a.ZipCode)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *sectionRepo) DeleteAddress(ctx context.Context, curriculumID string, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1 AND curriculum_id = $2`, id, curriculumID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
