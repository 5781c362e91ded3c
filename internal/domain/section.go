package domain

import (
	"context"
	"time"
)

// Child entities of a curriculum. Every write to one of these bumps the
// parent's updated_at through the CurriculumTouched event, so viewers can
// tell a résumé changed without diffing its sections.

type Experience struct {
	ID           int64      `json:"id"`
	CurriculumID string     `json:"curriculum_id"`
	Company      string     `json:"company" validate:"required,max=150"`
	Position     string     `json:"position" validate:"required,max=150"`
	Description  string     `json:"description" validate:"max=2000"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"` // nil means current job
}

type Education struct {
	ID           int64      `json:"id"`
	CurriculumID string     `json:"curriculum_id"`
	Institution  string     `json:"institution" validate:"required,max=150"`
	Degree       string     `json:"degree" validate:"required,max=150"`
	Field        string     `json:"field" validate:"max=150"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

type SkillLevel string

const (
	SkillBasic        SkillLevel = "basic"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

type Skill struct {
	ID           int64      `json:"id"`
	CurriculumID string     `json:"curriculum_id"`
	Name         string     `json:"name" validate:"required,max=100"`
	Level        SkillLevel `json:"level" validate:"required,oneof=basic intermediate advanced expert"`
	Keywords     []string   `json:"keywords" validate:"max=20,dive,max=50"`
}

type LanguageProficiency string

const (
	LanguageBasic          LanguageProficiency = "basic"
	LanguageConversational LanguageProficiency = "conversational"
	LanguageFluent         LanguageProficiency = "fluent"
	LanguageNative         LanguageProficiency = "native"
)

type Language struct {
	ID           int64               `json:"id"`
	CurriculumID string              `json:"curriculum_id"`
	Name         string              `json:"name" validate:"required,max=100"`
	Proficiency  LanguageProficiency `json:"proficiency" validate:"required,oneof=basic conversational fluent native"`
}

type ContactKind string

const (
	ContactEmail    ContactKind = "email"
	ContactPhone    ContactKind = "phone"
	ContactLinkedin ContactKind = "linkedin"
	ContactGithub   ContactKind = "github"
	ContactWebsite  ContactKind = "website"
	ContactOther    ContactKind = "other"
)

type Contact struct {
	ID           int64       `json:"id"`
	CurriculumID string      `json:"curriculum_id"`
	Kind         ContactKind `json:"kind" validate:"required,oneof=email phone linkedin github website other"`
	Value        string      `json:"value" validate:"required,max=300"`
	Label        string      `json:"label" validate:"max=100"`
}

type Address struct {
	ID           int64  `json:"id"`
	CurriculumID string `json:"curriculum_id"`
	Street       string `json:"street" validate:"max=200"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"max=100"`
	Country      string `json:"country" validate:"required,max=100"`
	ZipCode      string `json:"zip_code" validate:"max=20"`
}

// SectionRepository persists curriculum child entities. Delete operations
// are scoped by curriculum id so a row can never be removed through a
// résumé its caller does not own.
type SectionRepository interface {
	CreateExperience(ctx context.Context, e *Experience) error
	UpdateExperience(ctx context.Context, e *Experience) (bool, error)
	DeleteExperience(ctx context.Context, curriculumID string, id int64) (bool, error)

	CreateEducation(ctx context.Context, e *Education) error
	UpdateEducation(ctx context.Context, e *Education) (bool, error)
	DeleteEducation(ctx context.Context, curriculumID string, id int64) (bool, error)

	CreateSkill(ctx context.Context, s *Skill) error
	UpdateSkill(ctx context.Context, s *Skill) (bool, error)
	DeleteSkill(ctx context.Context, curriculumID string, id int64) (bool, error)

	CreateLanguage(ctx context.Context, l *Language) error
	UpdateLanguage(ctx context.Context, l *Language) (bool, error)
	DeleteLanguage(ctx context.Context, curriculumID string, id int64) (bool, error)

	CreateContact(ctx context.Context, c *Contact) error
	UpdateContact(ctx context.Context, c *Contact) (bool, error)
	DeleteContact(ctx context.Context, curriculumID string, id int64) (bool, error)

	CreateAddress(ctx context.Context, a *Address) error
	UpdateAddress(ctx context.Context, a *Address) (bool, error)
	DeleteAddress(ctx context.Context, curriculumID string, id int64) (bool, error)
}

type SectionUsecase interface {
	AddExperience(ctx context.Context, curriculumID string, e Experience) (*Experience, error)
	UpdateExperience(ctx context.Context, curriculumID string, id int64, e Experience) (*Experience, error)
	RemoveExperience(ctx context.Context, curriculumID string, id int64) error

	AddEducation(ctx context.Context, curriculumID string, e Education) (*Education, error)
	UpdateEducation(ctx context.Context, curriculumID string, id int64, e Education) (*Education, error)
	RemoveEducation(ctx context.Context, curriculumID string, id int64) error

	AddSkill(ctx context.Context, curriculumID string, s Skill) (*Skill, error)
	UpdateSkill(ctx context.Context, curriculumID string, id int64, s Skill) (*Skill, error)
	RemoveSkill(ctx context.Context, curriculumID string, id int64) error

	AddLanguage(ctx context.Context, curriculumID string, l Language) (*Language, error)
	UpdateLanguage(ctx context.Context, curriculumID string, id int64, l Language) (*Language, error)
	RemoveLanguage(ctx context.Context, curriculumID string, id int64) error

	AddContact(ctx context.Context, curriculumID string, c Contact) (*Contact, error)
	UpdateContact(ctx context.Context, curriculumID string, id int64, c Contact) (*Contact, error)
	RemoveContact(ctx context.Context, curriculumID string, id int64) error

	AddAddress(ctx context.Context, curriculumID string, a Address) (*Address, error)
	UpdateAddress(ctx context.Context, curriculumID string, id int64, a Address) (*Address, error)
	RemoveAddress(ctx context.Context, curriculumID string, id int64) error
}
