package domain

import (
	"context"
	"time"
)

// CurriculumStatus controls whether anonymous visitors may resolve a
// résumé through its share links. Only active résumés are publicly
// resolvable; the owner can always resolve their own.
type CurriculumStatus string

const (
	StatusDraft    CurriculumStatus = "draft"
	StatusActive   CurriculumStatus = "active"
	StatusHidden   CurriculumStatus = "hidden"
	StatusArchived CurriculumStatus = "archived"
)

func (s CurriculumStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusHidden, StatusArchived:
		return true
	}
	return false
}

type Curriculum struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title" validate:"required,min=3,max=150"`
	Summary   string           `json:"summary" validate:"max=2000"`
	Status    CurriculumStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CurriculumFull is the résumé projection returned to viewers: the
// curriculum row plus every child collection and its non-revoked links.
type CurriculumFull struct {
	Curriculum
	Experiences []Experience `json:"experiences"`
	Educations  []Education  `json:"educations"`
	Skills      []Skill      `json:"skills"`
	Languages   []Language   `json:"languages"`
	Contacts    []Contact    `json:"contacts"`
	Addresses   []Address    `json:"addresses"`
	ShortLinks  []ShortLink  `json:"short_links"`
}

type CreateCurriculumInput struct {
	Title   string           `json:"title" validate:"required,min=3,max=150"`
	Summary string           `json:"summary" validate:"max=2000"`
	Status  CurriculumStatus `json:"status" validate:"omitempty"`
}

type UpdateCurriculumInput struct {
	Title   string `json:"title" validate:"required,min=3,max=150"`
	Summary string `json:"summary" validate:"max=2000"`
}

type CurriculumRepository interface {
	// CreateWithLink inserts the curriculum and its implicit short-link in
	// one transaction; neither survives without the other.
	CreateWithLink(ctx context.Context, curriculum *Curriculum, link *ShortLink) error
	GetByID(ctx context.Context, id string) (*Curriculum, error)
	GetFull(ctx context.Context, id string) (*CurriculumFull, error)
	ListByUser(ctx context.Context, userID string) ([]Curriculum, error)
	Update(ctx context.Context, curriculum *Curriculum) error
	UpdateStatus(ctx context.Context, id string, status CurriculumStatus, at time.Time) error
	// Touch bumps updated_at; driven by the CurriculumTouched event when a
	// child entity changes.
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type CurriculumUsecase interface {
	Create(ctx context.Context, input CreateCurriculumInput) (*CurriculumFull, error)
	Get(ctx context.Context, id string) (*CurriculumFull, error)
	List(ctx context.Context) ([]Curriculum, error)
	Update(ctx context.Context, id string, input UpdateCurriculumInput) (*Curriculum, error)
	UpdateStatus(ctx context.Context, id string, status CurriculumStatus) error
	Delete(ctx context.Context, id string) error
}
