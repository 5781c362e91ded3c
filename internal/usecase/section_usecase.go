package usecase

import (
	"context"

	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/internal/events"
	"github.com/scheffer1/CVFast-sub000/pkg/apperror"
	"github.com/scheffer1/CVFast-sub000/pkg/clock"

	"github.com/go-playground/validator/v10"
)

// sectionUsecase covers every curriculum child entity. All writes follow
// the same shape: prove ownership, validate, persist, publish
// CurriculumTouched so the parent's updated_at moves.
type sectionUsecase struct {
	sections  domain.SectionRepository
	curricula domain.CurriculumRepository
	bus       *events.Bus
	validate  *validator.Validate
	clock     clock.Clock
}

func NewSectionUsecase(sections domain.SectionRepository, curricula domain.CurriculumRepository, bus *events.Bus, validate *validator.Validate, clk clock.Clock) domain.SectionUsecase {
	return &sectionUsecase{
		sections:  sections,
		curricula: curricula,
		bus:       bus,
		validate:  validate,
		clock:     clk,
	}
}

func (u *sectionUsecase) touch(ctx context.Context, curriculumID string) {
	u.bus.PublishTouched(ctx, events.CurriculumTouched{
		CurriculumID: curriculumID,
		At:           u.clock.Now(),
	})
}

// ---- Experiences ----

func (u *sectionUsecase) AddExperience(ctx context.Context, curriculumID string, e domain.Experience) (*domain.Experience, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	e.CurriculumID = curriculumID
	if err := u.validate.Struct(e); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.sections.CreateExperience(ctx, &e); err != nil {
		return nil, err
	}
	u.touch(ctx, curriculumID)
	return &e, nil
}

func (u *sectionUsecase) UpdateExperience(ctx context.Context, curriculumID string, id int64, e domain.Experience) (*domain.Experience, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	e.ID = id
	e.CurriculumID = curriculumID
	if err := u.validate.Struct(e); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	updated, err := u.sections.UpdateExperience(ctx, &e)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NotFound("Experience not found")
	}
	u.touch(ctx, curriculumID)
	return &e, nil
}

func (u *sectionUsecase) RemoveExperience(ctx context.Context, curriculumID string, id int64) error {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return err
	}
	deleted, err := u.sections.DeleteExperience(ctx, curriculumID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Experience not found")
	}
	u.touch(ctx, curriculumID)
	return nil
}

// ---- Educations ----

func (u *sectionUsecase) AddEducation(ctx context.Context, curriculumID string, e domain.Education) (*domain.Education, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	e.CurriculumID = curriculumID
	if err := u.validate.Struct(e); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.sections.CreateEducation(ctx, &e); err != nil {
		return nil, err
	}
	u.touch(ctx, curriculumID)
	return &e, nil
}

func (u *sectionUsecase) UpdateEducation(ctx context.Context, curriculumID string, id int64, e domain.Education) (*domain.Education, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	e.ID = id
	e.CurriculumID = curriculumID
	if err := u.validate.Struct(e); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	updated, err := u.sections.UpdateEducation(ctx, &e)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NotFound("Education not found")
	}
	u.touch(ctx, curriculumID)
	return &e, nil
}

func (u *sectionUsecase) RemoveEducation(ctx context.Context, curriculumID string, id int64) error {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return err
	}
	deleted, err := u.sections.DeleteEducation(ctx, curriculumID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Education not found")
	}
	u.touch(ctx, curriculumID)
	return nil
}

// ---- Skills ----

func (u *sectionUsecase) AddSkill(ctx context.Context, curriculumID string, s domain.Skill) (*domain.Skill, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	s.CurriculumID = curriculumID
	if err := u.validate.Struct(s); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.sections.CreateSkill(ctx, &s); err != nil {
		return nil, err
	}
	u.touch(ctx, curriculumID)
	return &s, nil
}

func (u *sectionUsecase) UpdateSkill(ctx context.Context, curriculumID string, id int64, s domain.Skill) (*domain.Skill, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	s.ID = id
	s.CurriculumID = curriculumID
	if err := u.validate.Struct(s); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	updated, err := u.sections.UpdateSkill(ctx, &s)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NotFound("Skill not found")
	}
	u.touch(ctx, curriculumID)
	return &s, nil
}

func (u *sectionUsecase) RemoveSkill(ctx context.Context, curriculumID string, id int64) error {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return err
	}
	deleted, err := u.sections.DeleteSkill(ctx, curriculumID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Skill not found")
	}
	u.touch(ctx, curriculumID)
	return nil
}

// ---- Languages ----

func (u *sectionUsecase) AddLanguage(ctx context.Context, curriculumID string, l domain.Language) (*domain.Language, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	l.CurriculumID = curriculumID
	if err := u.validate.Struct(l); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.sections.CreateLanguage(ctx, &l); err != nil {
		return nil, err
	}
	u.touch(ctx, curriculumID)
	return &l, nil
}

func (u *sectionUsecase) UpdateLanguage(ctx context.Context, curriculumID string, id int64, l domain.Language) (*domain.Language, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	l.ID = id
	l.CurriculumID = curriculumID
	if err := u.validate.Struct(l); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	updated, err := u.sections.UpdateLanguage(ctx, &l)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NotFound("Language not found")
	}
	u.touch(ctx, curriculumID)
	return &l, nil
}

func (u *sectionUsecase) RemoveLanguage(ctx context.Context, curriculumID string, id int64) error {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return err
	}
	deleted, err := u.sections.DeleteLanguage(ctx, curriculumID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Language not found")
	}
	u.touch(ctx, curriculumID)
	return nil
}

// ---- Contacts ----

func (u *sectionUsecase) AddContact(ctx context.Context, curriculumID string, c domain.Contact) (*domain.Contact, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	c.CurriculumID = curriculumID
	if err := u.validate.Struct(c); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.sections.CreateContact(ctx, &c); err != nil {
		return nil, err
	}
	u.touch(ctx, curriculumID)
	return &c, nil
}

func (u *sectionUsecase) UpdateContact(ctx context.Context, curriculumID string, id int64, c domain.Contact) (*domain.Contact, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	c.ID = id
	c.CurriculumID = curriculumID
	if err := u.validate.Struct(c); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	updated, err := u.sections.UpdateContact(ctx, &c)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NotFound("Contact not found")
	}
	u.touch(ctx, curriculumID)
	return &c, nil
}

func (u *sectionUsecase) RemoveContact(ctx context.Context, curriculumID string, id int64) error {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return err
	}
	deleted, err := u.sections.DeleteContact(ctx, curriculumID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Contact not found")
	}
	u.touch(ctx, curriculumID)
	return nil
}

// ---- Addresses ----

func (u *sectionUsecase) AddAddress(ctx context.Context, curriculumID string, a domain.Address) (*domain.Address, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	a.CurriculumID = curriculumID
	if err := u.validate.Struct(a); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.sections.CreateAddress(ctx, &a); err != nil {
		return nil, err
	}
	u.touch(ctx, curriculumID)
	return &a, nil
}

func (u *sectionUsecase) UpdateAddress(ctx context.Context, curriculumID string, id int64, a domain.Address) (*domain.Address, error) {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return nil, err
	}
	a.ID = id
	a.CurriculumID = curriculumID
	if err := u.validate.Struct(a); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	updated, err := u.sections.UpdateAddress(ctx, &a)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NotFound("Address not found")
	}
	u.touch(ctx, curriculumID)
	return &a, nil
}

func (u *sectionUsecase) RemoveAddress(ctx context.Context, curriculumID string, id int64) error {
	if _, err := requireOwnership(ctx, u.curricula, curriculumID); err != nil {
		return err
	}
	deleted, err := u.sections.DeleteAddress(ctx, curriculumID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Address not found")
	}
	u.touch(ctx, curriculumID)
	return nil
}
