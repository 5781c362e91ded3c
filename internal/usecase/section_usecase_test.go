package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/internal/events"
	"github.com/scheffer1/CVFast-sub000/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type sectionFixture struct {
	sections  *MockSectionRepo
	curricula *MockCurriculumRepo
	touched   []events.CurriculumTouched
	uc        domain.SectionUsecase
}

func newSectionFixture() *sectionFixture {
	f := &sectionFixture{
		sections:  new(MockSectionRepo),
		curricula: new(MockCurriculumRepo),
	}
	bus := events.NewBus()
	bus.SubscribeTouched(func(_ context.Context, evt events.CurriculumTouched) {
		f.touched = append(f.touched, evt)
	})
	f.uc = usecase.NewSectionUsecase(f.sections, f.curricula, bus, validator.New(), testClock)
	return f
}

func validExperience() domain.Experience {
	return domain.Experience{
		Company:   "ACME Corp",
		Position:  "Engineer",
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSectionAdd(t *testing.T) {
	owned := &domain.Curriculum{ID: "c1", UserID: "user1"}

	t.Run("Should force curriculum id from the path", func(t *testing.T) {
		f := newSectionFixture()
		f.curricula.On("GetByID", mock.Anything, "c1").Return(owned, nil)

		var stored *domain.Experience
		f.sections.On("CreateExperience", mock.Anything, mock.AnythingOfType("*domain.Experience")).
			Return(nil).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.Experience)
			})

		input := validExperience()
		input.CurriculumID = "someone-elses" // must be overwritten
		created, err := f.uc.AddExperience(authedCtx("user1"), "c1", input)
		assert.NoError(t, err)
		assert.Equal(t, "c1", stored.CurriculumID)
		assert.Equal(t, "c1", created.CurriculumID)
	})

	t.Run("Should bump the parent through the touched event", func(t *testing.T) {
		f := newSectionFixture()
		f.curricula.On("GetByID", mock.Anything, "c1").Return(owned, nil)
		f.sections.On("CreateSkill", mock.Anything, mock.Anything).Return(nil)

		_, err := f.uc.AddSkill(authedCtx("user1"), "c1", domain.Skill{
			Name:  "Go",
			Level: domain.SkillAdvanced,
		})
		assert.NoError(t, err)
		assert.Len(t, f.touched, 1)
		assert.Equal(t, "c1", f.touched[0].CurriculumID)
		assert.Equal(t, testClock.T, f.touched[0].At)
	})

	t.Run("Should not touch when validation fails", func(t *testing.T) {
		f := newSectionFixture()
		f.curricula.On("GetByID", mock.Anything, "c1").Return(owned, nil)

		_, err := f.uc.AddLanguage(authedCtx("user1"), "c1", domain.Language{
			Name:        "English",
			Proficiency: "perfect", // not in the enum
		})
		assert.Error(t, err)
		assert.Empty(t, f.touched)
		f.sections.AssertNotCalled(t, "CreateLanguage", mock.Anything, mock.Anything)
	})

	t.Run("Should fail without authentication", func(t *testing.T) {
		f := newSectionFixture()
		_, err := f.uc.AddExperience(context.Background(), "c1", validExperience())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestSectionUpdateAndRemove(t *testing.T) {
	owned := &domain.Curriculum{ID: "c1", UserID: "user1"}

	t.Run("Should report not found when no row matches", func(t *testing.T) {
		f := newSectionFixture()
		f.curricula.On("GetByID", mock.Anything, "c1").Return(owned, nil)
		f.sections.On("UpdateExperience", mock.Anything, mock.Anything).Return(false, nil)

		_, err := f.uc.UpdateExperience(authedCtx("user1"), "c1", 42, validExperience())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		assert.Empty(t, f.touched)
	})

	t.Run("Should scope deletes by curriculum", func(t *testing.T) {
		f := newSectionFixture()
		f.curricula.On("GetByID", mock.Anything, "c1").Return(owned, nil)
		f.sections.On("DeleteContact", mock.Anything, "c1", int64(7)).Return(true, nil)

		err := f.uc.RemoveContact(authedCtx("user1"), "c1", 7)
		assert.NoError(t, err)
		assert.Len(t, f.touched, 1)
		f.sections.AssertExpectations(t)
	})

	t.Run("Should pin id and curriculum on updates", func(t *testing.T) {
		f := newSectionFixture()
		f.curricula.On("GetByID", mock.Anything, "c1").Return(owned, nil)

		var stored *domain.Address
		f.sections.On("UpdateAddress", mock.Anything, mock.AnythingOfType("*domain.Address")).
			Return(true, nil).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.Address)
			})

		_, err := f.uc.UpdateAddress(authedCtx("user1"), "c1", 9, domain.Address{
			ID:           999, // ignored, the path wins
			CurriculumID: "elsewhere",
			City:         "Lisbon",
			Country:      "Portugal",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(9), stored.ID)
		assert.Equal(t, "c1", stored.CurriculumID)
	})
}
