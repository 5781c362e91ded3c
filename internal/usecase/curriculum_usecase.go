package usecase

import (
	"context"
	"errors"

	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/pkg/apperror"
	"github.com/scheffer1/CVFast-sub000/pkg/clock"
	"github.com/scheffer1/CVFast-sub000/pkg/hashgen"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type curriculumUsecase struct {
	repo       domain.CurriculumRepository
	generator  hashgen.Generator
	validate   *validator.Validate
	clock      clock.Clock
	maxRetries int
}

func NewCurriculumUsecase(repo domain.CurriculumRepository, generator hashgen.Generator, validate *validator.Validate, clk clock.Clock, maxRetries int) domain.CurriculumUsecase {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &curriculumUsecase{
		repo:       repo,
		generator:  generator,
		validate:   validate,
		clock:      clk,
		maxRetries: maxRetries,
	}
}

// requireOwnership loads the curriculum and checks the context user owns
// it. Missing and not-owned both come back as not-found so the API never
// confirms someone else's résumé ids.
func requireOwnership(ctx context.Context, repo domain.CurriculumRepository, curriculumID string) (*domain.Curriculum, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	curriculum, err := repo.GetByID(ctx, curriculumID)
	if err != nil {
		return nil, err
	}
	if curriculum == nil || curriculum.UserID != userID {
		return nil, apperror.NotFound("Curriculum not found")
	}
	return curriculum, nil
}

// Create persists the curriculum together with its implicit share link in
// one transaction. A hash collision aborts both inserts and the whole
// creation is retried with a fresh hash.
func (u *curriculumUsecase) Create(ctx context.Context, input domain.CreateCurriculumInput) (*domain.CurriculumFull, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid curriculum status")
	}

	now := u.clock.Now()
	curriculum := &domain.Curriculum{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     input.Title,
		Summary:   input.Summary,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var lastErr error
	for attempt := 0; attempt < u.maxRetries; attempt++ {
		link := &domain.ShortLink{
			ID:           uuid.New().String(),
			CurriculumID: curriculum.ID,
			Hash:         u.generator.Generate(curriculum.ID),
			CreatedAt:    now,
		}
		lastErr = u.repo.CreateWithLink(ctx, curriculum, link)
		if lastErr == nil {
			return u.repo.GetFull(ctx, curriculum.ID)
		}
		if !errors.Is(lastErr, domain.ErrDuplicateHash) {
			return nil, lastErr
		}
	}
	return nil, apperror.Internal(lastErr)
}

func (u *curriculumUsecase) Get(ctx context.Context, id string) (*domain.CurriculumFull, error) {
	if _, err := requireOwnership(ctx, u.repo, id); err != nil {
		return nil, err
	}
	full, err := u.repo.GetFull(ctx, id)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, apperror.NotFound("Curriculum not found")
	}
	return full, nil
}

func (u *curriculumUsecase) List(ctx context.Context) ([]domain.Curriculum, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *curriculumUsecase) Update(ctx context.Context, id string, input domain.UpdateCurriculumInput) (*domain.Curriculum, error) {
	curriculum, err := requireOwnership(ctx, u.repo, id)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	curriculum.Title = input.Title
	curriculum.Summary = input.Summary
	curriculum.UpdatedAt = u.clock.Now()

	if err := u.repo.Update(ctx, curriculum); err != nil {
		return nil, err
	}
	return curriculum, nil
}

func (u *curriculumUsecase) UpdateStatus(ctx context.Context, id string, status domain.CurriculumStatus) error {
	if _, err := requireOwnership(ctx, u.repo, id); err != nil {
		return err
	}
	if !status.Valid() {
		return apperror.BadRequest("Invalid curriculum status")
	}
	return u.repo.UpdateStatus(ctx, id, status, u.clock.Now())
}

func (u *curriculumUsecase) Delete(ctx context.Context, id string) error {
	if _, err := requireOwnership(ctx, u.repo, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
