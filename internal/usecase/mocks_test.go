package usecase_test

import (
	"context"
	"time"

	"github.com/scheffer1/CVFast-sub000/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCurriculumRepo struct {
	mock.Mock
}

func (m *MockCurriculumRepo) CreateWithLink(ctx context.Context, curriculum *domain.Curriculum, link *domain.ShortLink) error {
	return m.Called(ctx, curriculum, link).Error(0)
}
func (m *MockCurriculumRepo) GetByID(ctx context.Context, id string) (*domain.Curriculum, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Curriculum), args.Error(1)
}
func (m *MockCurriculumRepo) GetFull(ctx context.Context, id string) (*domain.CurriculumFull, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurriculumFull), args.Error(1)
}
func (m *MockCurriculumRepo) ListByUser(ctx context.Context, userID string) ([]domain.Curriculum, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Curriculum), args.Error(1)
}
func (m *MockCurriculumRepo) Update(ctx context.Context, curriculum *domain.Curriculum) error {
	return m.Called(ctx, curriculum).Error(0)
}
func (m *MockCurriculumRepo) UpdateStatus(ctx context.Context, id string, status domain.CurriculumStatus, at time.Time) error {
	return m.Called(ctx, id, status, at).Error(0)
}
func (m *MockCurriculumRepo) Touch(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}
func (m *MockCurriculumRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSectionRepo struct {
	mock.Mock
}

func (m *MockSectionRepo) CreateExperience(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockSectionRepo) UpdateExperience(ctx context.Context, e *domain.Experience) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) DeleteExperience(ctx context.Context, curriculumID string, id int64) (bool, error) {
	args := m.Called(ctx, curriculumID, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) CreateEducation(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockSectionRepo) UpdateEducation(ctx context.Context, e *domain.Education) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) DeleteEducation(ctx context.Context, curriculumID string, id int64) (bool, error) {
	args := m.Called(ctx, curriculumID, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) CreateSkill(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSectionRepo) UpdateSkill(ctx context.Context, s *domain.Skill) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) DeleteSkill(ctx context.Context, curriculumID string, id int64) (bool, error) {
	args := m.Called(ctx, curriculumID, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) CreateLanguage(ctx context.Context, l *domain.Language) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockSectionRepo) UpdateLanguage(ctx context.Context, l *domain.Language) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) DeleteLanguage(ctx context.Context, curriculumID string, id int64) (bool, error) {
	args := m.Called(ctx, curriculumID, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) CreateContact(ctx context.Context, c *domain.Contact) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockSectionRepo) UpdateContact(ctx context.Context, c *domain.Contact) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) DeleteContact(ctx context.Context, curriculumID string, id int64) (bool, error) {
	args := m.Called(ctx, curriculumID, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) CreateAddress(ctx context.Context, a *domain.Address) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockSectionRepo) UpdateAddress(ctx context.Context, a *domain.Address) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}
func (m *MockSectionRepo) DeleteAddress(ctx context.Context, curriculumID string, id int64) (bool, error) {
	args := m.Called(ctx, curriculumID, id)
	return args.Bool(0), args.Error(1)
}

type MockShortLinkRepo struct {
	mock.Mock
}

func (m *MockShortLinkRepo) Create(ctx context.Context, link *domain.ShortLink) error {
	return m.Called(ctx, link).Error(0)
}
func (m *MockShortLinkRepo) GetByID(ctx context.Context, id string) (*domain.ShortLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}
func (m *MockShortLinkRepo) GetActiveByHash(ctx context.Context, hash string) (*domain.ShortLink, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}
func (m *MockShortLinkRepo) Revoke(ctx context.Context, id string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}
func (m *MockShortLinkRepo) ListByCurriculum(ctx context.Context, curriculumID string) ([]domain.ShortLink, error) {
	args := m.Called(ctx, curriculumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShortLink), args.Error(1)
}

type MockAccessLogRepo struct {
	mock.Mock
}

func (m *MockAccessLogRepo) Create(ctx context.Context, log *domain.AccessLog) error {
	return m.Called(ctx, log).Error(0)
}
func (m *MockAccessLogRepo) ListByShortLink(ctx context.Context, shortLinkID string) ([]domain.AccessLog, error) {
	args := m.Called(ctx, shortLinkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccessLog), args.Error(1)
}

// seqGenerator hands out a fixed sequence of hashes so collision retries
// are deterministic. Repeats the last hash when the sequence runs out.
type seqGenerator struct {
	hashes []string
	next   int
}

func (g *seqGenerator) Generate(string) string {
	if g.next >= len(g.hashes) {
		return g.hashes[len(g.hashes)-1]
	}
	h := g.hashes[g.next]
	g.next++
	return h
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}
