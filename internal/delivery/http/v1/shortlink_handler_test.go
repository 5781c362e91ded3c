package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scheffer1/CVFast-sub000/internal/delivery/http/middleware"
	v1 "github.com/scheffer1/CVFast-sub000/internal/delivery/http/v1"
	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockShortLinkUC struct {
	mock.Mock
}

func (m *MockShortLinkUC) Create(ctx context.Context, input domain.CreateShortLinkInput) (*domain.ShortLink, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}
func (m *MockShortLinkUC) Revoke(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockShortLinkUC) ListByCurriculum(ctx context.Context, curriculumID string) ([]domain.ShortLink, error) {
	args := m.Called(ctx, curriculumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShortLink), args.Error(1)
}
func (m *MockShortLinkUC) Logs(ctx context.Context, shortLinkID string) ([]domain.AccessLog, error) {
	args := m.Called(ctx, shortLinkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccessLog), args.Error(1)
}
func (m *MockShortLinkUC) ExportLogs(ctx context.Context, shortLinkID string) ([]byte, string, error) {
	args := m.Called(ctx, shortLinkID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
func (m *MockShortLinkUC) Resolve(ctx context.Context, hash string, ip string, userAgent *string) (*domain.CurriculumFull, error) {
	args := m.Called(ctx, hash, ip, userAgent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurriculumFull), args.Error(1)
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    []string        `json:"errors"`
	RequestID string          `json:"request_id"`
}

func newAccessRouter(uc domain.ShortLinkUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	public := r.Group("/api")
	protected := r.Group("/api")
	noLimit := func(c *gin.Context) { c.Next() }
	v1.NewShortLinkHandler(public, protected, uc, noLimit, "http://localhost:8080")
	return r
}

func TestAccessEndpoint(t *testing.T) {
	t.Run("Should wrap the résumé in the standard envelope", func(t *testing.T) {
		mockUC := new(MockShortLinkUC)
		mockUC.On("Resolve", mock.Anything, "hashAAAA", mock.Anything, mock.Anything).
			Return(&domain.CurriculumFull{Curriculum: domain.Curriculum{ID: "c1", Title: "Mine"}}, nil)

		router := newAccessRouter(mockUC)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/shortlinks/access/hashAAAA", nil)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.RequestID)

		var full domain.CurriculumFull
		assert.NoError(t, json.Unmarshal(body.Data, &full))
		assert.Equal(t, "c1", full.ID)
	})

	t.Run("Should pass the user agent through to resolution", func(t *testing.T) {
		mockUC := new(MockShortLinkUC)
		var seenUA *string
		mockUC.On("Resolve", mock.Anything, "hashAAAA", mock.Anything, mock.Anything).
			Return(&domain.CurriculumFull{}, nil).
			Run(func(args mock.Arguments) {
				if ua, ok := args.Get(3).(*string); ok {
					seenUA = ua
				}
			})

		router := newAccessRouter(mockUC)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/shortlinks/access/hashAAAA", nil)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.NotNil(t, seenUA)
		assert.Equal(t, "test-agent", *seenUA)
	})

	t.Run("Should render not-found through the error middleware", func(t *testing.T) {
		mockUC := new(MockShortLinkUC)
		mockUC.On("Resolve", mock.Anything, "nosuch00", mock.Anything, mock.Anything).
			Return(nil, apperror.NotFound("Short link not found"))

		router := newAccessRouter(mockUC)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/shortlinks/access/nosuch00", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Short link not found", body.Message)
	})
}

func TestCreateEndpoint(t *testing.T) {
	t.Run("Should assemble the share URL from the base", func(t *testing.T) {
		mockUC := new(MockShortLinkUC)
		mockUC.On("Create", mock.Anything, mock.Anything).
			Return(&domain.ShortLink{ID: "l1", CurriculumID: "c1", Hash: "hashAAAA"}, nil)

		router := newAccessRouter(mockUC)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/shortlinks",
			strings.NewReader(`{"curriculum_id":"11111111-2222-3333-4444-555555555555"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		var view struct {
			Hash     string `json:"hash"`
			ShareURL string `json:"share_url"`
		}
		assert.NoError(t, json.Unmarshal(body.Data, &view))
		assert.Equal(t, "http://localhost:8080/api/shortlinks/access/hashAAAA", view.ShareURL)
	})
}

func TestRevokeEndpoint(t *testing.T) {
	t.Run("Should distinguish first revoke from repeat in the message", func(t *testing.T) {
		mockUC := new(MockShortLinkUC)
		mockUC.On("Revoke", mock.Anything, "l1").Return(true, nil).Once()
		mockUC.On("Revoke", mock.Anything, "l1").Return(false, nil)

		router := newAccessRouter(mockUC)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/shortlinks/l1/revoke", nil))
		var body envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Short link revoked", body.Message)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/shortlinks/l1/revoke", nil))
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Short link was already revoked", body.Message)
	})
}

func TestExportEndpoint(t *testing.T) {
	mockUC := new(MockShortLinkUC)
	mockUC.On("ExportLogs", mock.Anything, "l1").
		Return([]byte("PK-fake"), "access-logs-hashAAAA.xlsx", nil)

	router := newAccessRouter(mockUC)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shortlinks/l1/logs/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "access-logs-hashAAAA.xlsx")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
}
