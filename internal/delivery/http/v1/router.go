package v1

import (
	"net/http"
	"time"

	"github.com/scheffer1/CVFast-sub000/config"
	"github.com/scheffer1/CVFast-sub000/internal/delivery/http/middleware"
	"github.com/scheffer1/CVFast-sub000/internal/delivery/http/response"
	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	CurriculumUC domain.CurriculumUsecase
	SectionUC    domain.SectionUsecase
	ShortLinkUC  domain.ShortLinkUsecase
	Tokens       *auth.Manager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run before anything that can short-circuit.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	loginLimiter := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))
	accessLimiter := middleware.RateLimitMiddleware(
		middleware.AccessRateLimitConfig(deps.Config.RateLimitAccessThreshold, window))

	// Public routes carry optional auth so resolution can see owners of
	// non-active résumés without requiring a token from anyone else.
	public := api.Group("")
	public.Use(middleware.OptionalAuth(deps.Tokens))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(api, protected, deps.AuthUC, loginLimiter)
		NewCurriculumHandler(public, protected, deps.CurriculumUC, deps.ShortLinkUC)
		NewSectionHandler(protected, deps.SectionUC)
		NewShortLinkHandler(public, protected, deps.ShortLinkUC, accessLimiter, deps.Config.BaseURL)
	}

	return r
}
