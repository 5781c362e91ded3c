package v1

import (
	"net/http"

	"github.com/scheffer1/CVFast-sub000/internal/delivery/http/response"
	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ShortLinkHandler struct {
	shortLinkUC domain.ShortLinkUsecase
	baseURL     string
}

// shortLinkView decorates a link with the ready-to-share address so the
// frontend never has to know the hash route.
type shortLinkView struct {
	domain.ShortLink
	ShareURL string `json:"share_url"`
}

func (h *ShortLinkHandler) view(link domain.ShortLink) shortLinkView {
	return shortLinkView{ShortLink: link, ShareURL: link.ShareURL(h.baseURL)}
}

func NewShortLinkHandler(public *gin.RouterGroup, protected *gin.RouterGroup, shortLinkUC domain.ShortLinkUsecase, accessLimiter gin.HandlerFunc, baseURL string) {
	handler := &ShortLinkHandler{shortLinkUC: shortLinkUC, baseURL: baseURL}

	// The share URL target. Anonymous, but OptionalAuth runs on the
	// public group so owners resolve their own non-active résumés.
	public.GET("/shortlinks/access/:hash", accessLimiter, handler.Access)

	links := protected.Group("/shortlinks")
	{
		links.POST("", handler.Create)
		links.PUT("/:id/revoke", handler.Revoke)
		links.GET("/:id/logs", handler.Logs)
		links.GET("/:id/logs/export", handler.ExportLogs)
		links.GET("/curriculum/:curriculumId", handler.ListByCurriculum)
	}
}

// resolveHash runs the resolution gateway for both public entry points so
// they cannot drift apart in policy.
func resolveHash(c *gin.Context, uc domain.ShortLinkUsecase) {
	ip := c.ClientIP()

	var userAgent *string
	if ua := c.Request.UserAgent(); ua != "" {
		userAgent = &ua
	}

	full, err := uc.Resolve(c.Request.Context(), c.Param("hash"), ip, userAgent)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Curriculum", full)
}

// Access godoc
// @Summary      Resolve a share hash to a résumé
// @Description  Anonymous read path for share URLs; records an access log entry
// @Tags         shortlinks
// @Produce      json
// @Param        hash  path      string  true  "Share hash"
// @Success      200  {object}  response.Response{data=domain.CurriculumFull}
// @Failure      404  {object}  response.Response
// @Router       /shortlinks/access/{hash} [get]
func (h *ShortLinkHandler) Access(c *gin.Context) {
	resolveHash(c, h.shortLinkUC)
}

// Create godoc
// @Summary      Issue an extra share link
// @Tags         shortlinks
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.CreateShortLinkInput  true  "Target curriculum"
// @Success      201  {object}  response.Response{data=domain.ShortLink}  "Includes the assembled share_url"
// @Failure      404  {object}  response.Response
// @Router       /shortlinks [post]
// @Security     BearerAuth
func (h *ShortLinkHandler) Create(c *gin.Context) {
	var input domain.CreateShortLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	link, err := h.shortLinkUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Short link created", h.view(*link))
}

// Revoke godoc
// @Summary      Revoke a share link
// @Description  One-way transition; repeating the call is a no-op
// @Tags         shortlinks
// @Produce      json
// @Param        id   path      string  true  "Short link ID"
// @Success      200  {object}  response.Response{data=map[string]bool}
// @Failure      404  {object}  response.Response
// @Router       /shortlinks/{id}/revoke [put]
// @Security     BearerAuth
func (h *ShortLinkHandler) Revoke(c *gin.Context) {
	revoked, err := h.shortLinkUC.Revoke(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	message := "Short link revoked"
	if !revoked {
		message = "Short link was already revoked"
	}
	response.Success(c, http.StatusOK, message, gin.H{"revoked": revoked})
}

// Logs godoc
// @Summary      List access logs for a share link
// @Tags         shortlinks
// @Produce      json
// @Param        id   path      string  true  "Short link ID"
// @Success      200  {object}  response.Response{data=[]domain.AccessLog}
// @Failure      404  {object}  response.Response
// @Router       /shortlinks/{id}/logs [get]
// @Security     BearerAuth
func (h *ShortLinkHandler) Logs(c *gin.Context) {
	logs, err := h.shortLinkUC.Logs(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Access logs", logs)
}

// ExportLogs godoc
// @Summary      Download access logs as XLSX
// @Tags         shortlinks
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "Short link ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Response
// @Router       /shortlinks/{id}/logs/export [get]
// @Security     BearerAuth
func (h *ShortLinkHandler) ExportLogs(c *gin.Context) {
	data, filename, err := h.shortLinkUC.ExportLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ListByCurriculum godoc
// @Summary      List every share link of a résumé
// @Description  Includes revoked links; owners audit their full history here
// @Tags         shortlinks
// @Produce      json
// @Param        curriculumId  path      string  true  "Curriculum ID"
// @Success      200  {object}  response.Response{data=[]domain.ShortLink}
// @Failure      404  {object}  response.Response
// @Router       /shortlinks/curriculum/{curriculumId} [get]
// @Security     BearerAuth
func (h *ShortLinkHandler) ListByCurriculum(c *gin.Context) {
	links, err := h.shortLinkUC.ListByCurriculum(c.Request.Context(), c.Param("curriculumId"))
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]shortLinkView, 0, len(links))
	for _, link := range links {
		views = append(views, h.view(link))
	}
	response.Success(c, http.StatusOK, "Short links", views)
}
