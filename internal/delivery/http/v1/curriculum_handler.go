package v1

import (
	"net/http"

	"github.com/scheffer1/CVFast-sub000/internal/delivery/http/response"
	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CurriculumHandler struct {
	curriculumUC domain.CurriculumUsecase
	shortLinkUC  domain.ShortLinkUsecase
}

func NewCurriculumHandler(public *gin.RouterGroup, protected *gin.RouterGroup, curriculumUC domain.CurriculumUsecase, shortLinkUC domain.ShortLinkUsecase) {
	handler := &CurriculumHandler{curriculumUC: curriculumUC, shortLinkUC: shortLinkUC}

	// Alternate resolution entry point; OptionalAuth on the public group
	// lets the owner view non-active résumés through it.
	public.GET("/curriculums/shortlink/:hash", handler.ResolveByHash)

	curriculums := protected.Group("/curriculums")
	{
		curriculums.POST("", handler.Create)
		curriculums.GET("", handler.List)
		curriculums.GET("/:id", handler.Get)
		curriculums.PUT("/:id", handler.Update)
		curriculums.PUT("/:id/status", handler.UpdateStatus)
		curriculums.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create a résumé
// @Description  Creates the curriculum together with its first share link
// @Tags         curriculums
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.CreateCurriculumInput  true  "Curriculum data"
// @Success      201  {object}  response.Response{data=domain.CurriculumFull}
// @Failure      400  {object}  response.Response
// @Router       /curriculums [post]
// @Security     BearerAuth
func (h *CurriculumHandler) Create(c *gin.Context) {
	var input domain.CreateCurriculumInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	full, err := h.curriculumUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Curriculum created", full)
}

// List godoc
// @Summary      List own résumés
// @Tags         curriculums
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Curriculum}
// @Router       /curriculums [get]
// @Security     BearerAuth
func (h *CurriculumHandler) List(c *gin.Context) {
	list, err := h.curriculumUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Curriculums", list)
}

// Get godoc
// @Summary      Get one résumé with all sections
// @Tags         curriculums
// @Produce      json
// @Param        id   path      string  true  "Curriculum ID"
// @Success      200  {object}  response.Response{data=domain.CurriculumFull}
// @Failure      404  {object}  response.Response
// @Router       /curriculums/{id} [get]
// @Security     BearerAuth
func (h *CurriculumHandler) Get(c *gin.Context) {
	full, err := h.curriculumUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Curriculum", full)
}

// Update godoc
// @Summary      Update résumé title and summary
// @Tags         curriculums
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Curriculum ID"
// @Param        payload  body      domain.UpdateCurriculumInput  true  "Curriculum data"
// @Success      200  {object}  response.Response{data=domain.Curriculum}
// @Failure      404  {object}  response.Response
// @Router       /curriculums/{id} [put]
// @Security     BearerAuth
func (h *CurriculumHandler) Update(c *gin.Context) {
	var input domain.UpdateCurriculumInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	curriculum, err := h.curriculumUC.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Curriculum updated", curriculum)
}

type updateStatusRequest struct {
	Status domain.CurriculumStatus `json:"status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Change résumé visibility status
// @Tags         curriculums
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Curriculum ID"
// @Param        payload  body      updateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /curriculums/{id}/status [put]
// @Security     BearerAuth
func (h *CurriculumHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	if err := h.curriculumUC.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status updated", nil)
}

// Delete godoc
// @Summary      Delete a résumé
// @Description  Removes the curriculum with its sections, links and logs
// @Tags         curriculums
// @Produce      json
// @Param        id   path      string  true  "Curriculum ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /curriculums/{id} [delete]
// @Security     BearerAuth
func (h *CurriculumHandler) Delete(c *gin.Context) {
	if err := h.curriculumUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Curriculum deleted", nil)
}

// ResolveByHash godoc
// @Summary      Resolve a share hash to a résumé
// @Description  Anonymous read path; owner credentials unlock non-active résumés
// @Tags         curriculums
// @Produce      json
// @Param        hash  path      string  true  "Share hash"
// @Success      200  {object}  response.Response{data=domain.CurriculumFull}
// @Failure      404  {object}  response.Response
// @Router       /curriculums/shortlink/{hash} [get]
func (h *CurriculumHandler) ResolveByHash(c *gin.Context) {
	resolveHash(c, h.shortLinkUC)
}
