package v1

import (
	"net/http"
	"strconv"

	"github.com/scheffer1/CVFast-sub000/internal/delivery/http/response"
	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// SectionHandler exposes the CRUD trio for every curriculum child entity.
// The parent's updated_at moves through the CurriculumTouched event inside
// the usecase, so there is no timestamp plumbing here.
type SectionHandler struct {
	sectionUC domain.SectionUsecase
}

func NewSectionHandler(protected *gin.RouterGroup, sectionUC domain.SectionUsecase) {
	handler := &SectionHandler{sectionUC: sectionUC}

	curriculums := protected.Group("/curriculums/:id")
	{
		curriculums.POST("/experiences", handler.AddExperience)
		curriculums.PUT("/experiences/:childId", handler.UpdateExperience)
		curriculums.DELETE("/experiences/:childId", handler.RemoveExperience)

		curriculums.POST("/educations", handler.AddEducation)
		curriculums.PUT("/educations/:childId", handler.UpdateEducation)
		curriculums.DELETE("/educations/:childId", handler.RemoveEducation)

		curriculums.POST("/skills", handler.AddSkill)
		curriculums.PUT("/skills/:childId", handler.UpdateSkill)
		curriculums.DELETE("/skills/:childId", handler.RemoveSkill)

		curriculums.POST("/languages", handler.AddLanguage)
		curriculums.PUT("/languages/:childId", handler.UpdateLanguage)
		curriculums.DELETE("/languages/:childId", handler.RemoveLanguage)

		curriculums.POST("/contacts", handler.AddContact)
		curriculums.PUT("/contacts/:childId", handler.UpdateContact)
		curriculums.DELETE("/contacts/:childId", handler.RemoveContact)

		curriculums.POST("/addresses", handler.AddAddress)
		curriculums.PUT("/addresses/:childId", handler.UpdateAddress)
		curriculums.DELETE("/addresses/:childId", handler.RemoveAddress)
	}
}

func childID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("childId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid child entity id"))
		return 0, false
	}
	return id, true
}

// AddExperience godoc
// @Summary      Add a work experience to a résumé
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Curriculum ID"
// @Param        payload  body      domain.Experience  true  "Experience data"
// @Success      201  {object}  response.Response{data=domain.Experience}
// @Failure      404  {object}  response.Response
// @Router       /curriculums/{id}/experiences [post]
// @Security     BearerAuth
func (h *SectionHandler) AddExperience(c *gin.Context) {
	var input domain.Experience
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	created, err := h.sectionUC.AddExperience(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", created)
}

// UpdateExperience godoc
// @Summary      Update a work experience
// @Tags         sections
// @Router       /curriculums/{id}/experiences/{childId} [put]
// @Security     BearerAuth
func (h *SectionHandler) UpdateExperience(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	var input domain.Experience
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	updated, err := h.sectionUC.UpdateExperience(c.Request.Context(), c.Param("id"), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", updated)
}

// RemoveExperience godoc
// @Summary      Remove a work experience
// @Tags         sections
// @Router       /curriculums/{id}/experiences/{childId} [delete]
// @Security     BearerAuth
func (h *SectionHandler) RemoveExperience(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	if err := h.sectionUC.RemoveExperience(c.Request.Context(), c.Param("id"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience removed", nil)
}

func (h *SectionHandler) AddEducation(c *gin.Context) {
	var input domain.Education
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	created, err := h.sectionUC.AddEducation(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added", created)
}

func (h *SectionHandler) UpdateEducation(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	var input domain.Education
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	updated, err := h.sectionUC.UpdateEducation(c.Request.Context(), c.Param("id"), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", updated)
}

func (h *SectionHandler) RemoveEducation(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	if err := h.sectionUC.RemoveEducation(c.Request.Context(), c.Param("id"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education removed", nil)
}

func (h *SectionHandler) AddSkill(c *gin.Context) {
	var input domain.Skill
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	created, err := h.sectionUC.AddSkill(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill added", created)
}

func (h *SectionHandler) UpdateSkill(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	var input domain.Skill
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	updated, err := h.sectionUC.UpdateSkill(c.Request.Context(), c.Param("id"), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", updated)
}

func (h *SectionHandler) RemoveSkill(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	if err := h.sectionUC.RemoveSkill(c.Request.Context(), c.Param("id"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", nil)
}

func (h *SectionHandler) AddLanguage(c *gin.Context) {
	var input domain.Language
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	created, err := h.sectionUC.AddLanguage(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Language added", created)
}

func (h *SectionHandler) UpdateLanguage(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	var input domain.Language
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	updated, err := h.sectionUC.UpdateLanguage(c.Request.Context(), c.Param("id"), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language updated", updated)
}

func (h *SectionHandler) RemoveLanguage(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	if err := h.sectionUC.RemoveLanguage(c.Request.Context(), c.Param("id"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language removed", nil)
}

func (h *SectionHandler) AddContact(c *gin.Context) {
	var input domain.Contact
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	created, err := h.sectionUC.AddContact(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Contact added", created)
}

func (h *SectionHandler) UpdateContact(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	var input domain.Contact
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	updated, err := h.sectionUC.UpdateContact(c.Request.Context(), c.Param("id"), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact updated", updated)
}

func (h *SectionHandler) RemoveContact(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	if err := h.sectionUC.RemoveContact(c.Request.Context(), c.Param("id"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact removed", nil)
}

func (h *SectionHandler) AddAddress(c *gin.Context) {
	var input domain.Address
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	created, err := h.sectionUC.AddAddress(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Address added", created)
}

func (h *SectionHandler) UpdateAddress(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	var input domain.Address
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request payload"))
		return
	}

	updated, err := h.sectionUC.UpdateAddress(c.Request.Context(), c.Param("id"), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Address updated", updated)
}

func (h *SectionHandler) RemoveAddress(c *gin.Context) {
	id, ok := childID(c)
	if !ok {
		return
	}
	if err := h.sectionUC.RemoveAddress(c.Request.Context(), c.Param("id"), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Address removed", nil)
}
