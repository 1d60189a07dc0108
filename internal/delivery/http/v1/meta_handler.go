package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-course-advisor-backend/internal/delivery/http/response"
	"go-course-advisor-backend/internal/domain"
)

// MetaHandler serves the static vocabulary the frontend uses to build its
// forms.
type MetaHandler struct {
	recommendUC domain.RecommendationUsecase
	profileUC   domain.ProfileUsecase
	courseRepo  domain.CourseRepository
}

func NewMetaHandler(rg *gin.RouterGroup, recommendUC domain.RecommendationUsecase, profileUC domain.ProfileUsecase, courseRepo domain.CourseRepository) {
	handler := &MetaHandler{
		recommendUC: recommendUC,
		profileUC:   profileUC,
		courseRepo:  courseRepo,
	}

	meta := rg.Group("/meta")
	{
		meta.GET("/levels", handler.Levels)
		meta.GET("/categories", handler.Categories)
		meta.GET("/interests", handler.Interests)
	}
}

// Levels godoc
// @Summary      List the canonical education levels
// @Tags         meta
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /meta/levels [get]
func (h *MetaHandler) Levels(c *gin.Context) {
	response.Success(c, http.StatusOK, "Education levels retrieved", gin.H{
		"levels": h.recommendUC.EducationLevels(),
	})
}

// Categories godoc
// @Summary      List the categories present in the catalog
// @Tags         meta
// @Produce     json
// @Success      200  {object}  response.Response
// @Router       /meta/categories [get]
func (h *MetaHandler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, "Course categories retrieved", gin.H{
		"categories": h.courseRepo.Categories(),
	})
}

// Interests godoc
// @Summary      List common academic interests for suggestions
// @Tags         meta
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /meta/interests [get]
func (h *MetaHandler) Interests(c *gin.Context) {
	response.Success(c, http.StatusOK, "Common interests retrieved", gin.H{
		"interests": h.profileUC.CommonInterests(),
	})
}
