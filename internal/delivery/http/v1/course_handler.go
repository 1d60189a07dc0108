package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-course-advisor-backend/internal/delivery/http/response"
	"go-course-advisor-backend/internal/domain"
)

type CourseHandler struct {
	recommendUC domain.RecommendationUsecase
	advisorUC   domain.AdvisorUsecase
	courseRepo  domain.CourseRepository
}

func NewCourseHandler(rg *gin.RouterGroup, recommendUC domain.RecommendationUsecase, advisorUC domain.AdvisorUsecase, courseRepo domain.CourseRepository) {
	handler := &CourseHandler{
		recommendUC: recommendUC,
		advisorUC:   advisorUC,
		courseRepo:  courseRepo,
	}

	courses := rg.Group("/courses")
	{
		courses.GET("", handler.List)
		courses.GET("/search", handler.Search)
		courses.GET("/:id", handler.GetDetails)
	}
}

// List godoc
// @Summary      List the full course catalog
// @Tags         courses
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses := h.courseRepo.All()
	response.Success(c, http.StatusOK, "Courses retrieved", gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

// Search godoc
// @Summary      Search courses
// @Description  Filter by level, category, semester, or comma-separated keywords. The first non-empty criterion wins; with none, the full catalog is returned.
// @Tags         courses
// @Produce      json
// @Param        level     query     string  false  "Education level, e.g. 1st year"
// @Param        category  query     string  false  "Course category, e.g. Computer Science"
// @Param        semester  query     string  false  "Semester availability, e.g. Spring"
// @Param        keywords  query     string  false  "Comma-separated keywords"
// @Success      200       {object}  response.Response
// @Router       /courses/search [get]
func (h *CourseHandler) Search(c *gin.Context) {
	level := c.Query("level")
	category := c.Query("category")
	semester := c.Query("semester")
	keywords := c.Query("keywords")

	var courses []domain.CourseRecord
	switch {
	case level != "":
		courses = h.recommendUC.SearchByLevel(level)
	case category != "":
		courses = h.recommendUC.SearchByCategory(category)
	case semester != "":
		courses = h.recommendUC.SearchBySemester(semester)
	case keywords != "":
		var keywordList []string
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywordList = append(keywordList, kw)
			}
		}
		courses = h.recommendUC.SearchByKeywords(keywordList, 0)
	default:
		courses = h.courseRepo.All()
	}

	response.Success(c, http.StatusOK, "Courses retrieved", gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

// GetDetails godoc
// @Summary      Get one course with a generated explanation
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetDetails(c *gin.Context) {
	id := c.Param("id")

	details, err := h.advisorUC.CourseDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	course, _ := h.courseRepo.GetByID(id)

	response.Success(c, http.StatusOK, "Course details retrieved", gin.H{
		"course":         course,
		"course_id":      id,
		"course_details": details,
	})
}
