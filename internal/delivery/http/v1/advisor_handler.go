package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-course-advisor-backend/internal/delivery/http/response"
	"go-course-advisor-backend/internal/domain"
	"go-course-advisor-backend/pkg/apperror"
)

type AdvisorHandler struct {
	advisorUC domain.AdvisorUsecase
}

func NewAdvisorHandler(rg *gin.RouterGroup, advisorUC domain.AdvisorUsecase) {
	handler := &AdvisorHandler{advisorUC: advisorUC}

	rg.POST("/recommendations", handler.Recommend)
	rg.POST("/chat", handler.Chat)
}

type RecommendRequest struct {
	EducationLevel string                `json:"education_level"`
	Interests      domain.InterestsInput `json:"interests"`
	CareerGoal     string                `json:"career_goal"`
	AdditionalInfo string                `json:"additional_info"`
	CourseCount    int                   `json:"course_count"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// bindingErrorMessage turns gin's binding failure into a field-level message
// when the validator produced one, and a generic message otherwise.
func bindingErrorMessage(err error, fallback string) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		e := validationErrors[0]
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("Field '%s' is required", strings.ToLower(e.Field()))
		case "max":
			return fmt.Sprintf("Field '%s' must be at most %s characters", strings.ToLower(e.Field()), e.Param())
		}
	}
	return fallback
}

// Recommend godoc
// @Summary      Get course recommendations
// @Description  Match a student profile against the catalog and generate advice
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        profile  body      RecommendRequest  true  "Student profile"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /advisor/recommendations [post]
func (h *AdvisorHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("No input data provided"))
		return
	}

	raw := domain.RawProfileInput{
		EducationLevel: req.EducationLevel,
		Interests:      req.Interests,
		CareerGoal:     req.CareerGoal,
		AdditionalInfo: req.AdditionalInfo,
		CourseCount:    req.CourseCount,
	}
	if raw.IsEmpty() {
		c.Error(apperror.BadRequest("No input data provided"))
		return
	}

	recommendation, err := h.advisorUC.RecommendWithAdvice(c.Request.Context(), raw)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations generated", recommendation)
}

// Chat godoc
// @Summary      Chat with the advisor
// @Description  Free-form conversation with the academic advisor
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        chat  body      ChatRequest  true  "Chat message"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /advisor/chat [post]
func (h *AdvisorHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindingErrorMessage(err, "No message provided")))
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.Error(apperror.BadRequest("No message provided"))
		return
	}

	reply, err := h.advisorUC.Chat(c.Request.Context(), message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Chat response generated", gin.H{
		"response": reply,
	})
}
