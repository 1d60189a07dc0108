package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-course-advisor-backend/config"
	"go-course-advisor-backend/internal/delivery/http/middleware"
	"go-course-advisor-backend/internal/delivery/http/response"
	"go-course-advisor-backend/internal/domain"
)

type RouterDeps struct {
	AdvisorUC   domain.AdvisorUsecase
	RecommendUC domain.RecommendationUsecase
	ProfileUC   domain.ProfileUsecase
	CourseRepo  domain.CourseRepository
	Generator   domain.TextGenerator
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", gin.H{
			"status":            "healthy",
			"advisor_available": deps.Generator.IsConfigured(),
			"course_count":      deps.CourseRepo.Count(),
		})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Advisor endpoints cost a generation call each; they get their own
	// tighter limit on top of the global one.
	advisor := v1.Group("/advisor")
	advisor.Use(middleware.RateLimitMiddleware(middleware.AdvisorRateLimitConfig(deps.Config)))
	NewAdvisorHandler(advisor, deps.AdvisorUC)

	NewCourseHandler(v1, deps.RecommendUC, deps.AdvisorUC, deps.CourseRepo)
	NewMetaHandler(v1, deps.RecommendUC, deps.ProfileUC, deps.CourseRepo)

	return r
}
