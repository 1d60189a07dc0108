package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-course-advisor-backend/internal/domain"
	"go-course-advisor-backend/internal/usecase"
	"go-course-advisor-backend/pkg/apperror"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) IsConfigured() bool {
	return m.Called().Bool(0)
}

func newAdvisor(generator domain.TextGenerator, courses ...domain.CourseRecord) domain.AdvisorUsecase {
	repo := &stubCatalog{courses: courses}
	return usecase.NewAdvisorUsecase(
		repo,
		usecase.NewRecommendationUsecase(repo),
		usecase.NewProfileUsecase(),
		generator,
	)
}

func sampleRaw() domain.RawProfileInput {
	return domain.RawProfileInput{
		EducationLevel: "freshman",
		Interests:      domain.InterestsInput{FreeText: "programming, art"},
		CareerGoal:     "software engineer",
	}
}

func TestRecommendWithAdvice(t *testing.T) {
	t.Run("Should return generated advice when the generator succeeds", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(true)
		generator.On("Generate", mock.Anything, mock.Anything).Return("Take CS101 first.", nil)

		advisor := newAdvisor(generator, smallCatalog()...)
		rec, err := advisor.RecommendWithAdvice(context.Background(), sampleRaw())

		assert.NoError(t, err)
		assert.Equal(t, "Take CS101 first.", rec.Advice)
		assert.True(t, rec.AdviceGenerated)
		assert.Equal(t, len(rec.Courses), rec.Count)
		assert.Equal(t, "1st year", rec.Profile.EducationLevel)
		assert.Equal(t, "CS101", rec.Courses[0].ID)
		generator.AssertExpectations(t)
	})

	t.Run("Generator failure degrades to fallback advice, not an error", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(true)
		generator.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

		advisor := newAdvisor(generator, smallCatalog()...)
		rec, err := advisor.RecommendWithAdvice(context.Background(), sampleRaw())

		assert.NoError(t, err)
		assert.False(t, rec.AdviceGenerated)
		assert.Contains(t, rec.Advice, "Please try again")
		assert.NotEmpty(t, rec.Courses)
	})

	t.Run("Unconfigured generator is never called and gets its own notice", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(false)

		advisor := newAdvisor(generator, smallCatalog()...)
		rec, err := advisor.RecommendWithAdvice(context.Background(), sampleRaw())

		assert.NoError(t, err)
		assert.False(t, rec.AdviceGenerated)
		assert.Equal(t, "I'm sorry, the course advisor system is not available right now.", rec.Advice)
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Empty catalog with a failing generator yields the no-courses guidance", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(true)
		generator.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

		advisor := newAdvisor(generator)
		rec, err := advisor.RecommendWithAdvice(context.Background(), sampleRaw())

		assert.NoError(t, err)
		assert.Empty(t, rec.Courses)
		assert.Zero(t, rec.Count)
		assert.Contains(t, rec.Advice, "general suggestions")
		assert.False(t, rec.AdviceGenerated)
	})

	t.Run("Requested course count truncates the result", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(false)

		advisor := newAdvisor(generator, smallCatalog()...)
		raw := sampleRaw()
		raw.CourseCount = 1
		rec, err := advisor.RecommendWithAdvice(context.Background(), raw)

		assert.NoError(t, err)
		assert.Len(t, rec.Courses, 1)
		assert.Equal(t, 1, rec.Count)
	})

	t.Run("Absent course count defaults to ten", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(false)

		var catalog []domain.CourseRecord
		for i := 1; i <= 15; i++ {
			catalog = append(catalog, domain.CourseRecord{
				ID:    fmt.Sprintf("C%02d", i),
				Title: fmt.Sprintf("Course %d", i),
				Level: "1st year",
			})
		}
		advisor := newAdvisor(generator, catalog...)
		rec, err := advisor.RecommendWithAdvice(context.Background(), domain.RawProfileInput{
			EducationLevel: "1st year",
		})

		assert.NoError(t, err)
		assert.Len(t, rec.Courses, 10)
		assert.Equal(t, 10, rec.Count)
	})

	t.Run("Validation and summary travel with the recommendation", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(false)

		advisor := newAdvisor(generator, smallCatalog()...)
		rec, err := advisor.RecommendWithAdvice(context.Background(), domain.RawProfileInput{
			Interests: domain.InterestsInput{FreeText: "programming"},
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, rec.Validation.Warnings)
		assert.Empty(t, rec.Validation.Errors)
		assert.Contains(t, rec.ProfileSummary, "programming")
		assert.Len(t, rec.Suggestions, 2)
	})
}

func TestChat(t *testing.T) {
	t.Run("Should relay the generated reply", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(true)
		generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, "Which courses suit a beginner?")
		})).Return("Happy to help!", nil)

		advisor := newAdvisor(generator)
		reply, err := advisor.Chat(context.Background(), "Which courses suit a beginner?")

		assert.NoError(t, err)
		assert.Equal(t, "Happy to help!", reply)
	})

	t.Run("Unconfigured generator returns the unavailable notice", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(false)

		advisor := newAdvisor(generator)
		reply, err := advisor.Chat(context.Background(), "hello")

		assert.NoError(t, err)
		assert.Equal(t, "I'm sorry, the advisor chat is not available right now.", reply)
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Generation failure returns the retry notice without an error", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(true)
		generator.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

		advisor := newAdvisor(generator)
		reply, err := advisor.Chat(context.Background(), "hello")

		assert.NoError(t, err)
		assert.Contains(t, reply, "try asking your question again")
	})
}

func TestCourseDetails(t *testing.T) {
	t.Run("Unknown id returns not found", func(t *testing.T) {
		generator := new(MockGenerator)
		advisor := newAdvisor(generator, smallCatalog()...)

		_, err := advisor.CourseDetails(context.Background(), "NOPE999")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Unconfigured generator falls back to the plain field block", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(false)

		advisor := newAdvisor(generator, smallCatalog()...)
		details, err := advisor.CourseDetails(context.Background(), "CS101")

		assert.NoError(t, err)
		assert.Contains(t, details, "Here's the basic information for Intro to Programming:")
		assert.Contains(t, details, "Course: Intro to Programming (CS101)")
		assert.Contains(t, details, "Prerequisites: None")
	})

	t.Run("Generated details are returned verbatim", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(true)
		generator.On("Generate", mock.Anything, mock.Anything).Return("An inviting first course.", nil)

		advisor := newAdvisor(generator, smallCatalog()...)
		details, err := advisor.CourseDetails(context.Background(), "CS101")

		assert.NoError(t, err)
		assert.Equal(t, "An inviting first course.", details)
	})

	t.Run("Generation failure falls back to the plain field block", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("IsConfigured").Return(true)
		generator.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("backend down"))

		advisor := newAdvisor(generator, smallCatalog()...)
		details, err := advisor.CourseDetails(context.Background(), "CS101")

		assert.NoError(t, err)
		assert.Contains(t, details, "Here's the basic information for Intro to Programming:")
	})
}
