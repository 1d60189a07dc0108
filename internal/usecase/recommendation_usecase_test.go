package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-course-advisor-backend/internal/domain"
	"go-course-advisor-backend/internal/usecase"
)

// stubCatalog is a slice-backed CourseRepository for exercising the search
// passes without touching the filesystem.
type stubCatalog struct {
	courses []domain.CourseRecord
}

func (s *stubCatalog) All() []domain.CourseRecord { return s.courses }

func (s *stubCatalog) GetByID(id string) (*domain.CourseRecord, bool) {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i], true
		}
	}
	return nil, false
}

func (s *stubCatalog) Count() int { return len(s.courses) }

func (s *stubCatalog) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, c := range s.courses {
		if _, ok := seen[c.Category]; !ok && c.Category != "" {
			seen[c.Category] = struct{}{}
			categories = append(categories, c.Category)
		}
	}
	return categories
}

func newRecommender(courses ...domain.CourseRecord) domain.RecommendationUsecase {
	return usecase.NewRecommendationUsecase(&stubCatalog{courses: courses})
}

func smallCatalog() []domain.CourseRecord {
	return []domain.CourseRecord{
		{
			ID:          "CS101",
			Title:       "Intro to Programming",
			Description: "Learn to write your first programs.",
			Category:    "Computer Science",
			Level:       "1st year",
			Keywords:    []string{"programming", "software"},
			Semesters:   []string{"Fall", "Spring"},
		},
		{
			ID:          "BUS200",
			Title:       "Business Basics",
			Description: "Foundations of modern business practice.",
			Category:    "Business",
			Level:       "2nd year",
			Keywords:    []string{"business", "management"},
			Semesters:   []string{"Fall"},
		},
		{
			ID:          "ART150",
			Title:       "Visual Arts Studio",
			Description: "Hands-on studio work in drawing and painting.",
			Category:    "Fine Arts",
			Level:       "1st year",
			Keywords:    []string{"art", "creative"},
			Semesters:   []string{"Spring"},
		},
	}
}

func courseIDs(courses []domain.CourseRecord) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestRecommend(t *testing.T) {
	t.Run("Matched courses come first, backfill follows, wrong level excluded", func(t *testing.T) {
		uc := newRecommender(smallCatalog()...)
		recommended := uc.Recommend(domain.StudentProfile{
			EducationLevel:      "1st year",
			Interests:           []string{"programming"},
			PreferredCategories: []string{"Computer Science"},
		})

		assert.Equal(t, []string{"CS101", "ART150"}, courseIDs(recommended))
		assert.NotContains(t, courseIDs(recommended), "BUS200")
	})

	t.Run("Empty profile returns the whole catalog in order", func(t *testing.T) {
		uc := newRecommender(smallCatalog()...)
		recommended := uc.Recommend(domain.StudentProfile{})

		assert.Equal(t, []string{"CS101", "BUS200", "ART150"}, courseIDs(recommended))
	})

	t.Run("Result is capped at twelve distinct courses", func(t *testing.T) {
		var catalog []domain.CourseRecord
		for i := 1; i <= 15; i++ {
			catalog = append(catalog, domain.CourseRecord{
				ID:       fmt.Sprintf("C%02d", i),
				Title:    fmt.Sprintf("Course %d", i),
				Category: "Computer Science",
				Level:    "1st year",
			})
		}
		uc := newRecommender(catalog...)
		recommended := uc.Recommend(domain.StudentProfile{EducationLevel: "1st year"})

		assert.Len(t, recommended, 12)
		seen := make(map[string]struct{})
		for _, c := range recommended {
			_, dup := seen[c.ID]
			assert.False(t, dup, "duplicate id %s", c.ID)
			seen[c.ID] = struct{}{}
		}
		assert.Equal(t, "C01", recommended[0].ID)
		assert.Equal(t, "C12", recommended[11].ID)
	})

	t.Run("Backfill is skipped once the passes reach eight courses", func(t *testing.T) {
		var catalog []domain.CourseRecord
		for i := 1; i <= 5; i++ {
			catalog = append(catalog, domain.CourseRecord{
				ID:    fmt.Sprintf("A%d", i),
				Title: fmt.Sprintf("Alpha Topics %d", i),
				Level: "1st year",
			})
		}
		for i := 1; i <= 5; i++ {
			catalog = append(catalog, domain.CourseRecord{
				ID:    fmt.Sprintf("B%d", i),
				Title: fmt.Sprintf("Beta Topics %d", i),
				Level: "1st year",
			})
		}
		catalog = append(catalog,
			domain.CourseRecord{ID: "N1", Title: "Unrelated One", Level: "1st year"},
			domain.CourseRecord{ID: "N2", Title: "Unrelated Two", Level: "1st year"},
		)

		uc := newRecommender(catalog...)
		recommended := uc.Recommend(domain.StudentProfile{
			EducationLevel: "1st year",
			Interests:      []string{"alpha", "beta"},
		})

		assert.Len(t, recommended, 10)
		assert.NotContains(t, courseIDs(recommended), "N1")
		assert.NotContains(t, courseIDs(recommended), "N2")
	})

	t.Run("Career goal matches lead the result", func(t *testing.T) {
		uc := newRecommender(smallCatalog()...)
		recommended := uc.Recommend(domain.StudentProfile{CareerGoal: "software engineer"})

		assert.Equal(t, "CS101", recommended[0].ID)
	})

	t.Run("Unmapped career goal falls back to its own words", func(t *testing.T) {
		catalog := append(smallCatalog(), domain.CourseRecord{
			ID:          "AST300",
			Title:       "Observational Techniques",
			Description: "A survey of astronomy and the instruments behind it.",
			Category:    "Natural Sciences",
			Level:       "3rd year",
		})
		uc := newRecommender(catalog...)
		recommended := uc.Recommend(domain.StudentProfile{CareerGoal: "astronomy enthusiast"})

		assert.Equal(t, "AST300", recommended[0].ID)
	})

	t.Run("Same profile twice gives identical ordering", func(t *testing.T) {
		uc := newRecommender(smallCatalog()...)
		profile := domain.StudentProfile{
			EducationLevel:      "1st year",
			Interests:           []string{"programming", "art"},
			CareerGoal:          "software engineer",
			PreferredCategories: []string{"Computer Science", "Fine Arts"},
		}

		assert.Equal(t, courseIDs(uc.Recommend(profile)), courseIDs(uc.Recommend(profile)))
	})
}

func TestSearchByLevel(t *testing.T) {
	uc := newRecommender(smallCatalog()...)

	t.Run("Synonyms map to canonical levels", func(t *testing.T) {
		assert.Equal(t, []string{"CS101", "ART150"}, courseIDs(uc.SearchByLevel("Freshman")))
		assert.Equal(t, []string{"BUS200"}, courseIDs(uc.SearchByLevel("sophomore")))
	})

	t.Run("Unknown level matches nothing", func(t *testing.T) {
		assert.Empty(t, uc.SearchByLevel("intergalactic"))
	})
}

func TestSearchByCategory(t *testing.T) {
	uc := newRecommender(smallCatalog()...)

	t.Run("Mapped term covers several catalog categories", func(t *testing.T) {
		catalog := append(smallCatalog(), domain.CourseRecord{
			ID: "BIO101", Title: "General Biology", Category: "Natural Sciences", Level: "1st year",
		})
		wide := newRecommender(catalog...)
		assert.Equal(t, []string{"CS101", "BIO101"}, courseIDs(wide.SearchByCategory("science")))
	})

	t.Run("Unmapped term falls back to substring match on itself", func(t *testing.T) {
		assert.Equal(t, []string{"ART150"}, courseIDs(uc.SearchByCategory("Fine Arts")))
	})
}

func TestSearchBySemester(t *testing.T) {
	uc := newRecommender(smallCatalog()...)

	assert.Equal(t, []string{"CS101", "BUS200"}, courseIDs(uc.SearchBySemester("FALL")))
	assert.Equal(t, []string{"CS101", "ART150"}, courseIDs(uc.SearchBySemester("spring")))
	assert.Empty(t, uc.SearchBySemester("summer"))
}

func TestSearchByKeywords(t *testing.T) {
	t.Run("Title beats description beats keyword field", func(t *testing.T) {
		uc := newRecommender(
			domain.CourseRecord{ID: "K1", Title: "One", Keywords: []string{"gamma"}},
			domain.CourseRecord{ID: "K2", Title: "Two", Description: "All about gamma rays."},
			domain.CourseRecord{ID: "K3", Title: "Gamma Fundamentals"},
		)
		assert.Equal(t, []string{"K3", "K2", "K1"}, courseIDs(uc.SearchByKeywords([]string{"gamma"}, 0)))
	})

	t.Run("Equal scores keep catalog order", func(t *testing.T) {
		uc := newRecommender(
			domain.CourseRecord{ID: "T1", Title: "Delta Systems"},
			domain.CourseRecord{ID: "T2", Title: "Delta Structures"},
			domain.CourseRecord{ID: "T3", Title: "Delta Methods"},
		)
		assert.Equal(t, []string{"T1", "T2", "T3"}, courseIDs(uc.SearchByKeywords([]string{"delta"}, 0)))
	})

	t.Run("Default cap is ten results", func(t *testing.T) {
		var catalog []domain.CourseRecord
		for i := 1; i <= 12; i++ {
			catalog = append(catalog, domain.CourseRecord{
				ID:    fmt.Sprintf("E%02d", i),
				Title: fmt.Sprintf("Epsilon %d", i),
			})
		}
		uc := newRecommender(catalog...)
		assert.Len(t, uc.SearchByKeywords([]string{"epsilon"}, 0), 10)
		assert.Len(t, uc.SearchByKeywords([]string{"epsilon"}, 3), 3)
	})

	t.Run("Checkbox labels expand case-sensitively", func(t *testing.T) {
		uc := newRecommender(domain.CourseRecord{
			ID:          "CS510",
			Title:       "Advanced Topics",
			Description: "Graduate seminar on machine learning.",
			Category:    "Computer Science",
		})
		assert.Equal(t, []string{"CS510"}, courseIDs(uc.SearchByKeywords([]string{"AI/ML"}, 0)))
		assert.Empty(t, uc.SearchByKeywords([]string{"ai/ml"}, 0))
	})

	t.Run("No keywords means no matches", func(t *testing.T) {
		uc := newRecommender(smallCatalog()...)
		assert.Empty(t, uc.SearchByKeywords(nil, 0))
	})
}

func TestEducationLevels(t *testing.T) {
	uc := newRecommender()
	assert.Equal(t, []string{"1st year", "2nd year", "3rd year", "4th year", "graduate"}, uc.EducationLevels())
}
