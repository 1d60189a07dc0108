package domain

// CourseRecord is one entry of the static course catalog. Records are loaded
// once at startup and never mutated, so they are safe to share across requests.
type CourseRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Level         string   `json:"level"`
	Credits       float64  `json:"credits"`
	Prerequisites string   `json:"prerequisites,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Semesters     []string `json:"semesters,omitempty"`
}

type CourseRepository interface {
	// All returns the full catalog in file order. Callers must not mutate
	// the returned slice or its records.
	All() []CourseRecord
	GetByID(id string) (*CourseRecord, bool)
	Count() int
	// Categories returns the distinct non-empty categories, sorted.
	Categories() []string
}

type RecommendationUsecase interface {
	// Recommend returns at most 12 courses with pairwise-distinct ids,
	// ordered by pass priority (career goal, then interests, then
	// categories) and backfilled from the level universe. It is total:
	// an empty catalog or empty profile yields an empty result, never an
	// error.
	Recommend(profile StudentProfile) []CourseRecord
	SearchByLevel(level string) []CourseRecord
	SearchByCategory(category string) []CourseRecord
	SearchBySemester(semester string) []CourseRecord
	// SearchByKeywords runs the scored keyword search. maxResults <= 0
	// applies the default cap of 10.
	SearchByKeywords(keywords []string, maxResults int) []CourseRecord
	EducationLevels() []string
}
