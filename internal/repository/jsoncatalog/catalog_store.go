package jsoncatalog

import (
	"encoding/json"
	"os"
	"sort"

	"go-course-advisor-backend/internal/domain"
	"go-course-advisor-backend/pkg/logger"
)

// Store holds the immutable in-memory course catalog. A missing or corrupt
// catalog file degrades to an empty store: every search then returns empty
// results, which is a valid outcome rather than a fault.
type Store struct {
	courses []domain.CourseRecord
	byID    map[string]int
}

type catalogDocument struct {
	Courses []domain.CourseRecord `json:"courses"`
}

// NewStore loads the catalog once. The store is never mutated afterwards, so
// it is safe for unsynchronized concurrent reads.
func NewStore(path string) *Store {
	courses := loadCatalog(path)
	byID := make(map[string]int, len(courses))
	for i, course := range courses {
		if _, exists := byID[course.ID]; exists {
			logger.Log.Warn("Duplicate course id in catalog, keeping first occurrence", "id", course.ID)
			continue
		}
		byID[course.ID] = i
	}
	return &Store{courses: courses, byID: byID}
}

func loadCatalog(path string) []domain.CourseRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Warn("Course catalog file not found, starting with empty catalog", "path", path, "error", err)
		return nil
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Log.Warn("Invalid JSON in course catalog file, starting with empty catalog", "path", path, "error", err)
		return nil
	}
	return doc.Courses
}

// All returns the catalog in file order. Callers must treat it as read-only.
func (s *Store) All() []domain.CourseRecord {
	return s.courses
}

func (s *Store) GetByID(id string) (*domain.CourseRecord, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.courses[idx], true
}

func (s *Store) Count() int {
	return len(s.courses)
}

// Categories returns the distinct non-empty categories, sorted.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, course := range s.courses {
		if course.Category == "" {
			continue
		}
		if _, ok := seen[course.Category]; ok {
			continue
		}
		seen[course.Category] = struct{}{}
		categories = append(categories, course.Category)
	}
	sort.Strings(categories)
	return categories
}
