package usecase

import (
	"sort"
	"strings"

	"go-course-advisor-backend/internal/domain"
)

const (
	// defaultSearchResults caps a scored keyword search when the caller
	// does not ask for a specific maximum.
	defaultSearchResults = 10
	// perInterestResults caps each interest's sub-search inside Recommend.
	perInterestResults = 5
	// minRecommendations triggers backfill from the level universe.
	minRecommendations = 8
	// maxRecommendations bounds the final result.
	maxRecommendations = 12
)

// searchLevelSynonyms normalizes level wording for the level pass and the
// /courses/search endpoint.
var searchLevelSynonyms = map[string]string{
	"freshman":    "1st year",
	"first year":  "1st year",
	"1st year":    "1st year",
	"sophomore":   "2nd year",
	"second year": "2nd year",
	"2nd year":    "2nd year",
	"junior":      "3rd year",
	"third year":  "3rd year",
	"3rd year":    "3rd year",
	"senior":      "4th year",
	"fourth year": "4th year",
	"4th year":    "4th year",
	"graduate":    "graduate",
	"grad":        "graduate",
	"masters":     "graduate",
	"phd":         "graduate",
}

var educationLevels = []string{"1st year", "2nd year", "3rd year", "4th year", "graduate"}

// interestKeywordExpansion widens checkbox-style interests into the catalog
// vocabulary. Keys are case-sensitive on purpose: they mirror the exact
// labels the frontend sends.
var interestKeywordExpansion = map[string][]string{
	"AI/ML":              {"artificial intelligence", "machine learning", "data science", "computer science"},
	"Web Dev":            {"web", "programming", "computer science", "development"},
	"Security":           {"security", "computer science", "networking"},
	"Data Science":       {"data", "statistics", "mathematics", "computer science", "analysis"},
	"Mobile Dev":         {"mobile", "programming", "computer science", "development"},
	"Game Dev":           {"game", "programming", "computer science", "development"},
	"Entrepreneurship":   {"business", "entrepreneurship", "management"},
	"Management":         {"business", "management", "leadership"},
	"Business Strategy":  {"business", "strategy", "management"},
	"Finance/Accounting": {"finance", "accounting", "business", "economics"},
	"Biology/Biotech":    {"biology", "science", "biotechnology"},
	"Chemistry":          {"chemistry", "science"},
	"Mathematics":        {"mathematics", "statistics", "calculus"},
	"Physics":            {"physics", "science"},
	"Nursing":            {"nursing", "healthcare", "medical"},
	"Healthcare":         {"healthcare", "medical", "health"},
	"Psychology":         {"psychology", "social", "behavior"},
	"Communication":      {"communication", "media", "writing"},
	"Education":          {"education", "teaching", "learning"},
	"History/Humanities": {"history", "humanities", "literature"},
	"UI/UX Design":       {"design", "art", "creative", "computer"},
	"Music":              {"music", "performance", "creative"},
	"Visual Arts":        {"art", "visual", "creative", "design"},
	"Theatre Arts":       {"theatre", "performance", "art", "creative"},
}

// careerKeywordEntry pairs a career phrase with the course keywords it
// implies. An ordered slice, not a map: a goal like "doctor and entrepreneur"
// matches several entries and the expansion order must be reproducible.
type careerKeywordEntry struct {
	Goal     string
	Keywords []string
}

var careerKeywordTable = []careerKeywordEntry{
	{"doctor", []string{"biology", "chemistry", "anatomy", "physiology", "pre-med", "medical", "health"}},
	{"physician", []string{"biology", "chemistry", "anatomy", "physiology", "pre-med", "medical", "health"}},
	{"nurse", []string{"nursing", "anatomy", "physiology", "healthcare", "patient care", "medical"}},
	{"teacher", []string{"education", "psychology", "classroom management", "learning", "teaching"}},
	{"business", []string{"business", "management", "marketing", "finance", "entrepreneurship"}},
	{"entrepreneur", []string{"business", "management", "marketing", "finance", "entrepreneurship"}},
	{"software engineer", []string{"computer science", "programming", "algorithms", "data structures"}},
	{"programmer", []string{"computer science", "programming", "algorithms", "data structures"}},
	{"data scientist", []string{"statistics", "computer science", "mathematics", "data analysis"}},
	{"musician", []string{"music", "performance", "theory", "composition"}},
	{"artist", []string{"art", "studio", "creative", "visual arts"}},
	{"lawyer", []string{"english", "communication", "history", "critical thinking"}},
	{"researcher", []string{"research methods", "statistics", "methodology", "analysis"}},
	{"counselor", []string{"psychology", "developmental", "behavior", "social"}},
	{"therapist", []string{"psychology", "developmental", "behavior", "social"}},
}

// categorySearchTargets maps a lowercased search term to the catalog category
// names it should cover. Unmapped terms fall back to themselves.
var categorySearchTargets = map[string][]string{
	"business":         {"Business", "MBA"},
	"science":          {"Natural Sciences", "Computer Science"},
	"computer science": {"Computer Science"},
	"cs":               {"Computer Science"},
	"programming":      {"Computer Science"},
	"health":           {"Health Sciences", "Nursing"},
	"nursing":          {"Nursing"},
	"medical":          {"Health Sciences"},
	"medicine":         {"Health Sciences"},
	"education":        {"Education"},
	"teaching":         {"Education"},
	"music":            {"Music"},
	"art":              {"Fine Arts"},
	"english":          {"Humanities"},
	"literature":       {"Humanities"},
	"history":          {"Humanities"},
	"psychology":       {"Social Sciences"},
	"math":             {"Mathematics"},
	"mathematics":      {"Mathematics"},
	"religion":         {"Religion"},
	"communications":   {"Communications"},
}

type recommendationUsecase struct {
	courseRepo domain.CourseRepository
}

func NewRecommendationUsecase(courseRepo domain.CourseRepository) domain.RecommendationUsecase {
	return &recommendationUsecase{courseRepo: courseRepo}
}

// Recommend runs the four retrieval passes and merges them. The level pass
// defines the universe; the other passes are intersected with it after the
// merge, so a course outside the requested level is dropped even when it
// scored well elsewhere.
func (u *recommendationUsecase) Recommend(profile domain.StudentProfile) []domain.CourseRecord {
	var universe []domain.CourseRecord
	if profile.EducationLevel != "" {
		universe = u.SearchByLevel(profile.EducationLevel)
	} else {
		universe = u.courseRepo.All()
	}

	var interestCourses []domain.CourseRecord
	if len(profile.Interests) > 0 {
		for _, interest := range profile.Interests {
			interestCourses = append(interestCourses, u.scoredSearch([]string{interest}, perInterestResults)...)
		}
	} else {
		interestCourses = universe
	}

	var careerCourses []domain.CourseRecord
	if profile.CareerGoal != "" {
		careerCourses = u.searchByCareerGoal(profile.CareerGoal)
	}

	var categoryCourses []domain.CourseRecord
	for _, category := range profile.PreferredCategories {
		categoryCourses = append(categoryCourses, u.SearchByCategory(category)...)
	}

	// Priority order: career matches first, then interests, then categories.
	combined := make([]domain.CourseRecord, 0, len(careerCourses)+len(interestCourses)+len(categoryCourses))
	combined = append(combined, careerCourses...)
	combined = append(combined, interestCourses...)
	combined = append(combined, categoryCourses...)

	universeIDs := make(map[string]struct{}, len(universe))
	for _, course := range universe {
		universeIDs[course.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, maxRecommendations)
	recommended := make([]domain.CourseRecord, 0, maxRecommendations)
	for _, course := range combined {
		if _, dup := seen[course.ID]; dup {
			continue
		}
		if _, inUniverse := universeIDs[course.ID]; !inUniverse {
			continue
		}
		seen[course.ID] = struct{}{}
		recommended = append(recommended, course)
	}

	// Too few matches: pad with level-appropriate courses in catalog order.
	if len(recommended) < minRecommendations {
		for _, course := range universe {
			if len(recommended) >= maxRecommendations {
				break
			}
			if _, dup := seen[course.ID]; dup {
				continue
			}
			seen[course.ID] = struct{}{}
			recommended = append(recommended, course)
		}
	}

	if len(recommended) > maxRecommendations {
		recommended = recommended[:maxRecommendations]
	}
	return recommended
}

func (u *recommendationUsecase) SearchByLevel(level string) []domain.CourseRecord {
	normalized := level
	if canonical, ok := searchLevelSynonyms[strings.ToLower(level)]; ok {
		normalized = canonical
	}

	matches := make([]domain.CourseRecord, 0)
	for _, course := range u.courseRepo.All() {
		if strings.EqualFold(course.Level, normalized) {
			matches = append(matches, course)
		}
	}
	return matches
}

func (u *recommendationUsecase) SearchByCategory(category string) []domain.CourseRecord {
	targets, ok := categorySearchTargets[strings.ToLower(category)]
	if !ok {
		targets = []string{category}
	}

	matches := make([]domain.CourseRecord, 0)
	for _, course := range u.courseRepo.All() {
		courseCategory := strings.ToLower(course.Category)
		for _, target := range targets {
			if strings.Contains(courseCategory, strings.ToLower(target)) {
				matches = append(matches, course)
				break
			}
		}
	}
	return matches
}

func (u *recommendationUsecase) SearchBySemester(semester string) []domain.CourseRecord {
	matches := make([]domain.CourseRecord, 0)
	for _, course := range u.courseRepo.All() {
		for _, s := range course.Semesters {
			if strings.EqualFold(s, semester) {
				matches = append(matches, course)
				break
			}
		}
	}
	return matches
}

func (u *recommendationUsecase) SearchByKeywords(keywords []string, maxResults int) []domain.CourseRecord {
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}
	return u.scoredSearch(keywords, maxResults)
}

func (u *recommendationUsecase) EducationLevels() []string {
	return educationLevels
}

// searchByCareerGoal expands a career phrase into course keywords. Goals that
// match no table entry fall back to their own whitespace tokens. The pass is
// deliberately left uncapped; only the final merge truncates.
func (u *recommendationUsecase) searchByCareerGoal(goal string) []domain.CourseRecord {
	goalLower := strings.ToLower(goal)

	var keywords []string
	for _, entry := range careerKeywordTable {
		if strings.Contains(goalLower, entry.Goal) {
			keywords = append(keywords, entry.Keywords...)
		}
	}
	if len(keywords) == 0 {
		keywords = strings.Fields(goalLower)
	}

	return u.scoredSearch(keywords, 0)
}

// scoredSearch is the weighted substring search shared by the interest and
// career passes. maxResults <= 0 means unbounded.
func (u *recommendationUsecase) scoredSearch(keywords []string, maxResults int) []domain.CourseRecord {
	expanded := expandKeywords(keywords)

	type scoredCourse struct {
		course domain.CourseRecord
		score  int
	}

	var scored []scoredCourse
	for _, course := range u.courseRepo.All() {
		title := strings.ToLower(course.Title)
		description := strings.ToLower(course.Description)
		searchText := strings.Join([]string{
			title,
			description,
			strings.ToLower(course.Category),
			strings.ToLower(strings.Join(course.Keywords, " ")),
		}, " ")

		score := 0
		for _, keyword := range expanded {
			keyword = strings.TrimSpace(strings.ToLower(keyword))
			if !strings.Contains(searchText, keyword) {
				continue
			}
			// First matching field wins: title, then description,
			// then anywhere else in the search text.
			switch {
			case strings.Contains(title, keyword):
				score += 3
			case strings.Contains(description, keyword):
				score += 2
			default:
				score++
			}
		}

		if score > 0 {
			scored = append(scored, scoredCourse{course: course, score: score})
		}
	}

	// Stable sort keeps catalog order for equal scores, so identical input
	// always yields identical ranking.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if maxResults > 0 && len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	results := make([]domain.CourseRecord, 0, len(scored))
	for _, sc := range scored {
		results = append(results, sc.course)
	}
	return results
}

// expandKeywords widens each keyword through the interest expansion table.
// The original keyword is always kept, lowercased; the table lookup itself is
// case-sensitive.
func expandKeywords(keywords []string) []string {
	expanded := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		expanded = append(expanded, strings.ToLower(keyword))
		if synonyms, ok := interestKeywordExpansion[keyword]; ok {
			expanded = append(expanded, synonyms...)
		}
	}
	return expanded
}
