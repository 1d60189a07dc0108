package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"go-course-advisor-backend/internal/domain"
)

const (
	maxInterests         = 15
	interestWarningCount = 10
	summaryInterestCount = 5
	summaryInfoLimit     = 100
)

// educationLevelSynonyms maps lowercased user wording to the canonical level.
// Input matching no entry passes through unchanged: the catalog decides what
// levels exist, not the normalizer.
var educationLevelSynonyms = map[string]string{
	"freshman":    "1st year",
	"first year":  "1st year",
	"1":           "1st year",
	"1st":         "1st year",
	"sophomore":   "2nd year",
	"second year": "2nd year",
	"2":           "2nd year",
	"2nd":         "2nd year",
	"junior":      "3rd year",
	"third year":  "3rd year",
	"3":           "3rd year",
	"3rd":         "3rd year",
	"senior":      "4th year",
	"fourth year": "4th year",
	"4":           "4th year",
	"4th":         "4th year",
	"graduate":    "graduate",
	"grad":        "graduate",
	"masters":     "graduate",
	"master's":    "graduate",
	"phd":         "graduate",
	"doctoral":    "graduate",
}

// careerGoalPrefixes are stripped from the front of free-text career goals.
// First match in this order wins.
var careerGoalPrefixes = []string{
	"i want to be a", "i want to be an", "i want to become a", "i want to become an",
	"i would like to be a", "i would like to be an", "becoming a", "becoming an",
	"my goal is to be a", "my goal is to be an", "i plan to be a", "i plan to be an",
}

var (
	interestSplitter       = regexp.MustCompile(`[,;]|\sand\s`)
	interestPrefixStripper = regexp.MustCompile(`^(i like|i love|i enjoy|i am interested in|interested in)\s+`)
)

// categoryEntry ties an academic category to the interest keywords that imply
// it. Kept as an ordered slice so category discovery order is deterministic.
type categoryEntry struct {
	Name     string
	Keywords []string
}

var interestCategoryTable = []categoryEntry{
	{"Business", []string{"business", "management", "marketing", "finance", "economics", "entrepreneurship"}},
	{"Natural Sciences", []string{"science", "biology", "chemistry", "physics", "environmental"}},
	{"Computer Science", []string{"computer", "programming", "technology", "coding", "software", "data"}},
	{"Health Sciences", []string{"health", "medicine", "medical", "nursing", "pharmacy", "therapy"}},
	{"Social Sciences", []string{"psychology", "sociology", "anthropology", "political", "social work"}},
	{"Humanities", []string{"history", "literature", "philosophy", "languages", "cultural studies"}},
	{"Fine Arts", []string{"art", "creative", "visual", "painting", "drawing", "design"}},
	{"Music", []string{"music", "musical", "instrument", "singing", "composition"}},
	{"Education", []string{"education", "teaching", "children", "learning", "classroom"}},
	{"Mathematics", []string{"math", "statistics", "calculus", "algebra", "numbers"}},
	{"Communications", []string{"communication", "media", "journalism", "writing", "public relations"}},
}

// commonInterests is the suggestion list served to the frontend.
var commonInterests = []string{
	"business", "science", "technology", "medicine", "nursing", "education",
	"music", "art", "psychology", "history", "literature", "mathematics",
	"computer science", "biology", "chemistry", "physics", "economics",
	"communications", "religion", "philosophy", "sociology", "political science",
}

type profileUsecase struct{}

func NewProfileUsecase() domain.ProfileUsecase {
	return &profileUsecase{}
}

func (u *profileUsecase) Normalize(raw domain.RawProfileInput) domain.StudentProfile {
	interests := normalizeInterests(raw.Interests)
	return domain.StudentProfile{
		EducationLevel:      normalizeEducationLevel(raw.EducationLevel),
		Interests:           interests,
		CareerGoal:          normalizeCareerGoal(raw.CareerGoal),
		PreferredCategories: deriveCategories(interests),
		AdditionalInfo:      strings.TrimSpace(raw.AdditionalInfo),
	}
}

func normalizeEducationLevel(input string) string {
	if input == "" {
		return ""
	}
	if canonical, ok := educationLevelSynonyms[strings.ToLower(strings.TrimSpace(input))]; ok {
		return canonical
	}
	// Lenient policy: unknown wording passes through case-preserved so the
	// level pass can still compare it against the catalog.
	return input
}

func normalizeInterests(input domain.InterestsInput) []string {
	var interests []string
	if input.IsList {
		// Checkbox-style input keeps its original casing: the keyword
		// expansion table is case-sensitive on phrases like "AI/ML".
		for _, raw := range input.List {
			if trimmed := strings.TrimSpace(raw); trimmed != "" {
				interests = append(interests, trimmed)
			}
		}
	} else if input.FreeText != "" {
		for _, part := range interestSplitter.Split(strings.ToLower(input.FreeText), -1) {
			part = strings.TrimSpace(part)
			part = strings.TrimSpace(interestPrefixStripper.ReplaceAllString(part, ""))
			if len(part) > 1 {
				interests = append(interests, part)
			}
		}
	}
	if len(interests) > maxInterests {
		interests = interests[:maxInterests]
	}
	return interests
}

func normalizeCareerGoal(input string) string {
	goal := strings.ToLower(strings.TrimSpace(input))
	if goal == "" {
		return ""
	}
	for _, prefix := range careerGoalPrefixes {
		if strings.HasPrefix(goal, prefix) {
			goal = strings.TrimSpace(strings.TrimPrefix(goal, prefix))
			break
		}
	}
	return goal
}

// deriveCategories maps interests onto academic categories by substring
// match. One interest may land in several categories; first discovery sets
// the order and duplicates are dropped.
func deriveCategories(interests []string) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, interest := range interests {
		for _, entry := range interestCategoryTable {
			if _, ok := seen[entry.Name]; ok {
				continue
			}
			for _, keyword := range entry.Keywords {
				if strings.Contains(interest, keyword) {
					seen[entry.Name] = struct{}{}
					categories = append(categories, entry.Name)
					break
				}
			}
		}
	}
	return categories
}

// Validate only ever produces warnings; a profile is never rejected.
func (u *profileUsecase) Validate(profile domain.StudentProfile) domain.ValidationResult {
	result := domain.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	if profile.EducationLevel == "" {
		result.Warnings = append(result.Warnings, "Education level not specified. Recommendations will include all levels.")
	}

	if len(profile.Interests) == 0 {
		result.Warnings = append(result.Warnings, "No interests specified. Consider adding some to get better recommendations.")
	} else if len(profile.Interests) > interestWarningCount {
		result.Warnings = append(result.Warnings, "Many interests specified. Consider focusing on your top priorities.")
	}

	if profile.CareerGoal == "" {
		result.Warnings = append(result.Warnings, "Career goal not specified. Adding one can help tailor recommendations.")
	}

	return result
}

func (u *profileUsecase) Summarize(profile domain.StudentProfile) string {
	var parts []string

	if profile.EducationLevel != "" {
		parts = append(parts, "Education Level: "+titleCase(profile.EducationLevel))
	}

	if len(profile.Interests) > 0 {
		shown := profile.Interests
		if len(shown) > summaryInterestCount {
			shown = shown[:summaryInterestCount]
		}
		line := strings.Join(shown, ", ")
		if extra := len(profile.Interests) - summaryInterestCount; extra > 0 {
			line += fmt.Sprintf(" (and %d more)", extra)
		}
		parts = append(parts, "Interests: "+line)
	}

	if profile.CareerGoal != "" {
		parts = append(parts, "Career Goal: "+titleCase(profile.CareerGoal))
	}

	// Truncation counts runes, not bytes, so multi-byte text stays intact.
	if info := []rune(profile.AdditionalInfo); len(info) > 10 {
		if len(info) > summaryInfoLimit {
			info = info[:summaryInfoLimit]
		}
		parts = append(parts, "Additional Notes: "+string(info)+"...")
	}

	if len(parts) == 0 {
		return "Profile information not provided"
	}
	return strings.Join(parts, "\n")
}

func (u *profileUsecase) SuggestMissingInfo(profile domain.StudentProfile) []string {
	suggestions := []string{}

	if profile.EducationLevel == "" {
		suggestions = append(suggestions, "Adding your current education level (freshman, sophomore, etc.) will help us recommend appropriate courses.")
	}
	if len(profile.Interests) == 0 {
		suggestions = append(suggestions, "Sharing your academic interests will help us find courses you'll enjoy.")
	}
	if profile.CareerGoal == "" {
		suggestions = append(suggestions, "Mentioning your career goals can help us recommend courses that support your future plans.")
	}

	return suggestions
}

func (u *profileUsecase) CommonInterests() []string {
	return commonInterests
}

// SampleProfile returns a canonical submission, mainly for demos and tests.
func (u *profileUsecase) SampleProfile() domain.RawProfileInput {
	return domain.RawProfileInput{
		EducationLevel: "2nd year",
		Interests: domain.InterestsInput{
			IsList: true,
			List:   []string{"computer science", "business", "data analysis"},
		},
		CareerGoal:     "software engineer",
		AdditionalInfo: "I am particularly interested in artificial intelligence and machine learning applications in business.",
	}
}

// titleCase capitalizes the first letter of each space-separated word and
// lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		for j, r := range runes {
			if unicode.IsLetter(r) {
				runes[j] = unicode.ToUpper(r)
				break
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
