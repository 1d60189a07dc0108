package domain

import "encoding/json"

// InterestsInput accepts both shapes the frontend sends: a free-text string
// ("math, music and art") or a checkbox-style JSON array. The two shapes are
// normalized differently, so the decoded value remembers which one it was.
type InterestsInput struct {
	FreeText string
	List     []string
	IsList   bool
}

func (i *InterestsInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i.FreeText = s
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		i.IsList = true
		for _, raw := range list {
			var elem string
			if err := json.Unmarshal(raw, &elem); err != nil {
				// Non-string elements are coerced to their JSON text.
				elem = string(raw)
			}
			i.List = append(i.List, elem)
		}
		return nil
	}
	// Unrecognized shapes degrade to empty interests rather than failing
	// the whole request.
	return nil
}

func (i InterestsInput) MarshalJSON() ([]byte, error) {
	if i.IsList {
		return json.Marshal(i.List)
	}
	return json.Marshal(i.FreeText)
}

// RawProfileInput is the wire shape of a profile submission, before any
// normalization.
type RawProfileInput struct {
	EducationLevel string         `json:"education_level"`
	Interests      InterestsInput `json:"interests"`
	CareerGoal     string         `json:"career_goal"`
	AdditionalInfo string         `json:"additional_info"`
	CourseCount    int            `json:"course_count"`
}

// IsEmpty reports whether the submission carries no usable fields at all.
func (r RawProfileInput) IsEmpty() bool {
	return r.EducationLevel == "" && r.Interests.FreeText == "" &&
		len(r.Interests.List) == 0 && r.CareerGoal == "" && r.AdditionalInfo == ""
}

// StudentProfile is the normalized profile. Every field defaults to its empty
// value; downstream code never distinguishes "missing" from "empty".
type StudentProfile struct {
	// EducationLevel is one of the five canonical levels, or the caller's
	// original wording when it matched no synonym, or "".
	EducationLevel string `json:"education_level"`
	// Interests holds at most 15 entries in submission order. List-style
	// input keeps its original casing; free-text input is lowercased.
	Interests  []string `json:"interests"`
	CareerGoal string   `json:"career_goal"`
	// PreferredCategories is derived from interests, in first-discovery
	// order, without duplicates.
	PreferredCategories []string `json:"preferred_categories"`
	AdditionalInfo      string   `json:"additional_info"`
}

// ValidationResult carries advisory findings about a profile. By contract
// Errors stays empty: a profile is never rejected, only warned about.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type ProfileUsecase interface {
	// Normalize is total; unrecognized input degrades to defaulted fields.
	Normalize(raw RawProfileInput) StudentProfile
	Validate(profile StudentProfile) ValidationResult
	Summarize(profile StudentProfile) string
	SuggestMissingInfo(profile StudentProfile) []string
	CommonInterests() []string
	SampleProfile() RawProfileInput
}
