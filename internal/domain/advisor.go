package domain

import "context"

// TextGenerator is the single capability this system consumes from the
// external generation service. Implementations must be safe for concurrent
// use and should bound the call with the context.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	IsConfigured() bool
}

// Recommendation is the full advisor answer for one profile submission.
type Recommendation struct {
	Courses         []CourseRecord   `json:"courses"`
	Count           int              `json:"count"`
	Profile         StudentProfile   `json:"profile"`
	ProfileSummary  string           `json:"profile_summary"`
	Validation      ValidationResult `json:"validation"`
	Suggestions     []string         `json:"suggestions"`
	Advice          string           `json:"advice"`
	AdviceGenerated bool             `json:"advice_generated"`
}

type AdvisorUsecase interface {
	// RecommendWithAdvice never fails on generator problems; the advice
	// field degrades to a fixed fallback text instead.
	RecommendWithAdvice(ctx context.Context, raw RawProfileInput) (*Recommendation, error)
	Chat(ctx context.Context, message string) (string, error)
	// CourseDetails returns a NotFound error for unknown ids; generator
	// failures fall back to the plain formatted course block.
	CourseDetails(ctx context.Context, id string) (string, error)
}
