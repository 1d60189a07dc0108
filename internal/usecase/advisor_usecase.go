package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-course-advisor-backend/internal/domain"
	"go-course-advisor-backend/pkg/apperror"
	"go-course-advisor-backend/pkg/logger"
)

// systemContext frames every generation call.
const systemContext = `You are an expert academic advisor. Your role is to help students
select appropriate courses for the upcoming semester based on their education level, interests, and career goals.

Key responsibilities:
1. Provide personalized course recommendations
2. Explain why specific courses are beneficial for the student's goals
3. Consider prerequisites and course sequencing
4. Offer guidance on academic planning and career preparation
5. Be encouraging and supportive while being realistic about academic requirements

Always be helpful, informative, and maintain a friendly, professional tone.
Focus on how courses connect to the student's interests and career aspirations.

IMPORTANT: When displaying the student's profile summary, preserve the exact formatting
and capitalization provided, especially for education levels (e.g., "1st Year (Freshman)",
"2nd Year (Sophomore)"). Do not change the capitalization or format of these terms.`

// defaultCourseCount bounds the recommendation list when the request names no
// count of its own.
const defaultCourseCount = 10

// Fixed user-facing texts for generator outages. Generator failures never
// surface as request errors.
const (
	adviceUnavailableText = "I'm sorry, the course advisor system is not available right now."
	adviceFallbackText    = "I encountered an error while generating your course recommendations. Please try again."
	chatUnavailableText   = "I'm sorry, the advisor chat is not available right now."
	chatFallbackText      = "I'm having trouble responding right now. Could you please try asking your question again?"

	noCoursesFallbackText = `I apologize, but I couldn't find specific courses matching your criteria right now.
Here are some general suggestions:

- Consider foundational courses in your areas of interest
- Meet with an academic advisor to discuss your goals
- Explore prerequisite courses that might open up more options
- Review the full course catalog for additional possibilities

Feel free to try again with different interests or be more specific about your academic goals!`
)

// displayLevels maps canonical levels to the wording shown inside prompts.
var displayLevels = map[string]string{
	"1st year": "1st Year (Freshman)",
	"2nd year": "2nd Year (Sophomore)",
	"3rd year": "3rd Year (Junior)",
	"4th year": "4th Year (Senior)",
	"graduate": "Graduate Student",
}

type advisorUsecase struct {
	courseRepo  domain.CourseRepository
	recommendUC domain.RecommendationUsecase
	profileUC   domain.ProfileUsecase
	generator   domain.TextGenerator
}

func NewAdvisorUsecase(
	courseRepo domain.CourseRepository,
	recommendUC domain.RecommendationUsecase,
	profileUC domain.ProfileUsecase,
	generator domain.TextGenerator,
) domain.AdvisorUsecase {
	return &advisorUsecase{
		courseRepo:  courseRepo,
		recommendUC: recommendUC,
		profileUC:   profileUC,
		generator:   generator,
	}
}

func (a *advisorUsecase) RecommendWithAdvice(ctx context.Context, raw domain.RawProfileInput) (*domain.Recommendation, error) {
	profile := a.profileUC.Normalize(raw)
	courses := a.recommendUC.Recommend(profile)

	limit := raw.CourseCount
	if limit <= 0 {
		limit = defaultCourseCount
	}
	if len(courses) > limit {
		courses = courses[:limit]
	}

	advice, generated := a.generateAdvice(ctx, profile, courses)

	return &domain.Recommendation{
		Courses:         courses,
		Count:           len(courses),
		Profile:         profile,
		ProfileSummary:  a.profileUC.Summarize(profile),
		Validation:      a.profileUC.Validate(profile),
		Suggestions:     a.profileUC.SuggestMissingInfo(profile),
		Advice:          advice,
		AdviceGenerated: generated,
	}, nil
}

func (a *advisorUsecase) Chat(ctx context.Context, message string) (string, error) {
	if !a.generator.IsConfigured() {
		return chatUnavailableText, nil
	}

	prompt := fmt.Sprintf(`%s

As an academic advisor, please respond to this student message:

Student: %s

Provide helpful, supportive guidance related to course selection, academic planning,
or university life. If the student asks about specific courses, let them know they
can ask for detailed course recommendations or specific course information.`, systemContext, message)

	reply, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Log.Error("Advisor chat generation failed", "error", err)
		return chatFallbackText, nil
	}
	return reply, nil
}

func (a *advisorUsecase) CourseDetails(ctx context.Context, id string) (string, error) {
	course, ok := a.courseRepo.GetByID(id)
	if !ok {
		return "", apperror.NotFound(fmt.Sprintf("Course %s not found", id))
	}

	plain := fmt.Sprintf("Here's the basic information for %s:\n\n%s", course.Title, formatCourse(*course))
	if !a.generator.IsConfigured() {
		return plain, nil
	}

	prompt := fmt.Sprintf(`%s

COURSE INFORMATION:
%s

Please provide a detailed, student-friendly explanation of this course including:
1. What the course covers
2. Who should take this course
3. What skills/knowledge students will gain
4. How it might connect to career goals
5. Any important notes about prerequisites or timing

Make it engaging and informative for prospective students.`, systemContext, formatCourse(*course))

	details, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Log.Error("Course details generation failed", "course_id", id, "error", err)
		return plain, nil
	}
	return details, nil
}

// generateAdvice produces the advice text for a recommendation. The boolean
// reports whether the text came from the generator or a fallback.
func (a *advisorUsecase) generateAdvice(ctx context.Context, profile domain.StudentProfile, courses []domain.CourseRecord) (string, bool) {
	if !a.generator.IsConfigured() {
		return adviceUnavailableText, false
	}

	var prompt string
	if len(courses) == 0 {
		prompt = a.noCoursesPrompt(profile)
	} else {
		prompt = a.recommendationPrompt(profile, courses)
	}

	advice, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Log.Error("Recommendation advice generation failed", "error", err)
		if len(courses) == 0 {
			return noCoursesFallbackText, false
		}
		return adviceFallbackText, false
	}
	return advice, true
}

func (a *advisorUsecase) recommendationPrompt(profile domain.StudentProfile, courses []domain.CourseRecord) string {
	level := displayLevel(profile.EducationLevel)

	interests := "Not specified"
	if len(profile.Interests) > 0 {
		interests = strings.Join(profile.Interests, ", ")
	}
	careerGoal := profile.CareerGoal
	if careerGoal == "" {
		careerGoal = "Not specified"
	}

	return fmt.Sprintf(`%s

STUDENT PROFILE:
- Education Level: %s
- Interests: %s
- Career Goal: %s
- Additional Information: %s

FORMATTING INSTRUCTION: When you repeat the student's education level, use the
exact text "%s" without changing its capitalization, spacing, or format.

AVAILABLE COURSES:
%s

TASK:
Based on the student's profile and the available courses above, provide personalized course recommendations for the upcoming semester.

Your response should include:
1. A warm, personalized greeting
2. 6-8 specific course recommendations from the list above
3. For each recommended course, explain:
   - Why it's relevant to their interests/goals
   - How it fits their education level
   - What skills/knowledge they'll gain
4. Suggestions for course sequencing if applicable
5. Encouraging closing remarks about their academic journey

Format your response in a friendly, conversational tone as if you're speaking directly to the student.
Use bullet points or numbered lists for clarity where appropriate.`,
		systemContext, level, interests, careerGoal, profile.AdditionalInfo, level, courseContext(courses))
}

func (a *advisorUsecase) noCoursesPrompt(profile domain.StudentProfile) string {
	level := profile.EducationLevel
	if level == "" {
		level = "your level"
	}

	return fmt.Sprintf(`%s

A student at the %s level is looking for course recommendations, but no specific
courses matched their exact criteria.

Interests: %s
Career Goal: %s

Please provide helpful guidance about:
1. General course categories they should consider
2. Suggestions for refining their search criteria
3. Advice on academic planning for their level
4. Encouragement to meet with an academic advisor

Be supportive and provide actionable next steps.`,
		systemContext, level, strings.Join(profile.Interests, ", "), orNotSpecified(profile.CareerGoal))
}

// courseContext renders the matched courses as a numbered block for the
// prompt.
func courseContext(courses []domain.CourseRecord) string {
	if len(courses) == 0 {
		return "No courses found matching the criteria."
	}

	var b strings.Builder
	b.WriteString("Here are the recommended courses:\n\n")
	for i, course := range courses {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, formatCourse(course)))
	}
	return b.String()
}

// formatCourse renders one course as the fixed field block the prompts use.
// Every optional field gets explicit fallback text.
func formatCourse(course domain.CourseRecord) string {
	credits := "N/A"
	if course.Credits > 0 {
		credits = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", course.Credits), "0"), ".")
	}
	prerequisites := course.Prerequisites
	if prerequisites == "" {
		prerequisites = "None"
	}

	return fmt.Sprintf(`Course: %s (%s)
Level: %s
Category: %s
Credits: %s
Description: %s
Prerequisites: %s
Available: %s`,
		orNA(course.Title), orNA(course.ID), orNA(course.Level), orNA(course.Category),
		credits, orNA(course.Description), prerequisites, strings.Join(course.Semesters, ", "))
}

func displayLevel(level string) string {
	if level == "" {
		return "Not specified"
	}
	if formatted, ok := displayLevels[strings.ToLower(level)]; ok {
		return formatted
	}
	return titleCase(level)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
