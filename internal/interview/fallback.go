package interview

import "github.com/jonathan/hr-screener/internal/types"

// fallbackQuestions is the static table substituted when a category's LLM
// call fails or yields no usable entries.
var fallbackQuestions = map[string]types.InterviewQuestion{
	types.CategoryTechnical: {
		Question:   "Walk me through a technically challenging project you worked on. What made it difficult and how did you approach it?",
		Category:   types.CategoryTechnical,
		Difficulty: types.DifficultyMedium,
		ExpectedAnswerPoints: []string{
			"Clear description of the technical problem",
			"Reasoning behind the chosen approach",
			"Concrete outcome or lesson learned",
		},
	},
	types.CategoryBehavioral: {
		Question:   "Tell me about a time when you had to work through a disagreement with a colleague. What did you do and what was the result?",
		Category:   types.CategoryBehavioral,
		Difficulty: types.DifficultyMedium,
		ExpectedAnswerPoints: []string{
			"Specific situation and the candidate's own actions",
			"Constructive handling of the conflict",
			"Measurable or observable result",
		},
	},
	types.CategoryRoleSpecific: {
		Question:   "What attracts you to this role, and what do you see as its biggest challenge in the first six months?",
		Category:   types.CategoryRoleSpecific,
		Difficulty: types.DifficultyMedium,
		ExpectedAnswerPoints: []string{
			"Understanding of the role's responsibilities",
			"Realistic view of likely challenges",
			"Motivation aligned with the position",
		},
	},
	types.CategoryGeneral: {
		Question:   "What are you looking for in your next position, and when would you be available to start?",
		Category:   types.CategoryGeneral,
		Difficulty: types.DifficultyEasy,
		ExpectedAnswerPoints: []string{
			"Clear career expectations",
			"Availability and notice period",
		},
	},
}

// FallbackQuestion returns the static question for a category. Unknown
// categories get the general fallback.
func FallbackQuestion(category string) types.InterviewQuestion {
	if q, ok := fallbackQuestions[category]; ok {
		return q
	}
	return fallbackQuestions[types.CategoryGeneral]
}
