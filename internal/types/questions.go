package types

// Question categories.
const (
	CategoryTechnical    = "technical"
	CategoryBehavioral   = "behavioral"
	CategoryRoleSpecific = "role-specific"
	CategoryGeneral      = "general"
)

// Question difficulties.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// InterviewQuestion is a single generated interview question.
type InterviewQuestion struct {
	Question             string   `json:"question"`
	Category             string   `json:"category"`
	Difficulty           string   `json:"difficulty"`
	ExpectedAnswerPoints []string `json:"expected_answer_points"`
}

// CandidateQuestionSet groups the questions generated for one shortlisted
// candidate. TotalQuestions is computed once at creation and never updated
// independently.
type CandidateQuestionSet struct {
	CandidateName string `json:"candidate_name"`
	JobTitle      string `json:"job_title"`

	TechnicalQuestions    []InterviewQuestion `json:"technical_questions"`
	BehavioralQuestions   []InterviewQuestion `json:"behavioral_questions"`
	RoleSpecificQuestions []InterviewQuestion `json:"role_specific_questions"`
	GeneralQuestions      []InterviewQuestion `json:"general_questions"`

	TotalQuestions int `json:"total_questions"`
}

// NewCandidateQuestionSet assembles a question set and computes the total.
func NewCandidateQuestionSet(candidateName, jobTitle string, technical, behavioral, roleSpecific, general []InterviewQuestion) CandidateQuestionSet {
	return CandidateQuestionSet{
		CandidateName:         candidateName,
		JobTitle:              jobTitle,
		TechnicalQuestions:    technical,
		BehavioralQuestions:   behavioral,
		RoleSpecificQuestions: roleSpecific,
		GeneralQuestions:      general,
		TotalQuestions:        len(technical) + len(behavioral) + len(roleSpecific) + len(general),
	}
}
