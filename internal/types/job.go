// Package types provides type definitions for the structured data flowing
// through the HR screening pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents the job opening candidates are screened against.
type JobPosting struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location,omitempty"`

	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	MinExperience         int      `json:"min_experience,omitempty"` // years; 0 means no requirement
	EducationRequirements []string `json:"education_requirements"`

	JobType          string   `json:"job_type,omitempty"`
	SalaryRange      string   `json:"salary_range,omitempty"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

// Text returns the posting's free text used for language detection.
func (j *JobPosting) Text() string {
	return j.Title + " " + j.Company + " " + j.Description
}
