// Package types provides type definitions for structured data used throughout the skill-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Preferences capture how a user prefers to learn and which industries they care about.
type Preferences struct {
	PreferredIndustries []string `json:"preferredIndustries,omitempty"`
	LearningStyles      []string `json:"learningStyles,omitempty"`
	TimeCommitment      string   `json:"timeCommitment,omitempty"`
}

// User is the record supplied by the surrounding system (storage, session handling).
// The pipeline treats it as read-only input.
type User struct {
	CurrentRole    string       `json:"currentRole"`
	TargetRole     string       `json:"targetRole"`
	Skills         []string     `json:"skills"`
	Preferences    Preferences  `json:"preferences"`
	ResumeAnalysis *GapAnalysis `json:"resumeAnalysis,omitempty"`
}

// UserContext is the slice of user state the course generation and ranking stages need.
type UserContext struct {
	CurrentRole   string      `json:"currentRole,omitempty"`
	TargetRole    string      `json:"targetRole" validate:"required"`
	Skills        []string    `json:"skills,omitempty"`
	MissingSkills []string    `json:"missingSkills,omitempty"`
	Preferences   Preferences `json:"preferences,omitempty"`
}

// ContextFor builds a UserContext from a User plus the missing skills derived for them.
func ContextFor(user *User, missingSkills []string) UserContext {
	if user == nil {
		return UserContext{MissingSkills: missingSkills}
	}
	return UserContext{
		CurrentRole:   user.CurrentRole,
		TargetRole:    user.TargetRole,
		Skills:        user.Skills,
		MissingSkills: missingSkills,
		Preferences:   user.Preferences,
	}
}
