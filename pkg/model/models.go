package model

import "time"

// Role classifies an actor. Identity and sessions are owned by the
// presentation layer; the backend only records who a result belongs to.
type Role string

const (
	RoleUser  Role = "USER"
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"
)

// User represents a respondent or staff member
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Role            Role      `json:"role"`
	AssignedStaffID *string   `json:"assigned_staff_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Section tags a question with the part of the survey it belongs to.
// Only the stress-reaction section participates in numeric scoring.
type Section string

const (
	SectionStressFactor   Section = "stress_factor"
	SectionStressReaction Section = "stress_reaction"
	SectionSupport        Section = "support"
	SectionSatisfaction   Section = "satisfaction"
)

// Question is one item of the stress-check survey. Questions are immutable
// once defined; ids are stable across questionnaire templates.
type Question struct {
	ID       int     `json:"id"`
	Text     string  `json:"text"`
	Category string  `json:"category"`
	Section  Section `json:"section"`
	Inverted bool    `json:"inverted"`
}

// Questionnaire is a named, ordered subset of the question catalog.
// At most one questionnaire is active at any time.
type Questionnaire struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	QuestionIDs []int     `json:"question_ids"`
	IsActive    bool      `json:"is_active"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Answer is a single Likert response on the 1-4 scale.
type Answer struct {
	QuestionID int `json:"question_id"`
	Value      int `json:"value"`
}

// StressLevel is the three-level classification of a scored assessment
type StressLevel string

const (
	StressLevelLow    StressLevel = "LOW"
	StressLevelMedium StressLevel = "MEDIUM"
	StressLevelHigh   StressLevel = "HIGH"
)

// Result is one completed assessment. Results are immutable after creation
// except for AIFeedback, which transitions from empty to populated once.
type Result struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Date        time.Time   `json:"date"`
	Answers     []Answer    `json:"answers"`
	Score       int         `json:"score"`
	MaxScore    int         `json:"max_score"`
	StressLevel StressLevel `json:"stress_level"`
	AIFeedback  string      `json:"ai_feedback"`
	CreatedAt   time.Time   `json:"created_at"`
}

// AISettings configures narrative feedback generation.
// CustomPrompt overrides Persona verbatim when non-empty.
type AISettings struct {
	Persona      string    `json:"persona"`
	CustomPrompt string    `json:"custom_prompt"`
	LogoURL      string    `json:"logo_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
