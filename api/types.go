package api

import "github.com/careerai/go-careerai/users"

// TokenGrant is the response to a successful credential or registration
// exchange: a fresh token pair plus the account it belongs to.
type TokenGrant struct {
	AccessToken  string      `json:"access"`
	RefreshToken string      `json:"refresh"`
	User         *users.User `json:"user"`
	Message      string      `json:"message,omitempty"`
}

// RegistrationRequest is the payload for creating a new account. Field
// validation (email shape, password policy, confirmation match) is the form
// layer's job; the server re-validates uniqueness and reports field errors.
type RegistrationRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"password2"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

// Profile is the full profile-replace payload (PUT /api/auth/profile/).
type Profile struct {
	Headline        string   `json:"headline,omitempty"`
	Location        string   `json:"location,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	DesiredJobRole  string   `json:"job_role,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
}

// Course is a catalog entry.
type Course struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	CategoryName    string  `json:"category_name,omitempty"`
	DifficultyLevel string  `json:"difficulty_level,omitempty"`
	DurationWeeks   int     `json:"duration_in_weeks,omitempty"`
	InstructorName  string  `json:"instructor_name,omitempty"`
	AverageRating   float64 `json:"average_rating,omitempty"`
	TotalReviews    int     `json:"total_reviews,omitempty"`
}

// Job is a job-search result.
type Job struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	CompanyName    string   `json:"company_name,omitempty"`
	LocationName   string   `json:"location_name,omitempty"`
	IsRemote       bool     `json:"is_remote,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	SalaryMin      int      `json:"salary_min,omitempty"`
	SalaryMax      int      `json:"salary_max,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}
