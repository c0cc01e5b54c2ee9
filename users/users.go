package users

import (
	"fmt"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// User is the CareerAI account record as served by the API. PasswordHash is
// only ever populated server-side and is never serialized.
type User struct {
	ID                 string    `json:"id,omitempty"`         // Unique identifier for the user
	Email              string    `json:"email,omitempty"`      // User's email address
	Username           string    `json:"username,omitempty"`   // Unique username
	PasswordHash       string    `json:"-"`                    // Hashed version of the user's password - never serialize
	FirstName          string    `json:"first_name,omitempty"` // First name of the user
	LastName           string    `json:"last_name,omitempty"`  // Last name of the user
	IsProfileCompleted bool      `json:"is_profile_completed"` // Whether post-registration onboarding is done
	DateJoined         time.Time `json:"date_joined,omitempty"`
	LastLogin          time.Time `json:"last_login,omitempty"`
	Headline           string    `json:"headline,omitempty"` // Short professional headline
	Location           string    `json:"location,omitempty"` // Free-form location
	Skills             []string  `json:"skills,omitempty"`   // Skill names attached to the profile
	DesiredJobRole     string    `json:"job_role,omitempty"` // Role the user is working towards
	ExperienceYears    int       `json:"experience_years,omitempty"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// ValidatePasswordStrength checks if a password meets the platform policy:
// - At least 8 characters long
// - Contains at least one letter
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasLetter bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
