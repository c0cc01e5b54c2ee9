// Package forms validates login and registration input before it reaches the
// API. Server-side validation remains authoritative; this layer catches the
// obvious mistakes without a round trip.
package forms

import (
	"fmt"
	"strings"

	"github.com/careerai/go-careerai/api"
	"github.com/careerai/go-careerai/users"
)

// Validator provides centralized validation logic for the auth forms.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// RegistrationForm is the raw input collected for account creation.
type RegistrationForm struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// Payload converts the form into the API registration request.
func (f RegistrationForm) Payload() api.RegistrationRequest {
	return api.RegistrationRequest{
		Email:           strings.TrimSpace(f.Email),
		Username:        strings.TrimSpace(f.Username),
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		FirstName:       strings.TrimSpace(f.FirstName),
		LastName:        strings.TrimSpace(f.LastName),
	}
}

// ValidateRegistration checks a registration form. The first failing rule is
// returned; the server re-validates everything including uniqueness.
func (v *Validator) ValidateRegistration(form RegistrationForm) error {
	if err := v.validateEmail(form.Email); err != nil {
		return err
	}
	if len(strings.TrimSpace(form.Username)) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if err := users.ValidatePasswordStrength(form.Password); err != nil {
		return err
	}
	if form.Password != form.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

// ValidateLogin checks login input for presence and basic email shape.
func (v *Validator) ValidateLogin(email, password string) error {
	if err := v.validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password must be provided")
	}
	return nil
}

func (v *Validator) validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email must be provided")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("email address is not valid")
	}
	if !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}
