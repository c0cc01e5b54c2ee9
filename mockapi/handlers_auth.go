package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/careerai/go-careerai/api"
	"github.com/careerai/go-careerai/users"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("encoding response")
	}
}

func decodeBody(r *http.Request, out any) bool {
	return json.NewDecoder(r.Body).Decode(out) == nil
}

// RegisterHandler creates an account and answers 201 with a token grant.
// Validation failures come back as a field -> messages map.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit(RouteRegister)

		var req api.RegistrationRequest
		if !decodeBody(r, &req) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed request body."})
			return
		}

		fieldErrors := map[string][]string{}
		if strings.TrimSpace(req.Email) == "" {
			fieldErrors["email"] = append(fieldErrors["email"], "This field is required.")
		}
		if strings.TrimSpace(req.Username) == "" {
			fieldErrors["username"] = append(fieldErrors["username"], "This field is required.")
		}
		if err := users.ValidatePasswordStrength(req.Password); err != nil {
			fieldErrors["password"] = append(fieldErrors["password"], err.Error())
		}
		if req.Password != req.ConfirmPassword {
			fieldErrors["password2"] = append(fieldErrors["password2"], "Passwords do not match.")
		}
		if _, err := s.repo.GetByEmail(req.Email); err == nil {
			fieldErrors["email"] = append(fieldErrors["email"], "A user with this email already exists.")
		}
		if len(fieldErrors) > 0 {
			writeJSON(w, http.StatusBadRequest, fieldErrors)
			return
		}

		hash, err := users.HashPassword(req.Password)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
			return
		}

		user := &users.User{
			Email:        strings.TrimSpace(req.Email),
			Username:     strings.TrimSpace(req.Username),
			PasswordHash: hash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			DateJoined:   NowTimeFunc(),
		}
		if err := s.repo.Upsert(user); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
			return
		}

		s.grantResponse(w, http.StatusCreated, user, "Registration successful")
	}
}

// LoginHandler exchanges credentials for a token grant. Bad credentials
// answer 400 with non_field_errors, matching the backend's login serializer.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit(RouteLogin)

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if !decodeBody(r, &req) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed request body."})
			return
		}

		user, err := s.repo.GetByEmail(strings.TrimSpace(req.Email))
		if err != nil || !users.CheckPasswordHash(req.Password, user.PasswordHash) {
			writeJSON(w, http.StatusBadRequest, map[string][]string{
				"non_field_errors": {"Invalid email or password."},
			})
			return
		}

		user.LastLogin = NowTimeFunc()
		if err := s.repo.Upsert(user); err != nil {
			log.Err(err).Msg("updating last login")
		}

		s.grantResponse(w, http.StatusOK, user, "Login successful")
	}
}

// LogoutHandler blacklists the presented refresh token.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit(RouteLogout)

		var req struct {
			Refresh string `json:"refresh"`
		}
		if !decodeBody(r, &req) || req.Refresh == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Refresh token is required."})
			return
		}

		if err := s.tokens.Blacklist(req.Refresh); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid refresh token."})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
	}
}

// TokenRefreshHandler exchanges a refresh token for a new access token.
func (s *Server) TokenRefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit(RouteTokenRefresh)

		var req struct {
			Refresh string `json:"refresh"`
		}
		if !decodeBody(r, &req) || req.Refresh == "" {
			writeJSON(w, http.StatusBadRequest, map[string][]string{
				"refresh": {"This field is required."},
			})
			return
		}

		userID, err := s.tokens.RedeemRefresh(req.Refresh)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "Token is invalid or expired",
				"code":   "token_not_valid",
			})
			return
		}

		user, err := s.repo.GetByID(userID)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "Token is invalid or expired",
				"code":   "token_not_valid",
			})
			return
		}

		access, err := s.tokens.IssueAccess(user.ID, user.Email)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"access": access})
	}
}

// MeHandler returns the authenticated user's account record.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit("GET " + RouteMe)

		user, err := s.repo.GetByID(requestUserID(r))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "User not found."})
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// MePatchHandler applies a partial update to the account record. Only the
// onboarding flag and name fields are writable.
func (s *Server) MePatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit("PATCH " + RouteMe)

		var req struct {
			IsProfileCompleted *bool   `json:"is_profile_completed"`
			FirstName          *string `json:"first_name"`
			LastName           *string `json:"last_name"`
		}
		if !decodeBody(r, &req) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed request body."})
			return
		}

		user, err := s.repo.GetByID(requestUserID(r))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "User not found."})
			return
		}

		if req.IsProfileCompleted != nil {
			user.IsProfileCompleted = *req.IsProfileCompleted
		}
		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}

		if err := s.repo.Upsert(user); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// ProfilePutHandler replaces the profile fields on the account record and
// marks onboarding complete.
func (s *Server) ProfilePutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit(RouteProfile)

		var profile api.Profile
		if !decodeBody(r, &profile) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed request body."})
			return
		}

		user, err := s.repo.GetByID(requestUserID(r))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "User not found."})
			return
		}

		user.Headline = profile.Headline
		user.Location = profile.Location
		user.Skills = profile.Skills
		user.DesiredJobRole = profile.DesiredJobRole
		user.ExperienceYears = profile.ExperienceYears
		user.IsProfileCompleted = true

		if err := s.repo.Upsert(user); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
	}
}

func (s *Server) grantResponse(w http.ResponseWriter, statusCode int, user *users.User, message string) {
	access, err := s.tokens.IssueAccess(user.ID, user.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
		return
	}
	refresh, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
		return
	}

	writeJSON(w, statusCode, api.TokenGrant{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
		Message:      message,
	})
}
