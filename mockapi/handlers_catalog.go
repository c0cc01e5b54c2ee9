package mockapi

import (
	"net/http"
	"strings"

	"github.com/careerai/go-careerai/api"
)

var mockCourses = []api.Course{
	{
		ID:              "c1f6e9d0-9f3a-4a9d-8a1e-111111111111",
		Title:           "Go for Backend Engineers",
		Description:     "Build and operate production HTTP services in Go.",
		CategoryName:    "Software Engineering",
		DifficultyLevel: "intermediate",
		DurationWeeks:   6,
		InstructorName:  "Dana Whitfield",
		AverageRating:   4.7,
		TotalReviews:    318,
	},
	{
		ID:              "c1f6e9d0-9f3a-4a9d-8a1e-222222222222",
		Title:           "SQL Fundamentals",
		Description:     "Query, model and index relational data.",
		CategoryName:    "Data",
		DifficultyLevel: "beginner",
		DurationWeeks:   4,
		InstructorName:  "Marcus Oyelaran",
		AverageRating:   4.5,
		TotalReviews:    1204,
	},
	{
		ID:              "c1f6e9d0-9f3a-4a9d-8a1e-333333333333",
		Title:           "System Design Interviews",
		Description:     "Practice the designs interviewers actually ask about.",
		CategoryName:    "Career",
		DifficultyLevel: "advanced",
		DurationWeeks:   8,
		InstructorName:  "Priya Nandakumar",
		AverageRating:   4.8,
		TotalReviews:    642,
	},
}

var mockJobs = []api.Job{
	{
		ID:             "j0b00000-0000-0000-0000-111111111111",
		Title:          "Backend Engineer",
		CompanyName:    "Northwind Labs",
		LocationName:   "Berlin",
		EmploymentType: "full_time",
		SalaryMin:      70000,
		SalaryMax:      95000,
		RequiredSkills: []string{"Go", "PostgreSQL", "Kubernetes"},
	},
	{
		ID:             "j0b00000-0000-0000-0000-222222222222",
		Title:          "Data Analyst",
		CompanyName:    "Brightline Analytics",
		LocationName:   "Remote",
		IsRemote:       true,
		EmploymentType: "full_time",
		SalaryMin:      55000,
		SalaryMax:      75000,
		RequiredSkills: []string{"SQL", "Python", "Tableau"},
	},
	{
		ID:             "j0b00000-0000-0000-0000-333333333333",
		Title:          "Platform Engineer",
		CompanyName:    "Northwind Labs",
		LocationName:   "Amsterdam",
		EmploymentType: "contract",
		SalaryMin:      80000,
		SalaryMax:      110000,
		RequiredSkills: []string{"Go", "Terraform", "AWS"},
	},
}

// CoursesHandler returns the course catalog.
func (s *Server) CoursesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit(RouteCourses)
		writeJSON(w, http.StatusOK, mockCourses)
	}
}

// JobsHandler returns job postings, filtered by the search query when one is
// given. The filter matches title, company and skills, case-insensitively.
func (s *Server) JobsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.countHit(RouteJobs)

		query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))
		if query == "" {
			writeJSON(w, http.StatusOK, mockJobs)
			return
		}

		matches := make([]api.Job, 0, len(mockJobs))
		for _, job := range mockJobs {
			if jobMatches(job, query) {
				matches = append(matches, job)
			}
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func jobMatches(job api.Job, query string) bool {
	if strings.Contains(strings.ToLower(job.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(job.CompanyName), query) {
		return true
	}
	for _, skill := range job.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}
