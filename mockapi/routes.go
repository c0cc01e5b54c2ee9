package mockapi

import "net/http"

const (
	RouteRegister     = "/api/auth/register/"
	RouteLogin        = "/api/auth/login/"
	RouteLogout       = "/api/auth/logout/"
	RouteMe           = "/api/auth/me/"
	RouteProfile      = "/api/auth/profile/"
	RouteTokenRefresh = "/api/token/refresh/"
	RouteCourses      = "/api/courses/"
	RouteJobs         = "/api/jobs/"
)

func (s *Server) initRoutes() {
	// Anonymous auth routes
	s.RegisterRouteFunc("POST "+RouteRegister, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteTokenRefresh, ChainMiddleware(s.TokenRefreshHandler(), s.APIMiddleware()...))

	// Bearer-protected routes
	s.RegisterRouteFunc("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteMe, ChainMiddleware(s.MeHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteFunc("PATCH "+RouteMe, ChainMiddleware(s.MePatchHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteFunc("PUT "+RouteProfile, ChainMiddleware(s.ProfilePutHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteCourses, ChainMiddleware(s.CoursesHandler(), s.ProtectedMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteJobs, ChainMiddleware(s.JobsHandler(), s.ProtectedMiddleware()...))
}

// APIMiddleware is the middleware stack for anonymous API routes.
func (s *Server) APIMiddleware() []func(http.HandlerFunc) http.HandlerFunc {
	return []func(http.HandlerFunc) http.HandlerFunc{
		s.LoggingMiddleware,
		s.RecoverMiddleware,
	}
}

// ProtectedMiddleware is the middleware stack for bearer-protected routes.
func (s *Server) ProtectedMiddleware() []func(http.HandlerFunc) http.HandlerFunc {
	return append(s.APIMiddleware(), s.RequireBearerAuth)
}
