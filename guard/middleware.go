package guard

import (
	"net/http"
	"net/url"

	"github.com/careerai/go-careerai/session"
)

// Source yields the current session snapshot. *session.Manager satisfies it.
type Source interface {
	Snapshot() session.Snapshot
}

// Middleware wraps a handler with a guard check. A Placeholder decision
// answers 200 with a holding page so the requested location is preserved; a
// Redirect answers 303 to the target with the requested location in the
// next query parameter.
func Middleware(src Source, check Check) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			decision := check(src.Snapshot(), r.URL.RequestURI())

			switch decision.Action {
			case Placeholder:
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("Checking authentication status..."))
			case Redirect:
				target := decision.Target
				if decision.From != "" {
					target += "?next=" + url.QueryEscape(decision.From)
				}
				http.Redirect(w, r, target, http.StatusSeeOther)
			default:
				next(w, r)
			}
		}
	}
}

// ChainMiddleware composes middleware so the first listed runs outermost.
func ChainMiddleware(h http.HandlerFunc, middleware ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
