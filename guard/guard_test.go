package guard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careerai/go-careerai/guard"
	"github.com/careerai/go-careerai/session"
	"github.com/careerai/go-careerai/users"
)

type staticSource struct {
	snap session.Snapshot
}

func (s staticSource) Snapshot() session.Snapshot { return s.snap }

func TestGuard_AuthRequired(t *testing.T) {
	g := guard.New()

	t.Run("loading holds on placeholder", func(t *testing.T) {
		snap := session.Snapshot{IsLoading: true}
		d := g.AuthRequired(snap, "/dashboard")
		require.Equal(t, guard.Placeholder, d.Action)
	})

	t.Run("loading wins even without credentials", func(t *testing.T) {
		snap := session.Snapshot{IsLoading: true, IsAuthenticated: false}
		d := g.AuthRequired(snap, "/dashboard")
		require.Equal(t, guard.Placeholder, d.Action)
	})

	t.Run("anonymous redirects to login with origin", func(t *testing.T) {
		snap := session.Snapshot{}
		d := g.AuthRequired(snap, "/dashboard?tab=jobs")
		require.Equal(t, guard.Redirect, d.Action)
		require.Equal(t, "/login", d.Target)
		require.Equal(t, "/dashboard?tab=jobs", d.From)
	})

	t.Run("authenticated renders", func(t *testing.T) {
		snap := session.Snapshot{IsAuthenticated: true, User: &users.User{}}
		d := g.AuthRequired(snap, "/dashboard")
		require.Equal(t, guard.Render, d.Action)
	})
}

func TestGuard_OnboardingRequired(t *testing.T) {
	g := guard.New()

	t.Run("anonymous still goes to login first", func(t *testing.T) {
		d := g.OnboardingRequired(session.Snapshot{}, "/jobs")
		require.Equal(t, guard.Redirect, d.Action)
		require.Equal(t, "/login", d.Target)
	})

	t.Run("incomplete onboarding redirects", func(t *testing.T) {
		snap := session.Snapshot{
			IsAuthenticated: true,
			User:            &users.User{IsProfileCompleted: false},
		}
		d := g.OnboardingRequired(snap, "/jobs")
		require.Equal(t, guard.Redirect, d.Action)
		require.Equal(t, "/complete-profile", d.Target)
		require.Equal(t, "/jobs", d.From)
	})

	t.Run("completed onboarding renders", func(t *testing.T) {
		snap := session.Snapshot{
			IsAuthenticated: true,
			User:            &users.User{IsProfileCompleted: true},
		}
		d := g.OnboardingRequired(snap, "/jobs")
		require.Equal(t, guard.Render, d.Action)
	})

	t.Run("server flag beats stale hint", func(t *testing.T) {
		snap := session.Snapshot{
			IsAuthenticated: true,
			User:            &users.User{IsProfileCompleted: false},
			ProfileHint:     true,
		}
		d := g.OnboardingRequired(snap, "/jobs")
		require.Equal(t, guard.Redirect, d.Action)
		require.Equal(t, "/complete-profile", d.Target)
	})
}

func TestMiddleware(t *testing.T) {
	g := guard.New()
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("page"))
	}

	t.Run("renders for authenticated session", func(t *testing.T) {
		src := staticSource{snap: session.Snapshot{IsAuthenticated: true, User: &users.User{}}}
		wrapped := guard.Middleware(src, g.AuthRequired)(handler)

		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "page", rec.Body.String())
	})

	t.Run("placeholder while loading", func(t *testing.T) {
		src := staticSource{snap: session.Snapshot{IsLoading: true}}
		wrapped := guard.Middleware(src, g.AuthRequired)(handler)

		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Checking authentication status")
	})

	t.Run("redirects anonymous to login keeping origin", func(t *testing.T) {
		src := staticSource{snap: session.Snapshot{}}
		wrapped := guard.Middleware(src, g.AuthRequired)(handler)

		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodGet, "/dashboard?tab=jobs", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/login?next=%2Fdashboard%3Ftab%3Djobs", rec.Header().Get("Location"))
	})

	t.Run("chains with onboarding check", func(t *testing.T) {
		src := staticSource{snap: session.Snapshot{
			IsAuthenticated: true,
			User:            &users.User{IsProfileCompleted: false},
		}}
		wrapped := guard.ChainMiddleware(handler, guard.Middleware(src, g.OnboardingRequired))

		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/complete-profile?next=%2Fjobs", rec.Header().Get("Location"))
	})
}
