// Package guard turns session snapshots into navigation decisions: render the
// requested page, hold on a placeholder while the session is still settling,
// or redirect to login / onboarding.
package guard

import "github.com/careerai/go-careerai/session"

// Action is the outcome of a guard check.
type Action string

const (
	// Render lets the requested page through.
	Render Action = "render"
	// Placeholder holds the navigation while the session is still loading.
	// The requested location must not be abandoned.
	Placeholder Action = "placeholder"
	// Redirect sends the visitor to Target, remembering From.
	Redirect Action = "redirect"
)

// Decision is a guard verdict. From carries the originally requested
// location on a redirect so a later login can return there.
type Decision struct {
	Action Action
	Target string
	From   string
}

// Check evaluates a snapshot for a requested location.
type Check func(snap session.Snapshot, requested string) Decision

// Guard bundles the redirect targets used by the checks.
type Guard struct {
	LoginPath      string
	OnboardingPath string
}

// New creates a Guard with the default paths.
func New() *Guard {
	return &Guard{
		LoginPath:      "/login",
		OnboardingPath: "/complete-profile",
	}
}

// AuthRequired admits authenticated sessions. While the session is loading
// the decision is always Placeholder, even when no credentials are present
// yet: redirecting before the restore settles would bounce a returning user
// to login for no reason.
func (g *Guard) AuthRequired(snap session.Snapshot, requested string) Decision {
	if snap.IsLoading {
		return Decision{Action: Placeholder}
	}
	if !snap.IsAuthenticated {
		return Decision{Action: Redirect, Target: g.LoginPath, From: requested}
	}
	return Decision{Action: Render}
}

// OnboardingRequired admits authenticated sessions that finished onboarding.
// The server-held completion flag wins once the account record is loaded;
// the persisted hint only covers the window before that.
func (g *Guard) OnboardingRequired(snap session.Snapshot, requested string) Decision {
	if d := g.AuthRequired(snap, requested); d.Action != Render {
		return d
	}
	if !snap.ProfileCompleted() {
		return Decision{Action: Redirect, Target: g.OnboardingPath, From: requested}
	}
	return Decision{Action: Render}
}
