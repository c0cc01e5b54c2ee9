// Package session owns the authentication lifecycle: restoring a persisted
// session on startup, login/registration, silent access-token renewal, logout
// and profile updates. All state transitions flow through the Manager, which
// publishes immutable snapshots to subscribers.
package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/careerai/go-careerai/api"
	apperrors "github.com/careerai/go-careerai/internal/errors"
	"github.com/careerai/go-careerai/tokens"
	"github.com/careerai/go-careerai/transport"
	"github.com/careerai/go-careerai/users"
)

// State names the session lifecycle phase.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateRenewing       State = "renewing"
)

// Snapshot is an immutable view of the session at a point in time. User is a
// copy; mutating it does not affect the Manager.
type Snapshot struct {
	State           State
	User            *users.User
	IsAuthenticated bool
	IsLoading       bool
	LastError       error
	ProfileHint     bool
}

// ProfileCompleted reports whether onboarding is done. The server-held flag
// wins whenever the account record has been fetched; the persisted hint only
// fills the gap before the first fetch settles.
func (s Snapshot) ProfileCompleted() bool {
	if s.User != nil {
		return s.User.IsProfileCompleted
	}
	return s.ProfileHint
}

// Update describes a profile change. Exactly one field should be set:
// ProfileCompleted flips the onboarding flag with an optimistic partial
// update, Profile replaces the whole profile and re-fetches the account
// record.
type Update struct {
	ProfileCompleted *bool
	Profile          *api.Profile
}

// Manager drives the session. It wires the token-attaching transport into an
// API client so every authorized call gets bearer attachment and silent
// renewal, while renewal itself goes through a plain client that is never
// intercepted.
type Manager struct {
	client  *api.Client // intercepted: bearer + renew-and-retry
	backend *api.Client // plain: the refresh exchange only, never intercepted
	store   tokens.Store
	logger  zerolog.Logger

	renewGroup singleflight.Group

	lock    sync.RWMutex
	state   State
	user    *users.User
	loading bool
	lastErr error
	hint    bool
	access  string
	refresh string

	subLock sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

// ManagerOptions configures Manager construction.
type ManagerOptions struct {
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// ManagerOption mutates ManagerOptions.
type ManagerOption func(*ManagerOptions)

// WithHTTPClient sets the base HTTP client wrapped by the auth transport.
func WithHTTPClient(client *http.Client) ManagerOption {
	return func(opts *ManagerOptions) {
		opts.HTTPClient = client
	}
}

// WithLogger sets the logger used for background failures.
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(opts *ManagerOptions) {
		opts.Logger = logger
	}
}

// NewManager creates a Manager talking to the API at baseURL and persisting
// tokens in store. The Manager starts in the loading state; call Restore to
// settle it.
func NewManager(baseURL string, store tokens.Store, optFns ...ManagerOption) *Manager {
	opts := ManagerOptions{
		Logger: zerolog.Nop(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}

	m := &Manager{
		store:   store,
		logger:  opts.Logger,
		state:   StateAnonymous,
		loading: true,
		subs:    make(map[int]chan struct{}),
	}

	authed := &http.Client{
		Transport: &transport.AuthTransport{
			Base:    opts.HTTPClient.Transport,
			Source:  m,
			Renewer: m,
		},
		Timeout: opts.HTTPClient.Timeout,
	}
	m.client = api.New(baseURL, api.WithHTTPClient(authed))
	m.backend = api.New(baseURL, api.WithHTTPClient(opts.HTTPClient))

	return m
}

// Client returns the API client whose requests carry the session's bearer
// token and silent-renewal behavior.
func (m *Manager) Client() *api.Client {
	return m.client
}

// AccessToken implements transport.TokenSource.
func (m *Manager) AccessToken() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.access
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.lock.RLock()
	defer m.lock.RUnlock()

	snap := Snapshot{
		State:           m.state,
		IsAuthenticated: m.user != nil,
		IsLoading:       m.loading,
		LastError:       m.lastErr,
		ProfileHint:     m.hint,
	}
	if m.user != nil {
		copied := *m.user
		snap.User = &copied
	}
	return snap
}

// Subscribe returns a channel that receives a signal after every state
// change, and a cancel function. The channel is never closed before cancel;
// signals coalesce when the subscriber lags.
func (m *Manager) Subscribe() (<-chan struct{}, func()) {
	m.subLock.Lock()
	defer m.subLock.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan struct{}, 1)
	m.subs[id] = ch

	cancel := func() {
		m.subLock.Lock()
		defer m.subLock.Unlock()
		delete(m.subs, id)
	}
	return ch, cancel
}

func (m *Manager) notify() {
	m.subLock.Lock()
	defer m.subLock.Unlock()

	for _, ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Restore rebuilds the session from the persisted credentials. With no stored
// pair it settles into the anonymous state without a network call. With a
// pair it seeds the tokens and fetches the account record; a stale access
// token heals transparently through the renewal path. Any failure clears the
// session.
func (m *Manager) Restore(ctx context.Context) error {
	creds, err := m.store.Load()
	if err != nil {
		m.settleAnonymous()
		return errors.Wrap(err, "[Manager.Restore] load credentials")
	}
	if creds == nil || creds.AccessToken == "" {
		m.settleAnonymous()
		return nil
	}

	m.lock.Lock()
	m.access = creds.AccessToken
	m.refresh = creds.RefreshToken
	m.hint = creds.ProfileCompleted
	m.loading = true
	m.state = StateAuthenticating
	m.lock.Unlock()
	m.notify()

	user, err := m.client.Me(ctx)
	if err != nil {
		m.clearSession()
		return errors.Wrap(err, "[Manager.Restore] session validation")
	}

	m.lock.Lock()
	m.user = user
	m.hint = user.IsProfileCompleted
	m.lastErr = nil
	m.loading = false
	m.state = StateAuthenticated
	m.lock.Unlock()
	m.notify()
	return nil
}

// Login exchanges credentials for a session. On failure the previous state is
// kept except LastError, so the caller can re-render the form.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.beginAuth()

	grant, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.failAuth(err)
		return errors.Wrap(err, "[Manager.Login] credential exchange")
	}

	if err := m.adoptGrant(grant); err != nil {
		return errors.Wrap(err, "[Manager.Login] adopt session")
	}
	return nil
}

// Register creates an account and starts a session in one step.
func (m *Manager) Register(ctx context.Context, reg api.RegistrationRequest) error {
	m.beginAuth()

	grant, err := m.client.Register(ctx, reg)
	if err != nil {
		m.failAuth(err)
		return errors.Wrap(err, "[Manager.Register] registration exchange")
	}

	if err := m.adoptGrant(grant); err != nil {
		return errors.Wrap(err, "[Manager.Register] adopt session")
	}
	return nil
}

// Logout notifies the server so the refresh token is blacklisted, then
// unconditionally clears the local session. Logging out when already
// anonymous is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.lock.RLock()
	refresh := m.refresh
	authed := m.user != nil || m.access != ""
	m.lock.RUnlock()

	if !authed {
		return
	}

	if refresh != "" {
		if err := m.client.Logout(ctx, refresh); err != nil {
			m.logger.Warn().Err(err).Msg("logout notification failed")
		}
	}

	m.clearSession()
}

// Renew exchanges the refresh token for a new access token. Concurrent calls
// coalesce into a single exchange. A missing refresh token fails without a
// network call; any failure ends the session.
func (m *Manager) Renew(ctx context.Context) error {
	_, err, _ := m.renewGroup.Do("renew", func() (any, error) {
		return nil, m.renew(ctx)
	})
	return err
}

func (m *Manager) renew(ctx context.Context) error {
	m.lock.Lock()
	refresh := m.refresh
	if refresh == "" {
		m.lock.Unlock()
		m.clearSession()
		return errors.Wrap(apperrors.ErrNoRefreshToken, "[Manager.Renew]")
	}
	if m.state == StateAuthenticated {
		m.state = StateRenewing
	}
	m.lock.Unlock()
	m.notify()

	access, err := m.backend.Refresh(ctx, refresh)
	if err != nil {
		m.clearSession()
		return errors.Wrap(err, "[Manager.Renew] token exchange")
	}

	m.lock.Lock()
	m.access = access
	if m.state == StateRenewing {
		m.state = StateAuthenticated
	}
	hint := m.hint
	m.lock.Unlock()
	m.notify()

	if err := m.store.Save(&tokens.Credentials{
		Pair:             tokens.Pair{AccessToken: access, RefreshToken: refresh},
		ProfileCompleted: hint,
	}); err != nil {
		m.logger.Warn().Err(err).Msg("persisting renewed credentials failed")
	}
	return nil
}

// UpdateProfile applies a profile change. Flipping the onboarding flag is
// optimistic: the server response updates the in-memory record and the
// persisted hint without a re-fetch. A full profile replace re-fetches the
// account record so derived fields stay canonical. Failure in either mode
// sets LastError and leaves the prior state untouched.
func (m *Manager) UpdateProfile(ctx context.Context, update Update) error {
	switch {
	case update.ProfileCompleted != nil:
		user, err := m.client.SetProfileCompleted(ctx, *update.ProfileCompleted)
		if err != nil {
			m.setLastError(err)
			return errors.Wrap(err, "[Manager.UpdateProfile] completion update")
		}
		m.adoptUser(user)
		return nil

	case update.Profile != nil:
		if err := m.client.ReplaceProfile(ctx, *update.Profile); err != nil {
			m.setLastError(err)
			return errors.Wrap(err, "[Manager.UpdateProfile] profile replace")
		}
		user, err := m.client.Me(ctx)
		if err != nil {
			m.setLastError(err)
			return errors.Wrap(err, "[Manager.UpdateProfile] account re-fetch")
		}
		m.adoptUser(user)
		return nil
	}

	return errors.New("[Manager.UpdateProfile] empty update")
}

func (m *Manager) beginAuth() {
	m.lock.Lock()
	m.loading = true
	m.state = StateAuthenticating
	m.lastErr = nil
	m.lock.Unlock()
	m.notify()
}

func (m *Manager) failAuth(err error) {
	m.lock.Lock()
	m.loading = false
	if m.user != nil {
		m.state = StateAuthenticated
	} else {
		m.state = StateAnonymous
	}
	m.lastErr = err
	m.lock.Unlock()
	m.notify()
}

func (m *Manager) adoptGrant(grant *api.TokenGrant) error {
	hint := grant.User != nil && grant.User.IsProfileCompleted

	m.lock.Lock()
	m.access = grant.AccessToken
	m.refresh = grant.RefreshToken
	m.user = grant.User
	m.hint = hint
	m.lastErr = nil
	m.loading = false
	m.state = StateAuthenticated
	m.lock.Unlock()
	m.notify()

	if err := m.store.Save(&tokens.Credentials{
		Pair: tokens.Pair{
			AccessToken:  grant.AccessToken,
			RefreshToken: grant.RefreshToken,
		},
		ProfileCompleted: hint,
	}); err != nil {
		return errors.Wrap(err, "persist credentials")
	}
	return nil
}

// setLastError records a failure on the session surface without touching the
// rest of the state.
func (m *Manager) setLastError(err error) {
	m.lock.Lock()
	m.lastErr = err
	m.lock.Unlock()
	m.notify()
}

func (m *Manager) adoptUser(user *users.User) {
	m.lock.Lock()
	m.user = user
	m.hint = user.IsProfileCompleted
	m.lastErr = nil
	access := m.access
	refresh := m.refresh
	hint := m.hint
	m.lock.Unlock()
	m.notify()

	if err := m.store.Save(&tokens.Credentials{
		Pair:             tokens.Pair{AccessToken: access, RefreshToken: refresh},
		ProfileCompleted: hint,
	}); err != nil {
		m.logger.Warn().Err(err).Msg("persisting profile hint failed")
	}
}

func (m *Manager) settleAnonymous() {
	m.lock.Lock()
	m.loading = false
	m.state = StateAnonymous
	m.lock.Unlock()
	m.notify()
}

func (m *Manager) clearSession() {
	m.lock.Lock()
	m.access = ""
	m.refresh = ""
	m.user = nil
	m.hint = false
	m.loading = false
	m.state = StateAnonymous
	m.lock.Unlock()
	m.notify()

	if err := m.store.Clear(); err != nil {
		m.logger.Warn().Err(err).Msg("clearing stored credentials failed")
	}
}
