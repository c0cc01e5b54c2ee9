// Package cli wires the session manager into the command tree: one lazily
// initialized manager shared by every command, restored from the credential
// store on first use.
package cli

import (
	"context"
	"sync"

	"github.com/pterm/pterm"
	"golang.org/x/oauth2"

	"github.com/careerai/go-careerai/api"
	"github.com/careerai/go-careerai/internal/config"
	"github.com/careerai/go-careerai/session"
	"github.com/careerai/go-careerai/tokens/filestore"
)

// Provider yields the shared session manager and API client for commands.
type Provider struct {
	serverURL   string
	bearerToken string // ephemeral token that bypasses the credential store (for testing)
	config      config.EnvConfig

	managerOnce sync.Once
	manager     *session.Manager
	managerErr  error
}

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string) *Provider {
	return &Provider{
		serverURL: serverURL,
		config:    config.New(),
	}
}

// SetBearerToken injects an ephemeral bearer token for testing. API calls
// then skip the credential store and the renewal machinery entirely.
func (p *Provider) SetBearerToken(token string) {
	p.bearerToken = token
}

// Manager returns the shared session manager, restoring the persisted
// session on first use. A failed restore degrades to an anonymous session
// with a warning rather than blocking the command.
func (p *Provider) Manager(ctx context.Context) (*session.Manager, error) {
	p.managerOnce.Do(func() {
		store, err := p.newStore()
		if err != nil {
			p.managerErr = err
			return
		}
		p.manager = session.NewManager(p.serverURL, store)
		if err := p.manager.Restore(ctx); err != nil {
			pterm.Warning.Printf("Stored session could not be restored: %v\n", err)
		}
	})
	return p.manager, p.managerErr
}

// newStore opens the credential store, honoring the FOLDER override and
// falling back to the default home-directory location.
func (p *Provider) newStore() (*filestore.Store, error) {
	if dir := p.config.GetDataFolder(); dir != "" {
		return filestore.NewAt(dir)
	}
	return filestore.New()
}

// Client returns an API client for commands. With an ephemeral bearer token
// set, the client attaches it via a static token source; otherwise requests
// flow through the session manager's renewing transport.
func (p *Provider) Client(ctx context.Context) (*api.Client, error) {
	if p.bearerToken != "" {
		source := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: p.bearerToken,
			TokenType:   "Bearer",
		})
		httpClient := oauth2.NewClient(context.Background(), source)
		return api.New(p.serverURL, api.WithHTTPClient(httpClient)), nil
	}

	manager, err := p.Manager(ctx)
	if err != nil {
		return nil, err
	}
	return manager.Client(), nil
}
