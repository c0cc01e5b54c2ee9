package config

import "time"

type TokenConfig interface {
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetRefreshTokenLength() int
	GetSigningSecret() string
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetAccessTokenExpiry() time.Duration {
	return 15 * time.Minute
}

func (Tokens) GetRefreshTokenExpiry() time.Duration {
	return 7 * 24 * time.Hour // 7 days
}

func (Tokens) GetRefreshTokenLength() int {
	return 32 // 32 bytes = 256 bits
}

// GetSigningSecret returns the HMAC secret used by the mock API server to
// sign access tokens. Never use the default outside local development.
func (Tokens) GetSigningSecret() string {
	return GetEnv("SIGNING_SECRET", "careerai-dev-secret")
}
