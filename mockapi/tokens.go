package mockapi

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/careerai/go-careerai/internal/config"
	apperrors "github.com/careerai/go-careerai/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// TokenService issues short-lived JWT access tokens and opaque refresh
// tokens. Refresh tokens are stored server-side so logout can blacklist them.
type TokenService struct {
	config config.TokenConfig

	lock    sync.RWMutex
	refresh map[string]storedRefreshToken
}

type storedRefreshToken struct {
	UserID string
	Iat    time.Time
}

// NewTokenService creates a TokenService using cfg for expiries and signing.
func NewTokenService(cfg config.TokenConfig) *TokenService {
	return &TokenService{
		config:  cfg,
		refresh: make(map[string]storedRefreshToken),
	}
}

// IssueAccess creates a signed access token for the user.
func (ts *TokenService) IssueAccess(userID, email string) (string, error) {
	now := NowTimeFunc()
	claims := jwtlib.MapClaims{
		"sub":        userID,
		"email":      email,
		"token_type": "access",
		"iat":        now.Unix(),
		"exp":        now.Add(ts.config.GetAccessTokenExpiry()).Unix(),
		"jti":        uuid.New().String(),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ts.config.GetSigningSecret()))
	if err != nil {
		return "", errors.Wrap(err, "[TokenService.IssueAccess] signing")
	}
	return signed, nil
}

// VerifyAccess validates an access token and returns the user ID it was
// issued for.
func (ts *TokenService) VerifyAccess(tokenStr string) (string, error) {
	token, err := jwtlib.Parse(tokenStr, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(ts.config.GetSigningSecret()), nil
	}, jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }))
	if err != nil || !token.Valid {
		return "", apperrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", apperrors.ErrUnauthorized
	}
	return sub, nil
}

// IssueRefresh creates an opaque refresh token bound to the user.
func (ts *TokenService) IssueRefresh(userID string) (string, error) {
	tokenBytes := make([]byte, ts.config.GetRefreshTokenLength())
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", errors.Wrap(err, "[TokenService.IssueRefresh] random bytes")
	}
	tokenStr := hex.EncodeToString(tokenBytes)

	ts.lock.Lock()
	defer ts.lock.Unlock()
	ts.refresh[tokenStr] = storedRefreshToken{
		UserID: userID,
		Iat:    NowTimeFunc(),
	}
	return tokenStr, nil
}

// RedeemRefresh validates a refresh token and returns the user ID. The token
// stays valid; the server does not rotate refresh tokens.
func (ts *TokenService) RedeemRefresh(tokenStr string) (string, error) {
	ts.lock.RLock()
	stored, ok := ts.refresh[tokenStr]
	ts.lock.RUnlock()

	if !ok {
		return "", apperrors.ErrInvalidRefreshToken
	}
	if NowTimeFunc().Sub(stored.Iat) > ts.config.GetRefreshTokenExpiry() {
		ts.lock.Lock()
		delete(ts.refresh, tokenStr)
		ts.lock.Unlock()
		return "", apperrors.ErrRefreshTokenExpired
	}
	return stored.UserID, nil
}

// Blacklist invalidates a refresh token. Unknown tokens are rejected so
// logout with a bogus token reports an error.
func (ts *TokenService) Blacklist(tokenStr string) error {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	if _, ok := ts.refresh[tokenStr]; !ok {
		return apperrors.ErrInvalidRefreshToken
	}
	delete(ts.refresh, tokenStr)
	return nil
}
