package tokens

// Pair is the access/refresh bearer token pair issued by the CareerAI API.
// The two tokens are always written and cleared together.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Credentials is the durable client-side record: the token pair plus the
// onboarding-completion hint. The hint is a cache of the server-held flag,
// not a source of truth; it lives in the same record so that all three
// values share one lifecycle.
type Credentials struct {
	Pair
	ProfileCompleted bool `json:"profile_completed,omitempty"`
}

// Store persists Credentials across application runs. Load returns
// (nil, nil) when nothing is stored.
type Store interface {
	Save(creds *Credentials) error
	Load() (*Credentials, error)
	Clear() error
}
