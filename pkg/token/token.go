package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Callers reject on any of them; the split exists
// so the gate can log the precise reason without echoing it to the client.
var (
	ErrMissingSecret = errors.New("token: signing secret is empty")
	ErrMalformed     = errors.New("token: malformed token")
	ErrBadSignature  = errors.New("token: signature mismatch")
	ErrExpired       = errors.New("token: token expired")
)

// Service issues and verifies HS256-signed bearer tokens. The signing secret
// is fixed at construction and read-only afterwards.
type Service struct {
	secret []byte
	issuer string
}

// NewService constructs a Service. An empty secret is refused so that
// misconfiguration surfaces at startup rather than on the first request.
func NewService(secret, issuer string) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Service{secret: []byte(secret), issuer: issuer}, nil
}

// Issue signs a token binding subject with an absolute expiry of now+ttl.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
	}
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the subject claim. No
// other claim is surfaced. The verifying process's own clock is used; there
// is no skew grace window.
func (s *Service) Verify(token string) (string, error) {
	claims := &jwtlib.RegisteredClaims{}
	parsed, err := jwtlib.ParseWithClaims(token, claims, func(t *jwtlib.Token) (interface{}, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}))
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		default:
			return "", ErrMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}
