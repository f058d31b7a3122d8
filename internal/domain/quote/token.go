package quote

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"io"
	"time"

	"workshop-quotes/internal/pkg/errs"

	"github.com/google/uuid"
)

const tokenBytes = 32

var ErrTokenGeneration = errs.New("failed to generate public token")

// TokenIssuer mints and checks public approval links.
type TokenIssuer struct {
	ttl    time.Duration
	random io.Reader
}

func NewTokenIssuer(ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{ttl: ttl, random: rand.Reader}
}

// NewTokenIssuerWithSource is used by tests that need deterministic tokens.
func NewTokenIssuerWithSource(ttl time.Duration, random io.Reader) *TokenIssuer {
	return &TokenIssuer{ttl: ttl, random: random}
}

func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

func (i *TokenIssuer) Issue(now time.Time) (PublicLink, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(i.random, buf); err != nil {
		return PublicLink{}, errs.Mark(err, ErrTokenGeneration)
	}
	return PublicLink{
		Token:     base64.RawURLEncoding.EncodeToString(buf),
		ExpiresAt: now.Add(i.ttl),
	}, nil
}

// Validate checks that token opens q for tenantID at now. q may be nil when the
// lookup found nothing.
func (i *TokenIssuer) Validate(q *Quote, token string, tenantID uuid.UUID, now time.Time) error {
	if token == "" || q == nil || q.s.Link == nil {
		return &TokenError{Reason: TokenMissing}
	}
	if q.s.TenantID != tenantID || subtle.ConstantTimeCompare([]byte(q.s.Link.Token), []byte(token)) != 1 {
		return &TokenError{Reason: TokenMismatched}
	}
	if q.s.Link.ExpiredAt(now) {
		return &TokenError{Reason: TokenExpired}
	}
	return nil
}
