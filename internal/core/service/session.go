package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/pkg/clock"
)

// SessionIssuer signs HS256 session tokens. Tokens carry identity only.
type SessionIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewSessionIssuer(secret string, ttl time.Duration, clk clock.Clock) *SessionIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &SessionIssuer{secret: []byte(secret), ttl: ttl, clock: clk}
}

// ForClient issues a client session token.
func (s *SessionIssuer) ForClient(c *domain.Client) (string, error) {
	return s.sign(jwt.MapClaims{
		"role":      domain.RoleClient,
		"client_id": c.ID,
		"phone":     c.Phone,
	})
}

// ForAdmin issues an administrator session token.
func (s *SessionIssuer) ForAdmin(username string) (string, error) {
	return s.sign(jwt.MapClaims{
		"role":     domain.RoleAdmin,
		"username": username,
	})
}

func (s *SessionIssuer) sign(claims jwt.MapClaims) (string, error) {
	now := s.clock.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
