package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, malformed tokens and wrong algorithms.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for structurally valid tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the payload carried by issued bearer tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies stateless HS256 bearer tokens. Verification is
// a pure computation with no I/O; there is no revocation list, so a leaked
// token stays valid until its natural expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer with the shared secret and token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token carrying the user ID as subject plus email and role name.
func (t *TokenIssuer) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify validates the signature and expiry and returns the decoded claims.
// ErrTokenExpired and ErrInvalidToken are distinct so callers can report an
// expired credential differently from a tampered one.
func (t *TokenIssuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
