package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired reports a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers bad signatures and malformed tokens.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims bind the authenticated identity to a token.
type Claims struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	UserID   string `json:"userid"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies signed identity tokens using a
// process-wide secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue signs a token for the given user, valid for the configured TTL.
func (t *TokenIssuer) Issue(userID, username, fullName string) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(t.ttl)
	claims := Claims{
		Username: username,
		FullName: fullName,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	return signed, expires, err
}

// Verify checks signature and expiry and returns the decoded claims.
// Expired and forged tokens are distinguished internally, but callers that
// surface the failure to clients should report both the same way.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
