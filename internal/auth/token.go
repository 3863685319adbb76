package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single outcome for every verification failure.
// Signature mismatch, malformed input and expiry are deliberately not
// distinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity a signed token asserts. Role is set on session
// tokens and empty on password-reset tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Role   string `json:"role,omitempty"`
}

// SignToken produces a compact HS256 token asserting the user id (and role,
// when non-empty) for the given lifetime. One code path serves both session
// and reset tokens; only the claims and ttl differ.
func SignToken(userID int64, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Role:   role,
	})
	return token.SignedString(secret)
}

// VerifyToken checks the signature and expiry and returns the decoded claims
// only when both pass.
func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
