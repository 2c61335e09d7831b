// Package auth signs and verifies the HS256 tokens that wrap session ids in
// the browser cookie. The token proves the cookie was minted by us; the
// session row it points at remains the source of truth and can be revoked.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zaidasim/swadesh/internal/common"
)

// Claims carries the registered claims plus the server-side session id.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string
}

// GenerateToken mints a signed token for the given session id.
func GenerateToken(sessionID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		SessionID: sessionID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSessionIDFromToken verifies the signature and returns the embedded
// session id. Any parse or validation failure yields common.ErrInvalidToken.
func GetSessionIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.SessionID, nil
}
