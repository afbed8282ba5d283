// Package auth implements the credential primitives of the server: signed
// expiring access tokens and one-way password hashing.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"postboard/internal/common"
)

// Claims extends the registered claim set with the account identifier the
// token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// GenerateToken issues a token for userID, signed with secret using the HMAC
// algorithm named by alg (e.g. "HS256") and expiring after validityDuration.
func GenerateToken(userID int64, secret []byte, alg string, validityDuration time.Duration) (string, error) {
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm %q", alg)
	}

	token := jwt.NewWithClaims(method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString and extracts the user_id claim.
// Every failure mode (bad signature, malformed token, expiry, missing claim,
// unexpected algorithm) collapses into ErrInvalidToken so the caller cannot
// distinguish the causes.
func GetUserIDFromToken(tokenString string, secret []byte, alg string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{alg}))
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
