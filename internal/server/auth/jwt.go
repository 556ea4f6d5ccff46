// Package auth implements the session-token codec: a signed, self-contained
// credential carrying identity and authorization claims, verified without
// any server-side lookup.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vrajdev/sadhana-backend/internal/common"
)

// TokenType marks every credential issued by this service.
const TokenType = "access"

// Claims carries the registered JWT claims plus the account identity:
// the subject email, the privileged flag and the id of the account's
// private stats table.
type Claims struct {
	jwt.RegisteredClaims
	Email        string `json:"email"`
	IsPrivileged bool   `json:"is_privileged"`
	TableID      string `json:"table_id"`
	TokenType    string `json:"token_type"`
}

// GenerateToken issues an HS256-signed session token for the given account.
// The jti is random so individual tokens could be revoked later if a
// denylist is ever added.
func GenerateToken(email string, privileged bool, tableID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Email:        email,
		IsPrivileged: privileged,
		TableID:      tableID,
		TokenType:    TokenType,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a session token and
// returns its claims. Expired tokens map to common.ErrorTokenExpired,
// every other verification failure to common.ErrorInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrorTokenExpired
		}
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	return claims, nil
}
