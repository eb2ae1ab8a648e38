package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const fallbackSecret = "clinic_dev_secret"

// SessionClaims wraps a server-side session id. The signature only proves the
// token was issued here; the session record is still looked up on every call.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Class     string `json:"cls"`
	jwt.RegisteredClaims
}

// TokenSigner issues and validates session tokens with an HMAC secret.
type TokenSigner struct {
	secret []byte
}

func NewTokenSigner(secret string) *TokenSigner {
	if secret == "" {
		secret = fallbackSecret
	}
	return &TokenSigner{secret: []byte(secret)}
}

// GenerateToken signs the session id together with its owner.
func (s *TokenSigner) GenerateToken(sessionID string, accountID uint64, class string, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		Class:     class,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies the signature and expiry and returns the claims.
func (s *TokenSigner) ValidateToken(encodedToken string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(encodedToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.SessionID == "" {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// AccountID returns the numeric subject of the claims, or 0 if it is not a
// number.
func (c *SessionClaims) AccountID() uint64 {
	return StringToUint64(c.Subject)
}
