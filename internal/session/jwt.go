package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/authz"
)

type TokenClaims struct {
	UserID    string     `json:"uid"`
	Role      authz.Role `json:"role"`
	TokenType string     `json:"typ"`
	jwt.RegisteredClaims
}

var errInvalidToken = errors.New("invalid token")

// IssueToken signs an access token for the given account.
func (m *Manager) IssueToken(a Account) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID:    a.ID,
		Role:      a.Role,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken parses and validates an access token.
func (m *Manager) VerifyToken(raw string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	if claims.TokenType != "access" {
		return nil, errInvalidToken
	}
	return claims, nil
}
