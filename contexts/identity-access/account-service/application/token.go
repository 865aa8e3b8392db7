package application

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ruleset/contexts/identity-access/account-service/domain/entities"
	domainerrors "ruleset/contexts/identity-access/account-service/domain/errors"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthClaims is the bearer token payload. Subject carries the user id.
type AuthClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	SellerID string `json:"seller_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
}

func (t TokenIssuer) Issue(user entities.User, now time.Time) (string, error) {
	ttl := t.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	claims := AuthClaims{
		Email:    user.Email,
		Role:     string(user.Role),
		SellerID: user.SellerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
}

func (t TokenIssuer) Verify(tokenString string) (AuthClaims, error) {
	var claims AuthClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrInvalidToken
		}
		return t.Secret, nil
	})
	if err != nil || !token.Valid {
		return AuthClaims{}, domainerrors.ErrInvalidToken
	}
	return claims, nil
}
