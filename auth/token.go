package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session token payload: the user id in the standard
// "sub" claim plus issue and expiry times.
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens. The signing secret is set once
// at construction and never mutated afterwards.
type Issuer struct {
	secret   []byte
	validity time.Duration
}

func NewIssuer(secret []byte, validity time.Duration) *Issuer {
	return &Issuer{secret: secret, validity: validity}
}

// Issue creates a signed HS256 token for the given user id.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
	})
	return token.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the user id and issue time.
// Only HS256 is accepted; tokens signed with any other method (including
// "none") fail with ErrTokenInvalid.
func (i *Issuer) Verify(tokenString string) (userID string, issuedAt time.Time, err error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", time.Time{}, ErrTokenExpired
		}
		return "", time.Time{}, ErrTokenInvalid
	}

	if !token.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return "", time.Time{}, ErrTokenInvalid
	}

	return claims.Subject, claims.IssuedAt.Time, nil
}
