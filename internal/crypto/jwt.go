package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers every other verification failure: bad
	// signature, unparsable payload, wrong issuer or audience.
	ErrTokenMalformed = errors.New("invalid token")
)

// Claims is the session token payload: the user identifier plus the
// registered expiry. Tokens are bearer-held; there is no server-side
// revocation, so a token stays valid until its expiry.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken signs a session token for the given user, valid for expiry
// from now.
func GenerateToken(userID, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "astroguide",
			Audience:  jwt.ClaimStrings{"astroguide-api"},
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken verifies a session token and returns its claims. Expired
// tokens fail with ErrTokenExpired; everything else fails with
// ErrTokenMalformed. Both map to the same unauthorized response; the split
// exists for diagnostics.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("astroguide"), jwt.WithAudience("astroguide-api"))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
