package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/weekend-explore/explore/internal/types"
)

// TokenTTL is how long an issued token stays valid. Tokens are
// self-contained and not revocable before expiry.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers every verification failure. Callers must not
// learn whether a token was malformed, forged, or merely expired.
var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed identity tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token embedding the user's public identity.
func (m *TokenManager) Issue(identity types.Identity) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    identity.ID,
		Email:     identity.Email,
		Name:      identity.Name,
		AvatarURL: identity.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
func (m *TokenManager) Verify(tokenString string) (types.Identity, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})

	if err != nil || !token.Valid {
		return types.Identity{}, ErrInvalidToken
	}

	return types.Identity{
		ID:        claims.UserID,
		Name:      claims.Name,
		Email:     claims.Email,
		AvatarURL: claims.AvatarURL,
	}, nil
}
