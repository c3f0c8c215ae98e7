package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
)

// TokenTTL is the fixed lifetime of an auth token and its cookie.
const TokenTTL = 24 * time.Hour

// TokenPayload is the non-sensitive identity carried inside a token.
type TokenPayload struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ProfileImg string `json:"profileImg,omitempty"`
}

type claims struct {
	TokenPayload
	jwt.RegisteredClaims
}

// CreateToken signs the payload with the server secret (HS256) with a
// 24h expiry. The token is opaque to clients.
func CreateToken(p TokenPayload) (string, error) {
	return createTokenAt(p, time.Now())
}

func createTokenAt(p TokenPayload, issuedAt time.Time) (string, error) {
	c := claims{
		TokenPayload: p,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(config.LoadAuthConfig().JWTSecret))
}

// VerifyToken returns the decoded payload for a valid, unexpired token
// and nil otherwise. It never panics or propagates the parse error; the
// cause is logged for diagnostics only.
func VerifyToken(tokenString string) *TokenPayload {
	if tokenString == "" {
		return nil
	}
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.LoadAuthConfig().JWTSecret), nil
	})
	if err != nil || !token.Valid {
		log.Debug().Err(err).Msg("token verification failed")
		return nil
	}
	return &c.TokenPayload
}
