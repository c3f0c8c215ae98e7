package config

import (
	"log"
	"os"
	"sync"
)

type AuthConfig struct {
	JWTSecret  string
	CookieName string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("AUTH_SECRET")
		if secret == "" {
			log.Println("Warning: AUTH_SECRET not set, tokens will not survive restarts")
			secret = "dev-only-secret"
		}
		authConfig = &AuthConfig{
			JWTSecret:  secret,
			CookieName: "auth-token",
		}
	})
	return authConfig
}
