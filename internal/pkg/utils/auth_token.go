package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the claim set of the admin cookie token.
type AuthTokenWrapper struct {
	Secret string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	if wrapper.ExpiresAt == 0 {
		ttl := viper.GetDuration(constants.ViperAdminTokenTTLKey)
		if ttl <= 0 {
			ttl = 12 * time.Hour
		}
		wrapper.ExpiresAt = time.Now().Add(ttl).Unix()
	}
	if wrapper.IssuedAt == 0 {
		wrapper.IssuedAt = time.Now().Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString(signingKey())
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenString, wrapper, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}

func signingKey() []byte {
	return []byte(viper.GetString(constants.ViperJWTKey))
}
