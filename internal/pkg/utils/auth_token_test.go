package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperJWTKey, "test-key")
	t.Cleanup(viper.Reset)

	token, err := GenerateAuthToken(&AuthTokenWrapper{Secret: "s3cret"})
	require.NoError(t, err)

	parsed, err := ParseAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", parsed.Secret)
	assert.Greater(t, parsed.ExpiresAt, time.Now().Unix())
}

func TestParseAuthTokenRejects(t *testing.T) {
	viper.Set(constants.ViperJWTKey, "test-key")
	t.Cleanup(viper.Reset)

	expired, err := GenerateAuthToken(&AuthTokenWrapper{
		Secret:         "s3cret",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"expired", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAuthToken(tt.token)
			assert.ErrorIs(t, err, constants.ErrUnauthorized)
		})
	}

	t.Run("other key", func(t *testing.T) {
		token, err := GenerateAuthToken(&AuthTokenWrapper{Secret: "s3cret"})
		require.NoError(t, err)

		viper.Set(constants.ViperJWTKey, "rotated")
		_, err = ParseAuthToken(token)
		assert.ErrorIs(t, err, constants.ErrUnauthorized)
	})
}
