package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piresc/dispatch/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "dispatch",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("driver-1", "driver", cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "driver-1", (*claims)["user_id"])
	assert.Equal(t, "driver", (*claims)["role"])
	assert.Equal(t, "dispatch", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("driver-1", "driver", cfg)
	assert.NoError(t, err)

	claims, err := ValidateToken(token, "different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Expiration = -1

	token, _, err := GenerateToken("driver-1", "driver", cfg)
	assert.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
