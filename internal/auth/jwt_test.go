package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	assert.Error(t, Init("", "HS256", time.Minute))
	assert.Error(t, Init("secret", "RS256", time.Minute))
	assert.Error(t, Init("secret", "none", time.Minute))

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		assert.NoError(t, Init("secret", alg, time.Minute))
	}
}

func TestTokenRoundTrip(t *testing.T) {
	require.NoError(t, Init("test-secret", "HS256", time.Minute))

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	require.NoError(t, Init("test-secret", "HS256", -time.Minute))

	token, err := GenerateToken(42)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	require.NoError(t, Init("first-secret", "HS256", time.Minute))

	token, err := GenerateToken(42)
	require.NoError(t, err)

	// rotating the secret invalidates every outstanding token
	require.NoError(t, Init("second-secret", "HS256", time.Minute))

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsForeignAlgorithm(t *testing.T) {
	require.NoError(t, Init("test-secret", "HS256", time.Minute))

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Minute).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	require.NoError(t, Init("test-secret", "HS256", time.Minute))

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
