package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed token, or expiry. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid or expired token")

var (
	jwtSecret     []byte
	signingMethod jwt.SigningMethod
	tokenExpiry   time.Duration
)

// Init configures the token service. Only the HMAC family is supported;
// tokens are stateless, so rotating the secret invalidates all of them.
func Init(secret, algorithm string, expiry time.Duration) error {
	if secret == "" {
		return fmt.Errorf("signing secret must not be empty")
	}

	switch algorithm {
	case "HS256":
		signingMethod = jwt.SigningMethodHS256
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		return fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	jwtSecret = []byte(secret)
	tokenExpiry = expiry
	return nil
}

// GenerateToken issues a signed bearer token for the user. Expiry is embedded
// in the claims and enforced at verification time.
func GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies the token signature and expiry and returns the embedded
// user ID.
func ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(userIDFloat), nil
}
