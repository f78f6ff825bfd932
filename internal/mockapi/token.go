package mockapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenTTL = 30 * time.Minute

// tokenService issues and validates the HS256 bearer tokens the mock
// hands out from /token. The subject claim carries the username.
type tokenService struct {
	secret string
}

func newTokenService(secret string) (*tokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &tokenService{secret: secret}, nil
}

func (s *tokenService) Issue(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))

	return signed, errors.Wrap(err, "sign token")
}

// Parse validates the token and returns its subject.
func (s *tokenService) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected token claims")
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", errors.New("subject missing from token")
	}

	return username, nil
}
