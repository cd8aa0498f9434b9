package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

// TokenInfo describes the wallet session a token is issued for.
type TokenInfo struct {
	Account    string
	Epoch      uint64
	Expiration time.Duration
}

// SessionClaims binds a token to one connection of one account. Subject is
// the account address.
type SessionClaims struct {
	Epoch uint64 `json:"epoch"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (s *JWTService) Issue(info TokenInfo) (string, error) {
	now := TimeNow()
	claims := SessionClaims{
		Epoch: info.Epoch,
		StandardClaims: jwt.StandardClaims{
			Subject:   info.Account,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(info.Expiration).Unix(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Parse(token string) (*SessionClaims, error) {
	claims := new(SessionClaims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS512 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenNotValid
	}

	if claims.ExpiresAt < TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(claims.ExpiresAt, 0), ErrTokenExpired)
	}

	return claims, nil
}
