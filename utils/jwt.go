package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 30 * time.Minute

var (
	ErrNoSecret     = errors.New("JWT_SECRET is not configured")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// TokenCodec issues and verifies stateless HS256 bearer tokens.
// Validity is a pure function of the token contents and the clock;
// nothing is stored server-side, so there is no revocation before
// natural expiry.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string) (*TokenCodec, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &TokenCodec{secret: []byte(secret), ttl: TokenTTL, now: time.Now}, nil
}

// Issue signs a token carrying the user id and issuance time.
func (tc *TokenCodec) Issue(userID uint) (string, error) {
	now := tc.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": now.Unix(),
		"exp": now.Add(tc.ttl).Unix(),
	})
	return token.SignedString(tc.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
func (tc *TokenCodec) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tc.secret, nil
	}, jwt.WithTimeFunc(tc.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
