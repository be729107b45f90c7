package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidAssertion = errors.New("invalid assertion")
	ErrExpiredAssertion = errors.New("assertion has expired")
)

// Claims represents the claims carried by a locally minted identity
// assertion. Mirrors the subset of provider claims this service consumes.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// AssertionService mints and validates development identity assertions.
// Production assertions come from the identity provider and are verified
// elsewhere; this service only backs the local development loop.
type AssertionService struct {
	secret []byte
	expiry time.Duration
}

// NewAssertionService creates a new assertion service
func NewAssertionService(secret string, expiry time.Duration) *AssertionService {
	return &AssertionService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Mint creates a signed assertion for a user id
func (s *AssertionService) Mint(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate validates an assertion and returns its claims
func (s *AssertionService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidAssertion
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredAssertion
		}
		return nil, ErrInvalidAssertion
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidAssertion
	}
	return claims, nil
}
