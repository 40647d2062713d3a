package service

import (
	"errors"
	"fmt"
	"time"

	"push-delivery-engine/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ServiceTokenAudience is the audience every internal notification token carries.
const ServiceTokenAudience = "push-internal"

var (
	errNoSigningSecret = errors.New("service token secret is not configured")
	errMissingService  = errors.New("service token has no subject")
)

// JWTTokenService issues and checks the HS256 bearer tokens internal
// callers present on /internal routes. The subject names the caller.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

// Generate mints a token for the named caller.
func (s *JWTTokenService) Generate(caller string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errNoSigningSecret
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.expiry)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   caller,
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{ServiceTokenAudience},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing service token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate checks signature, issuer, audience and expiry and returns the caller.
// Every token is rejected while no secret is configured.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	if len(s.secret) == 0 {
		return nil, errNoSigningSecret
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(ServiceTokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing service token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errMissingService
	}

	return &ports.TokenClaims{Service: claims.Subject, TokenID: claims.ID}, nil
}
