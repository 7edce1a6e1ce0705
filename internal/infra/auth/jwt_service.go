package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"usermgmt/config"
	"usermgmt/internal/domain/service"
)

var (
	// ErrMissingSecret is returned at startup when secretKey.access is empty.
	ErrMissingSecret = errors.New("jwt secret must be provided")

	// ErrInvalidToken covers every verification failure: bad signature, expiry, malformed subject.
	ErrInvalidToken = errors.New("invalid session token")
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    service.SessionTokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token whose subject is the user ID.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// Verify validates signature and expiry and returns the subject.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "malformed subject")
	}

	return userID, nil
}
