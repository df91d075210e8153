package usecase

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/orderdesk/orderdesk/internal/domain"
)

const defaultTokenTTL = 30 * time.Minute

// AuthUsecase checks the single configured admin credential and issues and
// verifies HMAC-signed bearer tokens. Verification is stateless: validity is
// a function of the signature and the exp claim only.
type AuthUsecase struct {
	adminEmail    string
	adminPassword string
	secret        []byte
	method        jwt.SigningMethod
	tokenTTL      time.Duration
}

func NewAuthUsecase(adminEmail, adminPassword string, secret []byte, algorithm string, tokenTTL time.Duration) (*AuthUsecase, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthUsecase{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		secret:        secret,
		method:        method,
		tokenTTL:      tokenTTL,
	}, nil
}

// Login compares the submitted credentials against the configured admin
// identity and returns a signed token on match.
func (u *AuthUsecase) Login(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(u.adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.adminPassword)) == 1
	if !emailOK || !passwordOK {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(u.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(u.method, claims)
	signed, err := t.SignedString(u.secret)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature and expiry of a presented token and
// returns its subject. Any failure collapses to ErrTokenInvalid; the caller
// only needs to know the token does not unlock anything.
func (u *AuthUsecase) VerifyToken(rawToken string) (string, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{u.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return subject, nil
}
