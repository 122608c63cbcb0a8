package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// dummyHash keeps the timing of unknown-email logins close to real ones.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z1Ug6VH5LaVYEr2xJ0M0l8lO"

// AdminAuthService authenticates the single store admin configured through
// ADMIN_EMAIL and ADMIN_PASSWORD_HASH, and tracks revoked tokens.
type AdminAuthService struct {
	email        string
	passwordHash string
	jwt          *JWTService
	revoked      KVStore
}

func NewAdminAuthService(email, passwordHash string, jwt *JWTService, revoked KVStore) *AdminAuthService {
	return &AdminAuthService{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		jwt:          jwt,
		revoked:      revoked,
	}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks the minimum length of 8 characters
func ValidatePassword(password string) bool {
	return len(password) >= 8
}

// AdminID derives a stable id for an admin email.
func AdminID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("saltnsoul:admin:"+strings.ToLower(email))).String()
}

// ════════════════════════════════════════════════════════════
// Sessions
// ════════════════════════════════════════════════════════════

// Login checks the credentials and issues a token.
func (s *AdminAuthService) Login(email, password string) (models.AdminLoginResponse, error) {
	if s.email == "" || s.passwordHash == "" {
		return models.AdminLoginResponse{}, ErrInvalidCredentials
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.email {
		VerifyPassword(dummyHash, password)
		return models.AdminLoginResponse{}, ErrInvalidCredentials
	}
	if !VerifyPassword(s.passwordHash, password) {
		return models.AdminLoginResponse{}, ErrInvalidCredentials
	}

	id := AdminID(email)
	token, _, err := s.jwt.GenerateAdminJWT(id, email)
	if err != nil {
		return models.AdminLoginResponse{}, err
	}
	return models.AdminLoginResponse{
		Admin: models.AdminResponse{ID: id, Email: email, LastLoginAt: time.Now().UTC()},
		Token: token,
	}, nil
}

// HashToken hashes a token using SHA256 so raw tokens are never stored
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func revokedKey(token string) string {
	return "admin_revoked:" + HashToken(token)
}

// Authenticate verifies a token and rejects revoked ones.
func (s *AdminAuthService) Authenticate(ctx context.Context, token string) (*AdminJWTClaims, error) {
	claims, err := s.jwt.VerifyAdminJWT(token)
	if err != nil {
		return nil, err
	}
	if _, err := s.revoked.Get(ctx, revokedKey(token)); err == nil {
		return nil, ErrTokenRevoked
	} else if !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	return claims, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AdminAuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.VerifyAdminJWT(token)
	if err != nil {
		// Already unusable.
		return nil
	}
	expires := claims.ExpiresAt.Time
	if ttlStore, ok := s.revoked.(interface {
		SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	}); ok {
		return ttlStore.SetWithTTL(ctx, revokedKey(token), "1", time.Until(expires))
	}
	return s.revoked.Set(ctx, revokedKey(token), expires.UTC().Format(time.RFC3339))
}
