package services

import (
	"errors"
	"time"

	"github.com/yeremiapane/pidey-coffee/utils"
	"golang.org/x/crypto/bcrypt"
)

const adminRole = "admin"

// CredentialVerifier decides whether a submitted admin password is accepted.
type CredentialVerifier interface {
	Verify(password string) bool
}

// SharedSecretVerifier checks the password against one configured secret.
// Only the bcrypt hash is kept in memory.
type SharedSecretVerifier struct {
	hash []byte
}

func NewSharedSecretVerifier(secret string) (*SharedSecretVerifier, error) {
	if secret == "" {
		return nil, errors.New("admin password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &SharedSecretVerifier{hash: hash}, nil
}

func (v *SharedSecretVerifier) Verify(password string) bool {
	if password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
}

// Session is an issued admin session token.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminService menangani login / logout admin
type AdminService struct {
	verifier  CredentialVerifier
	secret    []byte
	ttl       time.Duration
	blacklist *utils.TokenBlacklist
}

func NewAdminService(verifier CredentialVerifier, secret []byte, ttl time.Duration) *AdminService {
	return &AdminService{
		verifier:  verifier,
		secret:    secret,
		ttl:       ttl,
		blacklist: utils.NewTokenBlacklist(),
	}
}

// Login issues a session when the password is accepted.
func (s *AdminService) Login(password string) (*Session, error) {
	if !s.verifier.Verify(password) {
		utils.InfoLogger.Warn("admin login rejected")
		return nil, ErrInvalidCredential
	}

	token, expiresAt, err := utils.GenerateToken(s.secret, adminRole, s.ttl)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Info("admin logged in")
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate validates a session token.
func (s *AdminService) Authenticate(token string) error {
	if token == "" || s.blacklist.Contains(token) {
		return ErrUnauthorized
	}
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil || claims.Role != adminRole {
		return ErrUnauthorized
	}
	return nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AdminService) Logout(token string) error {
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil {
		return ErrUnauthorized
	}
	s.blacklist.Add(token, claims.ExpiresAt.Time)
	removed := s.blacklist.Cleanup()
	if removed > 0 {
		utils.InfoLogger.Debugf("removed %d expired admin tokens", removed)
	}
	utils.InfoLogger.Info("admin logged out")
	return nil
}
