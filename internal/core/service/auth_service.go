package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// AuthService implements registration, login, and the session lifecycle.
type AuthService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionStore
	scheme    CredentialScheme
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	sessions ports.SessionStore,
	scheme CredentialScheme,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if scheme == nil {
		scheme = PlaintextScheme{}
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts:  accounts,
		sessions:  sessions,
		scheme:    scheme,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	sealed, err := s.scheme.Seal(password)
	if err != nil {
		return err
	}

	if err := s.accounts.Create(ctx, username, domain.Account{Password: sealed, Role: domain.RoleUser}); err != nil {
		return err
	}

	s.log.Info().Str("username", username).Msg("account registered")
	return nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	sess, err := s.authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Start(ctx, sess.Username, sess.Role); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(sess)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", sess.Username).Str("role", sess.Role).Msg("login succeeded")
	return token, sess, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.End(ctx)
}

func (s *AuthService) Session(ctx context.Context) (*domain.Session, error) {
	return s.sessions.Current(ctx)
}

// authenticate resolves credentials to a session. The fixed administrator
// pair is checked first and wins regardless of registered accounts; unknown
// usernames report the same error as wrong passwords.
func (s *AuthService) authenticate(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == domain.AdminUsername && password == domain.AdminPassword {
		return &domain.Session{Username: username, Role: domain.RoleAdmin}, nil
	}

	account, err := s.accounts.Find(ctx, username)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.scheme.Verify(account.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}

	role := account.Role
	if role == "" {
		role = domain.RoleUser
	}
	return &domain.Session{Username: username, Role: role}, nil
}

func (s *AuthService) generateToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"username": sess.Username,
		"role":     sess.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
