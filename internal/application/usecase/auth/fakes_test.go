// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// fakeUserRepository serves users from an in-memory map keyed by email.
type fakeUserRepository struct {
	users     map[string]*entity.User
	passwords map[uuid.UUID]string
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	repo := &fakeUserRepository{
		users:     make(map[string]*entity.User),
		passwords: make(map[uuid.UUID]string),
	}
	for _, user := range users {
		repo.users[user.Email] = user
	}
	return repo
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepository) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	r.passwords[userID] = passwordHash
	return nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

// fakeTokenService issues deterministic tokens and tracks revocations.
type fakeTokenService struct {
	refreshValid     map[string]bool
	revokedUsers     map[uuid.UUID]bool
	generateErr      error
	issuedForUserIDs []uuid.UUID
	issued           int
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		refreshValid: make(map[string]bool),
		revokedUsers: make(map[uuid.UUID]bool),
	}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, user *entity.User) (*adapter.TokenPair, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	s.issuedForUserIDs = append(s.issuedForUserIDs, user.ID)
	s.issued++
	refresh := fmt.Sprintf("refresh-%s#%d", user.ID, s.issued)
	s.refreshValid[refresh] = true
	return &adapter.TokenPair{
		AccessToken:  "access-" + user.ID.String(),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.claimsFrom(token, "access-")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.claimsFrom(token, "refresh-")
}

func (s *fakeTokenService) claimsFrom(token, prefix string) (*adapter.TokenClaims, error) {
	raw, ok := strings.CutPrefix(token, prefix)
	if !ok {
		return nil, errors.New("invalid token")
	}
	raw, _, _ = strings.Cut(raw, "#")
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("invalid token")
	}
	return &adapter.TokenClaims{UserID: userID}, nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return s.refreshValid[token], nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.refreshValid[token] = false
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(_ context.Context, userID uuid.UUID) error {
	s.revokedUsers[userID] = true
	return nil
}

// fakeOTPService stores one code per email.
type fakeOTPService struct {
	codes map[string]string
}

func newFakeOTPService() *fakeOTPService {
	return &fakeOTPService{codes: make(map[string]string)}
}

func (s *fakeOTPService) Generate(_ context.Context, email string) (string, error) {
	s.codes[email] = "123456"
	return "123456", nil
}

func (s *fakeOTPService) VerifyAndConsume(_ context.Context, email, code string) (bool, error) {
	stored, ok := s.codes[email]
	if !ok || stored != code {
		return false, nil
	}
	delete(s.codes, email)
	return true, nil
}

// fakeEmailService records queued reset codes.
type fakeEmailService struct {
	queuedTo    []string
	queuedCodes []string
	queueErr    error
}

func (s *fakeEmailService) QueuePasswordResetCode(_ context.Context, input adapter.QueuePasswordResetInput) error {
	if s.queueErr != nil {
		return s.queueErr
	}
	s.queuedTo = append(s.queuedTo, input.UserEmail)
	s.queuedCodes = append(s.queuedCodes, input.Code)
	return nil
}

var (
	_ adapter.UserRepository  = (*fakeUserRepository)(nil)
	_ adapter.PasswordService = (*fakePasswordService)(nil)
	_ adapter.TokenService    = (*fakeTokenService)(nil)
	_ adapter.OTPService      = (*fakeOTPService)(nil)
	_ adapter.EmailService    = (*fakeEmailService)(nil)
)
