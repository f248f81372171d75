package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bitebranch/ordering/internal/shared/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCode        = errors.New("invalid or expired code")
)

const tokenTTL = 24 * time.Hour

// resetRequestedMsg is deliberately identical for known and unknown
// addresses so the endpoint cannot be used to enumerate accounts.
const resetRequestedMsg = "If the account exists, a reset code was sent"

type (
	servicer interface {
		Login(ctx context.Context, in LoginIn) (*LoginOut, error)
		RequestReset(ctx context.Context, in ResetPasswordIn) (*MessageOut, error)
		VerifyOTP(ctx context.Context, in VerifyOTPIn) (*MessageOut, error)
	}

	service struct {
		repo   repoer
		config *config.Config
		logger zerolog.Logger
		now    func() time.Time
	}
)

func NewService(repo repoer, cfg *config.Config, logger zerolog.Logger) servicer {
	return &service{
		repo:   repo,
		config: cfg,
		logger: logger.With().Str("component", "auth").Logger(),
		now:    time.Now,
	}
}

// Login checks the credentials and issues a signed token together with the
// user profile. Unknown emails and wrong passwords are indistinguishable to
// the caller.
func (s *service) Login(ctx context.Context, in LoginIn) (*LoginOut, error) {
	user, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := SignToken(s.config.JWTSecret, user, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginOut{
		Token: token,
		User: UserOut{
			ID:       user.ID.String(),
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			BranchID: user.BranchID,
		},
	}, nil
}

// RequestReset stores a hashed 6-digit code with a TTL for known accounts.
// The code itself only leaves the process through the delivery channel
// (logged at debug level until a mailer is wired up).
func (s *service) RequestReset(ctx context.Context, in ResetPasswordIn) (*MessageOut, error) {
	user, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		s.logger.Debug().Str("email", in.Email).Msg("Reset requested for unknown email")
		return &MessageOut{Message: resetRequestedMsg}, nil
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(time.Duration(s.config.OTPTTLMinutes) * time.Minute)
	if err := s.repo.SaveResetCode(ctx, user.ID, string(codeHash), expiresAt); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("user_id", user.ID.String()).
		Str("code", code).
		Time("expires_at", expiresAt).
		Msg("Reset code issued")

	return &MessageOut{Message: resetRequestedMsg}, nil
}

// VerifyOTP checks the submitted code against the stored hash. Codes are
// single use; a successful check consumes the code.
func (s *service) VerifyOTP(ctx context.Context, in VerifyOTPIn) (*MessageOut, error) {
	user, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, ErrInvalidCode
	}

	code, err := s.repo.GetActiveResetCode(ctx, user.ID)
	if err != nil {
		return nil, ErrInvalidCode
	}

	if s.now().After(code.ExpiresAt) {
		return nil, ErrInvalidCode
	}

	if err := bcrypt.CompareHashAndPassword([]byte(code.CodeHash), []byte(in.OTP)); err != nil {
		return nil, ErrInvalidCode
	}

	if err := s.repo.ConsumeResetCode(ctx, code.ID); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("user_id", user.ID.String()).Msg("Reset code verified")

	return &MessageOut{Message: "Code verified"}, nil
}

// generateCode draws a uniform 6-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
