// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/adapter"
	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/crypto"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/store"
	"github.com/Anjana-1234/orato-robot/internal/utils"
	"github.com/Anjana-1234/orato-robot/models"
)

// AccountDeps are the collaborators of the account service.
type AccountDeps struct {
	Users   store.UserRepository
	Limiter store.OTPRequestLimiter
	Hasher  crypto.PasswordHasher
	OTPs    crypto.OTPGenerator
	Sender  adapter.NotificationSender
	Tokens  TokenService
	IDs     *utils.UUIDGenerator
	Now     func() time.Time
}

type accountService struct {
	users   store.UserRepository
	limiter store.OTPRequestLimiter
	hasher  crypto.PasswordHasher
	otps    crypto.OTPGenerator
	sender  adapter.NotificationSender
	tokens  TokenService
	ids     *utils.UUIDGenerator

	now       func() time.Time
	otpTTL    time.Duration
	decoyHash string

	logger *logger.Logger
}

// NewAccountService wires an [AccountService]. A nil limiter allows every
// OTP request; a nil clock means time.Now.
func NewAccountService(deps AccountDeps, cfg config.App, logger *logger.Logger) (AccountService, error) {
	if deps.Users == nil || deps.Hasher == nil || deps.OTPs == nil || deps.Sender == nil || deps.Tokens == nil {
		return nil, ErrMissingDependency
	}

	s := &accountService{
		users:   deps.Users,
		limiter: deps.Limiter,
		hasher:  deps.Hasher,
		otps:    deps.OTPs,
		sender:  deps.Sender,
		tokens:  deps.Tokens,
		ids:     deps.IDs,
		now:     deps.Now,
		otpTTL:  cfg.OTPTTL,
		logger:  logger,

		decoyHash: crypto.DecoyHash(cfg.PasswordHashCost),
	}
	if s.limiter == nil {
		s.limiter = store.NewNoopOTPRequestLimiter()
	}
	if s.ids == nil {
		s.ids = utils.NewUUIDGenerator()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.otpTTL <= 0 {
		s.otpTTL = 10 * time.Minute
	}

	return s, nil
}

// loggerFor prefers the request logger so entries keep their trace id.
func (s *accountService) loggerFor(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

func (s *accountService) Signup(ctx context.Context, cmd models.SignupCommand) (models.AuthResult, error) {
	log := s.loggerFor(ctx)

	passwordHash, err := s.hasher.Hash(ctx, cmd.Password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Signup").Msg("error hashing password")
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, models.User{
		ID:           s.ids.Generate(),
		FullName:     cmd.FullName,
		Email:        cmd.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("func", "*accountService.Signup").Msg("user creation ended with error")
		}
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	log.Info().Str("user_id", user.ID).Msg("user signed up")

	return s.authResult(ctx, user)
}

func (s *accountService) Signin(ctx context.Context, cmd models.SigninCommand) (models.AuthResult, error) {
	log := s.loggerFor(ctx)

	user, err := s.users.FindByEmail(ctx, cmd.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		// unknown emails pay for one password check too
		if _, verifyErr := s.hasher.Verify(ctx, cmd.Password, s.decoyHash); verifyErr != nil {
			log.Err(verifyErr).Str("func", "*accountService.Signin").Msg("error verifying decoy hash")
		}
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.Signin").Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := s.hasher.Verify(ctx, cmd.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Signin").Str("user_id", user.ID).Msg("error verifying password")
		return models.AuthResult{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return s.authResult(ctx, user)
}

func (s *accountService) authResult(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{Token: token.SignedString, User: user.Public()}, nil
}

func (s *accountService) ForgotPasswordOTP(ctx context.Context, cmd models.ForgotPasswordCommand) error {
	log := s.loggerFor(ctx)

	allowed, err := s.limiter.Allow(ctx, cmd.Email)
	if err != nil {
		// the limiter is advisory, an outage must not block password resets
		log.Warn().Err(err).Str("func", "*accountService.ForgotPasswordOTP").Msg("otp request limiter unavailable")
		allowed = true
	}
	if !allowed {
		return ErrTooManyOTPRequests
	}

	user, err := s.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("func", "*accountService.ForgotPasswordOTP").Msg("user search by email failed")
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := s.otps.Generate()
	if err != nil {
		log.Err(err).Str("func", "*accountService.ForgotPasswordOTP").Msg("error generating otp")
		return fmt.Errorf("error generating otp: %w", err)
	}
	digest := s.otps.Digest(code)
	expiresAt := s.now().Add(s.otpTTL)

	if err = s.users.SetResetOTP(ctx, user.Email, digest, expiresAt); err != nil {
		log.Err(err).Str("func", "*accountService.ForgotPasswordOTP").Str("user_id", user.ID).Msg("error storing otp")
		return fmt.Errorf("error storing otp: %w", err)
	}

	err = s.sender.SendOTP(ctx, models.OTPNotification{
		Email:     user.Email,
		FullName:  user.FullName,
		Code:      code,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		log.Err(err).Str("func", "*accountService.ForgotPasswordOTP").Str("user_id", user.ID).Msg("otp delivery failed, rolling back")

		// a newer request may already have replaced the code; only ours is cleared
		if _, clearErr := s.users.ClearResetOTP(context.WithoutCancel(ctx), user.Email, digest); clearErr != nil {
			log.Err(clearErr).Str("func", "*accountService.ForgotPasswordOTP").Str("user_id", user.ID).Msg("error rolling back otp")
		}
		return fmt.Errorf("%w: %w", ErrOTPDeliveryFailed, err)
	}

	log.Info().Str("user_id", user.ID).Time("expires_at", expiresAt).Msg("reset otp issued")
	return nil
}

func (s *accountService) ResetPasswordOTP(ctx context.Context, cmd models.ResetPasswordCommand) error {
	log := s.loggerFor(ctx)

	user, err := s.users.FindByEmail(ctx, cmd.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrInvalidOTP
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.ResetPasswordOTP").Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	now := s.now()
	digest := s.otps.Digest(cmd.OTP)
	if !user.HasPendingOTP() || !s.otps.Equal(digest, *user.ResetOTPHash) || !user.ResetOTPExpiresAt.After(now) {
		log.Info().Str("user_id", user.ID).Msg("otp rejected")
		return ErrInvalidOTP
	}

	passwordHash, err := s.hasher.Hash(ctx, cmd.NewPassword)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ResetPasswordOTP").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	consumed, err := s.users.ConsumeResetOTP(ctx, user.Email, digest, passwordHash, now)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ResetPasswordOTP").Str("user_id", user.ID).Msg("error consuming otp")
		return fmt.Errorf("error consuming otp: %w", err)
	}
	if !consumed {
		// a concurrent reset or a newer code won the race
		log.Info().Str("user_id", user.ID).Msg("otp no longer pending")
		return ErrInvalidOTP
	}

	log.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

func (s *accountService) Profile(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.loggerFor(ctx).Err(err).Str("func", "*accountService.Profile").Msg("user search by id failed")
		}
		return models.PublicUser{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

func (s *accountService) UpdateProfile(ctx context.Context, cmd models.UpdateProfileCommand) (models.PublicUser, error) {
	user, err := s.users.UpdateFullName(ctx, cmd.UserID, cmd.FullName)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.loggerFor(ctx).Err(err).Str("func", "*accountService.UpdateProfile").Msg("profile update failed")
		}
		return models.PublicUser{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user.Public(), nil
}

func (s *accountService) ClearExpiredOTPs(ctx context.Context) (int64, error) {
	cleared, err := s.users.ClearExpiredOTPs(ctx, s.now())
	if err != nil {
		s.loggerFor(ctx).Err(err).Str("func", "*accountService.ClearExpiredOTPs").Msg("error clearing expired otps")
		return 0, fmt.Errorf("error clearing expired otps: %w", err)
	}

	return cleared, nil
}
