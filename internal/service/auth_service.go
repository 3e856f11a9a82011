package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"uni_archive_backend/internal/config"
	"uni_archive_backend/internal/util"
	"uni_archive_backend/pkg/logger"

	"go.uber.org/zap"
)

// OtpStore holds one active passcode digest per email with a store-enforced
// TTL. Implemented by repository.OtpRepository.
type OtpStore interface {
	Save(ctx context.Context, email, digest string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// AuthService implements the restricted-domain OTP identity flow. Codes are
// stored as SHA-256 digests, never plaintext.
type AuthService struct {
	Otps   OtpStore
	Mailer MailSender
	Cfg    *config.Config
}

func NewAuthService(otps OtpStore, mailer MailSender, cfg *config.Config) *AuthService {
	return &AuthService{
		Otps:   otps,
		Mailer: mailer,
		Cfg:    cfg,
	}
}

// RequestOtp generates a 6-digit code for an allowed-domain email, upserts
// it (resend replaces the active code) and mails it. When SMTP is not
// configured the code is logged instead so dev setups stay usable.
func (s *AuthService) RequestOtp(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.HasSuffix(email, s.Cfg.Auth.AllowedDomain) {
		return util.ErrInvalidDomain
	}

	code, err := util.GenerateOTP()
	if err != nil {
		return err
	}

	if err := s.Otps.Save(ctx, email, hashOTP(code)); err != nil {
		return err
	}

	if !s.Mailer.Configured() {
		logger.Log.Info("SMTP not configured, logging OTP instead",
			zap.String("email", email),
			zap.String("otp", code),
		)
		return nil
	}

	return s.Mailer.Send(
		email,
		"UniArchive Verification Code",
		"Your verification code is: "+code,
	)
}

// VerifyOtp consumes a matching, unexpired code and returns a signed token
// carrying the verified email.
func (s *AuthService) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	digest, err := s.Otps.Get(ctx, email)
	if err != nil {
		return "", err
	}

	if subtle.ConstantTimeCompare([]byte(digest), []byte(hashOTP(code))) != 1 {
		return "", util.ErrOtpMismatch
	}

	// Single use: the record is gone even if token signing fails.
	if err := s.Otps.Delete(ctx, email); err != nil {
		return "", err
	}

	expire := time.Duration(s.Cfg.JWT.ExpireHours) * time.Hour
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	return util.GenerateJWT(email, s.Cfg.JWT.Secret, expire)
}

func hashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
