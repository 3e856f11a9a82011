package repository

import (
	"context"
	"errors"
	"time"

	"uni_archive_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// OtpTTL is the store-enforced lifetime of a passcode.
const OtpTTL = 10 * time.Minute

const otpKeyPrefix = "otp:"

// OtpRepository keeps one active passcode digest per email. SET overwrites
// the previous record, so a resend replaces rather than accumulates.
type OtpRepository struct {
	Redis *redis.Client
}

func NewOtpRepository(rdb *redis.Client) *OtpRepository {
	return &OtpRepository{Redis: rdb}
}

func (r *OtpRepository) Save(ctx context.Context, email, digest string) error {
	return r.Redis.Set(ctx, otpKeyPrefix+email, digest, OtpTTL).Err()
}

func (r *OtpRepository) Get(ctx context.Context, email string) (string, error) {
	digest, err := r.Redis.Get(ctx, otpKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", util.ErrOtpMismatch
	}
	return digest, err
}

func (r *OtpRepository) Delete(ctx context.Context, email string) error {
	return r.Redis.Del(ctx, otpKeyPrefix+email).Err()
}
