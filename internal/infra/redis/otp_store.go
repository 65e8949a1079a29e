package redis

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"quill/config"
	"quill/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// verifyScript compares the candidate against the stored code and deletes the
// key on a match, all in one round trip so a code can never be redeemed twice.
// Returns 1 on match, 0 on mismatch, -1 when no code is live.
var verifyScript = goredis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if not stored then
    return -1
end
if stored == ARGV[1] then
    redis.call("DEL", KEYS[1])
    return 1
end
return 0
`)

// otpStore implements repository.OTPStore on Redis. The TTL lives on the key
// itself, so expiry needs no sweeper and Peek is a TTL read.
type otpStore struct {
	client *goredis.Client
	cfg    *config.Config
}

// NewOTPStore is the constructor for otpStore.
func NewOTPStore(client *goredis.Client, cfg *config.Config) repository.OTPStore {
	return &otpStore{client: client, cfg: cfg}
}

// Issue generates a fresh 4-digit code and stores it atomically.
// SET NX means a live code is never overwritten; the caller gets the
// remaining lifetime instead.
func (s *otpStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp code")
	}

	key := otpKey(email)
	ok, err := s.client.SetNX(ctx, key, code, s.cfg.OTP.TTL).Result()
	if err != nil {
		return "", errors.Wrap(err, "failed to store otp code")
	}
	if !ok {
		remaining, err := s.client.TTL(ctx, key).Result()
		if err != nil {
			return "", errors.Wrap(err, "failed to read otp ttl")
		}
		// The blocking code may expire between the failed SET and the TTL
		// read; go-redis reports the missing key as a negative duration.
		// The slot is free again, so retry the write once.
		if remaining <= 0 {
			ok, err = s.client.SetNX(ctx, key, code, s.cfg.OTP.TTL).Result()
			if err != nil {
				return "", errors.Wrap(err, "failed to store otp code")
			}
			if ok {
				return code, nil
			}
			remaining = s.cfg.OTP.TTL
		}

		return "", &repository.OTPActiveError{Remaining: remaining}
	}

	return code, nil
}

// Verify checks the candidate and consumes the code on success.
func (s *otpStore) Verify(ctx context.Context, email, candidate string) error {
	key := otpKey(email)
	result, err := verifyScript.Run(ctx, s.client, []string{key}, candidate).Int()
	if err != nil {
		return errors.Wrap(err, "failed to verify otp code")
	}

	switch result {
	case 1:
		return nil
	case -1:
		return repository.ErrOTPNotFound
	default:
		remaining, err := s.client.TTL(ctx, key).Result()
		if err != nil {
			return errors.Wrap(err, "failed to read otp ttl")
		}
		if remaining < 0 {
			remaining = 0
		}

		return &repository.OTPMismatchError{Remaining: remaining}
	}
}

// Peek reports whether a code is live without consuming it.
func (s *otpStore) Peek(ctx context.Context, email string) (*repository.OTPStatus, error) {
	remaining, err := s.client.TTL(ctx, otpKey(email)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read otp ttl")
	}

	// go-redis maps "no key" to a negative duration.
	if remaining <= 0 {
		return &repository.OTPStatus{Exists: false}, nil
	}

	return &repository.OTPStatus{Exists: true, Remaining: remaining}, nil
}

func otpKey(email string) string {
	return otpKeyPrefix + email
}

// generateCode draws a uniformly random 4-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%04d", n.Int64()), nil
}
