package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps one-time codes in Redis keyed by phone number, expiring on TTL.
type Store struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{RDB: rdb, TTL: ttl}
}

func key(phone string) string {
	return "otp:" + phone
}

// Issue generates a 6-digit code for the phone, replacing any previous one.
func (s *Store) Issue(ctx context.Context, phone string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := s.RDB.Set(ctx, key(phone), code, s.TTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Verify consumes the code: a correct code can only be used once.
func (s *Store) Verify(ctx context.Context, phone, code string) (bool, error) {
	stored, err := s.RDB.GetDel(ctx, key(phone)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		// Put it back so a typo does not burn the code.
		_ = s.RDB.Set(ctx, key(phone), stored, s.TTL).Err()
		return false, nil
	}
	return true, nil
}
