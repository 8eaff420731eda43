package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/redis/go-redis/v9"
)

// OTPStore хранит хеши выданных одноразовых кодов с ограниченным временем жизни.
type OTPStore struct {
	client redis.Cmdable
}

func NewOTPStore(client redis.Cmdable) *OTPStore {
	return &OTPStore{client: client}
}

func otpKey(phone string) string {
	return "otp:" + phone
}

func otpFailKey(phone string) string {
	return "otp_fail:" + phone
}

// Save сохраняет хеш нового кода и сбрасывает счетчик неверных вводов.
func (s *OTPStore) Save(ctx context.Context, phone, hash string, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, otpKey(phone), hash, ttl)
		pipe.Del(ctx, otpFailKey(phone))
		return nil
	})
	if err != nil {
		return fmt.Errorf("[redisrepo/save otp %s] %w", phone, err)
	}
	return nil
}

// Get возвращает хеш кода или domain.ErrRecordNotFound, если код не выдавался или истек.
func (s *OTPStore) Get(ctx context.Context, phone string) (string, error) {
	hash, err := s.client.Get(ctx, otpKey(phone)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("[redisrepo/get otp %s] %w", phone, domain.ErrRecordNotFound)
		}
		return "", fmt.Errorf("[redisrepo/get otp %s] %w", phone, err)
	}
	return hash, nil
}

func (s *OTPStore) Delete(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, otpKey(phone), otpFailKey(phone)).Err(); err != nil {
		return fmt.Errorf("[redisrepo/delete otp %s] %w", phone, err)
	}
	return nil
}

// RecordFailure увеличивает счетчик неверных вводов кода. Счетчик живет не дольше самого кода.
func (s *OTPStore) RecordFailure(ctx context.Context, phone string, ttl time.Duration) (int64, error) {
	key := otpFailKey(phone)
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("[redisrepo/record otp failure %s] %w", phone, err)
	}
	return incr.Val(), nil
}
