// Package redisrepo хранилища поверх Redis: счетчики попыток OTP и сами одноразовые коды.
package redisrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultOTPDailyLimit int64 = 10
	// счетчик живет сутки плюс час запаса на смену даты.
	otpLimitTTL = 25 * time.Hour
)

// OTPLimiter ограничивает количество запросов OTP на идентификатор (телефон, IP) в сутки.
// Счетчик - ключ otp_limit:<identity>:<дата>, увеличиваемый через INCR с EXPIRE.
type OTPLimiter struct {
	client redis.Cmdable
	limit  int64
	ttl    time.Duration
	now    func() time.Time
}

func NewOTPLimiter(client redis.Cmdable, limit int64) *OTPLimiter {
	if limit <= 0 {
		limit = DefaultOTPDailyLimit
	}
	return &OTPLimiter{
		client: client,
		limit:  limit,
		ttl:    otpLimitTTL,
		now:    time.Now,
	}
}

// SetClock подменяет источник времени.
func (o *OTPLimiter) SetClock(now func() time.Time) *OTPLimiter {
	o.now = now
	return o
}

func (o *OTPLimiter) key(identity string) string {
	return fmt.Sprintf("otp_limit:%s:%s", identity, o.now().Format(time.DateOnly))
}

// Allow учитывает попытку для identity и сообщает, укладывается ли она в лимит.
// Решение принимается по значению счетчика после INCR, поэтому параллельные запросы не проходят сверх лимита.
func (o *OTPLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	count, err := o.RecordAttempt(ctx, identity)
	if err != nil {
		return false, err
	}
	return count <= o.limit, nil
}

// RecordAttempt увеличивает счетчик попыток и продлевает его время жизни. Возвращает новое значение счетчика.
func (o *OTPLimiter) RecordAttempt(ctx context.Context, identity string) (int64, error) {
	key := o.key(identity)
	var incr *redis.IntCmd
	_, err := o.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, o.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("[redisrepo/record otp attempt %s] %w", identity, err)
	}
	return incr.Val(), nil
}
