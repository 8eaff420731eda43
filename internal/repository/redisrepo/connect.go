package redisrepo

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type ConnectArgs struct {
	Address  string
	Password string
	DB       int
}

// Connect создает клиент redis и проверяет соединение.
func Connect(ctx context.Context, args ConnectArgs) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     args.Address,
		Password: args.Password,
		DB:       args.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", args.Address, err)
	}
	return client, nil
}
