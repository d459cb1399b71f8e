package store_test

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../../migrations/01_store_entries.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func startRedis(ctx context.Context) (*tcredis.RedisContainer, string, error) {
	redisContainer, err := tcredis.Run(ctx, "redis:7.4-alpine")
	if err != nil {
		return nil, "", fmt.Errorf("redis.Run: %w", err)
	}

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("rc.ConnectionString: %w", err)
	}

	return redisContainer, connStr, nil
}
