package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"folio/config"
	"folio/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// Options builds the client options from CACHE_REDIS_URL when set, otherwise
// from the primary host settings.
func Options(config *config.Config) (*goRedis.Options, error) {
	redisConfig := config.Cache.Redis

	if redisConfig.URL != constant.Empty {
		opts, err := goRedis.ParseURL(redisConfig.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}

		return opts, nil
	}

	primary := redisConfig.Primary

	return &goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	}, nil
}

func New(config *config.Config) *goRedis.Client {
	opts, err := Options(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure Redis")
	}

	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err = client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", opts.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", opts.DB).
		Str("addr", opts.Addr).
		Bool("tls", opts.TLSConfig != nil).
		Msg("Connected to Redis")

	return client
}
