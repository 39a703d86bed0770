package di

import (
	"context"
	"fmt"

	"folio/config"
	"folio/helper"
	"folio/infras/kafka"
	"folio/infras/otel"
	"folio/infras/postgres"
	editorService "folio/internal/domains/editor/service"
	"folio/internal/domains/editor/spool"
	userDto "folio/internal/domains/user/model/dto"
	userService "folio/internal/domains/user/service"
	"folio/shared/constant"
	"folio/transport/http"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func newSpool(cfg *config.Config) spool.Spool {
	s, err := spool.New(cfg.Editor.SpoolDir, cfg.Upload.MaxFileSizeMB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create draft spool")
	}

	return s
}

// newLifecycle migrates and seeds the admin before the server listens, runs
// the draft sweeper, and closes every connection after the listener stops.
func newLifecycle(
	cfg *config.Config,
	db *postgres.Connection,
	redisClient *goRedis.Client,
	otel otel.Otel,
	kafkaClient kafka.Client,
	editor editorService.Editor,
	user userService.User,
) http.Lifecycle {
	lifecycle := http.Lifecycle{
		Workers: []func(ctx context.Context){editor.Run},
		Health: []http.Hook{
			db.Ping,
			func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err() //nolint:wrapcheck
			},
		},
		Shutdown: []http.Hook{
			func(context.Context) error {
				editor.Close()

				return nil
			},
			func(context.Context) error {
				return kafkaClient.Close() //nolint:wrapcheck
			},
			func(context.Context) error {
				db.Close()

				return redisClient.Close() //nolint:wrapcheck
			},
			otel.Shutdown,
		},
	}

	if cfg.DB.Postgres.AutoMigrate {
		lifecycle.Startup = append(lifecycle.Startup, func(context.Context) error {
			return helper.Up(cfg)
		})
	}

	if cfg.Admin.Email != constant.Empty {
		lifecycle.Startup = append(lifecycle.Startup, func(ctx context.Context) error {
			if _, err := user.EnsureAdmin(ctx, userDto.CreateAdminRequest{
				Email:    cfg.Admin.Email,
				Password: cfg.Admin.Password,
				FullName: cfg.Admin.FullName,
			}); err != nil {
				return fmt.Errorf("failed to bootstrap admin: %w", err)
			}

			return nil
		})
	}

	return lifecycle
}
