//go:build wireinject
// +build wireinject

package di

import (
	"folio/config"
	"folio/infras/cloudinary"
	"folio/infras/jwt"
	"folio/infras/kafka"
	"folio/infras/otel"
	"folio/infras/postgres"
	"folio/infras/redis"
	"folio/infras/s3"
	"folio/permissions"
	"folio/shared/cache"
	"folio/transport/http"
	"folio/transport/http/middleware"
	"folio/transport/http/router"

	articleRepository "folio/internal/domains/article/repository"
	articleService "folio/internal/domains/article/service"
	authService "folio/internal/domains/auth/service"
	"folio/internal/domains/auth/session"
	contactRepository "folio/internal/domains/contact/repository"
	contactService "folio/internal/domains/contact/service"
	editorService "folio/internal/domains/editor/service"
	portfolioRepository "folio/internal/domains/portfolio/repository"
	portfolioService "folio/internal/domains/portfolio/service"
	"folio/internal/domains/upload/provider"
	uploadService "folio/internal/domains/upload/service"
	userRepository "folio/internal/domains/user/repository"
	userService "folio/internal/domains/user/service"

	articleHandler "folio/internal/handlers/article"
	authHandler "folio/internal/handlers/auth"
	contactHandler "folio/internal/handlers/contact"
	editorHandler "folio/internal/handlers/editor"
	portfolioHandler "folio/internal/handlers/portfolio"
	uploadHandler "folio/internal/handlers/upload"
	webHandler "folio/internal/handlers/web"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	cloudinary.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	session.NewStore,
	authService.New,
)

var recordDomain = wire.NewSet(
	portfolioRepository.New,
	portfolioService.New,
	articleRepository.New,
	articleService.New,
)

var uploadDomain = wire.NewSet(
	provider.New,
	uploadService.New,
)

var editorDomain = wire.NewSet(
	newSpool,
	editorService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	authDomain,
	recordDomain,
	uploadDomain,
	editorDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	portfolioHandler.New,
	articleHandler.New,
	uploadHandler.New,
	editorHandler.New,
	contactHandler.New,
	webHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		newLifecycle,
		http.New,
	)

	return &http.HTTP{}
}
