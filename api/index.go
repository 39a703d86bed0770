package handler

import (
	"context"
	"net/http"
	"sync"

	"folio/config"
	"folio/di"
	"folio/shared/logger"
	httpTransport "folio/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service *httpTransport.HTTP
)

// Handler is the serverless entry point. The service is built once per
// instance, so editor drafts only live as long as the instance does.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.SetLogLevel(config.Get())

		service = di.InitializeService()

		if err := service.Start(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to start up")
		}
	})

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
