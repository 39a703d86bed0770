package main

import (
	"folio/config"
	"folio/di"
	"folio/shared/logger"
)

// @title Folio API
// @version 1.0
// @description Portfolio, articles and contact messages for a photographer's site, with a session-gated admin editor.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer session token. The folio_session cookie is accepted too.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
