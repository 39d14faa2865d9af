// Package handler is the serverless entry point used when the backend is
// deployed as a single function alongside the frontend.
package handler

import (
	"net/http"

	"wakens/config"
	"wakens/di"
	"wakens/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()
	app.HTTP.Handler().ServeHTTP(w, r)
}
