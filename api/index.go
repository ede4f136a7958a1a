package handler

import (
	"net/http"
	"sync"

	"chefbook/config"
	"chefbook/di"
	"chefbook/shared/logger"
)

var (
	app  *di.App
	once sync.Once
)

// Handler is the serverless entry point. The wizard registry lives per instance, so sessions only
// survive while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Init(cfg)

		app = di.InitializeService()
	})

	app.HTTP.ServeHTTP(w, r)
}
