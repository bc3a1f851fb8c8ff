package handler

import (
	"net/http"
	"salon/config"
	"salon/di"
	"salon/shared/failure"
	"salon/shared/logger"
	"salon/transport/http/response"
	"sync"
)

var (
	once    sync.Once
	mux     http.Handler
	initErr error
)

// Handler is the serverless entrypoint serving the same routes as cmd/app.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		if initErr = cfg.Validate(); initErr != nil {
			return
		}

		mux = di.InitializeService().Handler()
	})

	if initErr != nil {
		response.WithEnvelope(w, failure.InternalError(initErr))

		return
	}

	mux.ServeHTTP(w, r)
}
