package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"bar-bike/app"
	"bar-bike/config"
	_ "bar-bike/docs"
	"bar-bike/logx"
	"bar-bike/models"
)

var (
	application *app.App
	initErr     error
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.LoadConfig()
		if err != nil {
			initErr = err
			return
		}
		logx.Init(logx.LoggerOpts{Environment: logx.Production})

		application, initErr = app.New(context.Background(), cfg)
	})
}

// Handler is the serverless entry point. The app is built once per instance
// and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		logx.Error().Err(initErr).Msg("application init failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Service unavailable",
			Error:   initErr.Error(),
		})
		return
	}
	application.Router.ServeHTTP(w, r)
}
