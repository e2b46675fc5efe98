package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"bar-bike/app"
	"bar-bike/config"
	_ "bar-bike/docs"
	"bar-bike/logx"
)

// @title BarBike Storefront API
// @version 1.0
// @description Bicycle shop catalog, back-office users and WhatsApp checkout.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load config")
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.LogEnvironment()})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to start application")
	}
	defer a.Close()

	port := ":" + cfg.Port
	logx.Info().Str("port", port).Str("env", cfg.AppEnv).Msg("server starting")
	logx.Info().Msgf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := a.Router.Run(port); err != nil {
		logx.Fatal().Err(err).Msg("failed to start server")
	}
}
