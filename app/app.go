package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"bar-bike/config"
	"bar-bike/controllers"
	"bar-bike/handler"
	"bar-bike/libs"
	"bar-bike/logx"
	"bar-bike/middleware"
	"bar-bike/models"
	"bar-bike/repositories"
	"bar-bike/routes"
	"bar-bike/services"
	"bar-bike/store"
	"bar-bike/utils"
)

// App is a fully wired server: storage opened, repositories seeded and the
// router populated. Close releases the backend and any redis cache client.
type App struct {
	Config *config.Config
	Router *gin.Engine

	closers []func() error
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	backend, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a := &App{Config: cfg, closers: []func() error{backend.Close}}
	logx.Info().Str("driver", cfg.Store.Driver).Msg("store opened")

	router, err := a.build(ctx, backend)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Router = router
	return a, nil
}

func (a *App) build(ctx context.Context, backend store.Backend) (*gin.Engine, error) {
	cfg := a.Config
	tableLog := logx.Logger("store")

	productRepo, err := repositories.NewProductRepository(ctx,
		store.NewTable[models.Product](backend, cfg.Store.ProductsKey, tableLog),
		models.SeedProducts(),
	)
	if err != nil {
		return nil, fmt.Errorf("init products: %w", err)
	}

	ids := utils.NewIDGenerator()
	userRepo, err := repositories.NewUserRepository(ctx,
		store.NewTable[models.User](backend, cfg.Store.UsersKey, tableLog),
		repositories.WithUserIDs(ids.NewID),
	)
	if err != nil {
		return nil, fmt.Errorf("init users: %w", err)
	}

	cache := a.connectCache(ctx)
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	productService := services.NewProductService(productRepo, ids.NewID, cache)
	pitchService := services.NewPitchService(a.pitchGenerator(ctx), cache, cfg.PitchTimeout)
	userService := services.NewUserService(userRepo, cfg.PasswordHashing)
	authService := services.NewAuthService(userRepo, tokens)
	cartService := services.NewCartService(productRepo, cfg.CartTTL)
	checkoutService := services.NewCheckoutService(cfg.WhatsAppPhone, a.orderNotifier())
	dashboardService := services.NewDashboardService(productRepo, userRepo)

	uploader := libs.NewImageUploader(cfg)
	uploadDir := ""
	if _, local := uploader.(*libs.LocalUploader); local {
		if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create upload directory: %w", err)
		}
		uploadDir = cfg.UploadDir
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	router.GET("/", gin.WrapF(handler.Handler))

	routes.SetupRoutes(router, &routes.Handlers{
		Auth:      controllers.NewAuthController(authService),
		User:      controllers.NewUserController(userService),
		Product:   controllers.NewProductController(productService, pitchService, uploader, cfg.MaxUploadSize),
		Cart:      controllers.NewCartController(cartService, checkoutService),
		Dashboard: controllers.NewDashboardController(dashboardService),
		Tokens:    tokens,
		Users:     userService,
		UploadDir: uploadDir,
	})
	return router, nil
}

// connectCache returns nil when no redis is configured or reachable; the
// services then skip caching.
func (a *App) connectCache(ctx context.Context) *redis.Client {
	rc := a.Config.Redis
	if rc.URL == "" && rc.Addr == "" {
		return nil
	}
	client, err := store.ConnectRedis(ctx, rc.URL, rc.Addr, rc.Password)
	if err != nil {
		logx.Warn().Err(err).Msg("redis unavailable, running without cache")
		return nil
	}
	a.closers = append(a.closers, client.Close)
	logx.Info().Msg("redis cache connected")
	return client
}

func (a *App) pitchGenerator(ctx context.Context) services.TextGenerator {
	if a.Config.GeminiAPIKey == "" {
		return nil
	}
	gen, err := services.NewGeminiGenerator(ctx, a.Config.GeminiAPIKey, a.Config.GeminiModel)
	if err != nil {
		logx.Warn().Err(err).Msg("pitch generator disabled")
		return nil
	}
	return gen
}

func (a *App) orderNotifier() services.OrderNotifier {
	if !a.Config.SMTP.Enabled() {
		return nil
	}
	mailer, err := libs.NewOrderMailer(a.Config.SMTP)
	if err != nil {
		logx.Warn().Err(err).Msg("order mail disabled")
		return nil
	}
	return mailer
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
