package app

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yazilimcilarinmolayeri/pixels-clone/configs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/handlers"
	socketModels "github.com/yazilimcilarinmolayeri/pixels-clone/internal/models/socket"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/repositories"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/servers/database"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/servers/http"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	canvasRepo := repositories.NewCanvasRepository(db)
	pixelRepo := repositories.NewPixelRepository(db)
	userRepo := repositories.NewUserRepository(db)

	hub := socketModels.NewPixelSocketHub()
	socketPixelHandler := handlers.NewSocketPixelHandler(app.redis, app.ctx, hub, userRepo, app.configs)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)
	archiveService := services.NewArchiveService(canvasRepo, pixelRepo, fileManagerService)

	authService := services.NewAuthService(userRepo, app.configs)
	canvasService := services.NewCanvasService(canvasRepo, pixelRepo)
	userService := services.NewUserService(userRepo)
	cooldown := time.Duration(app.configs.Viper.GetInt("rate_limit.cooldown_seconds")) * time.Second
	rateLimiter := services.NewRateLimiterService(pixelRepo, cooldown)
	pixelService := services.NewPixelService(pixelRepo, canvasRepo, userRepo, rateLimiter, socketPixelHandler)

	restHandler := handlers.NewRestHandler(
		authService,
		canvasService,
		pixelService,
		userService,
		archiveService,
		app.configs,
	)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		hub,
		restHandler,
		socketPixelHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.address"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
