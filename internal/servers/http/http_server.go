package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yazilimcilarinmolayeri/pixels-clone/configs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/handlers"
	socketModels "github.com/yazilimcilarinmolayeri/pixels-clone/internal/models/socket"
)

type HttpServer struct {
	ctx           context.Context
	config        *configs.Config
	router        *gin.Engine
	hub           *socketModels.PixelSocketHub
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketPixelHandler
}

func NewHttpServer(
	ctx context.Context,
	config *configs.Config,
	hub *socketModels.PixelSocketHub,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketPixelHandler,
) *HttpServer {
	return &HttpServer{
		ctx:           ctx,
		config:        config,
		hub:           hub,
		restHandler:   restHandler,
		socketHandler: socketHandler,
	}
}

func (hs *HttpServer) Run() {
	hs.router = gin.Default()

	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	server := hs.startServer()

	hs.waitForShutdown(server)
}

func (hs *HttpServer) setupRestfulRoutes() {
	auth := hs.router.Group("/api/auth")
	{
		auth.GET("/login", hs.restHandler.Login)
		auth.GET("/discord/callback", hs.restHandler.DiscordCallback)
	}

	canvas := hs.router.Group("/api/canvas")
	{
		canvas.GET("", hs.restHandler.GetCanvas)
		canvas.GET("/:canvasId", hs.restHandler.GetCanvas)
		canvas.GET("/:canvasId/snapshot/:untilTimestamp", hs.restHandler.GetSnapshot)
		canvas.GET("/:canvasId/heatmap", hs.restHandler.GetHeatmap)
		canvas.PUT("", hs.restHandler.MustAuthenticateMiddleware(), hs.restHandler.CreateCanvas)
		canvas.PATCH("/:canvasId", hs.restHandler.MustAuthenticateMiddleware(), hs.restHandler.UpdateCanvas)
		canvas.POST("/:canvasId/close", hs.restHandler.MustAuthenticateMiddleware(), hs.restHandler.CloseCanvas)
		canvas.POST("/:canvasId/archive", hs.restHandler.MustAuthenticateMiddleware(), hs.restHandler.ArchiveCanvas)
	}

	pixel := hs.router.Group("/api/pixel")
	{
		pixel.GET("/:x/:y", hs.restHandler.GetPixel)
		pixel.PUT("", hs.restHandler.MustAuthenticateMiddleware(), hs.restHandler.SetPixel)
	}

	user := hs.router.Group("/api/user", hs.restHandler.MustAuthenticateMiddleware())
	{
		user.GET("", hs.restHandler.GetUsers)
		user.PATCH("/:discordId/ban", hs.restHandler.BanUser)
		user.PATCH("/:discordId/unban", hs.restHandler.UnbanUser)
	}

	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/websocket", hs.socketHandler.HandleSocketPixelRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	hs.hub.CloseAll()

	log.Println("Server exiting")
}
