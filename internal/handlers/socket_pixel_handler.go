package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/yazilimcilarinmolayeri/pixels-clone/configs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/enums"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/interfaces"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
	redisModels "github.com/yazilimcilarinmolayeri/pixels-clone/internal/models/redis"
	socketModels "github.com/yazilimcilarinmolayeri/pixels-clone/internal/models/socket"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/msgs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/utils"
)

// SocketPixelHandler owns the live-viewer fabric: it upgrades authenticated
// requests into hub connections and fans committed placements out to them.
// Placements travel through Redis pub/sub so every instance delivers to its
// own local connections.
type SocketPixelHandler struct {
	ctx      context.Context
	redis    *redis.Client
	upgrader websocket.Upgrader
	hub      *socketModels.PixelSocketHub
	userRepo interfaces.UserStore
	config   *configs.Config
}

func NewSocketPixelHandler(
	redis *redis.Client,
	ctx context.Context,
	hub *socketModels.PixelSocketHub,
	userRepo interfaces.UserStore,
	config *configs.Config,
) *SocketPixelHandler {
	sph := &SocketPixelHandler{
		ctx:      ctx,
		redis:    redis,
		hub:      hub,
		userRepo: userRepo,
		config:   config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	go sph.HandleRedisMessages()
	return sph
}

// BroadcastPlacement publishes a committed placement to the Redis channel.
// It implements interfaces.PixelBroadcaster for the pixel service.
func (sph *SocketPixelHandler) BroadcastPlacement(event *models.PlacementEvent, discordUser string) error {
	published := redisModels.RedisPublishedPixel{
		EventID:     event.ID,
		CanvasID:    event.CanvasID,
		X:           event.X,
		Y:           event.Y,
		Color:       event.Color,
		DiscordUser: discordUser,
	}
	jsonMessage, err := json.Marshal(published)
	if err != nil {
		return err
	}
	return sph.PublishMessage(sph.redis, redisModels.REDIS_CHANNEL_PIXELS, jsonMessage)
}

func (sph *SocketPixelHandler) HandleSocketPixelRoute(ctx *gin.Context) {
	user, err := sph.authorize(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	sph.HandleConnections(ctx, user)
}

// authorize validates the bearer token (header or "token" query for browser
// clients) and refuses banned users before the upgrade happens.
func (sph *SocketPixelHandler) authorize(ctx *gin.Context) (*models.User, error) {
	jwtToken := ctx.GetHeader("Authorization")
	if strings.Contains(jwtToken, "Bearer") {
		jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
	}
	if jwtToken == "" {
		jwtToken = ctx.Query("token")
	}
	if jwtToken == "" {
		return nil, errs.ErrUnauthorized
	}

	claims, err := utils.VerifyToken(jwtToken, []byte(sph.config.Viper.GetString("jwt.secret")))
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	user, err := sph.userRepo.GetByDiscordID(claims.DiscordID)
	if err != nil {
		return nil, err
	}
	if user.Banned {
		return nil, errs.ErrUserBanned
	}
	return user, nil
}

func (sph *SocketPixelHandler) HandleConnections(ctx *gin.Context, user *models.User) {
	ws, err := sph.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	connection := &socketModels.Connection{
		ID:          uuid.NewString(),
		IsModerator: user.Moderator,
		Conn:        ws,
	}
	if err := sph.hub.Register(connection); err != nil {
		log.Printf("Error registering connection %v: %v", connection.ID, err)
		if closeErr := ws.Close(); closeErr != nil {
			log.Printf("Error closing connection: %v", closeErr)
		}
		return
	}
	log.Printf("Websocket connection added: %v", connection.ID)

	ws.SetCloseHandler(func(code int, text string) error {
		sph.hub.Unregister(connection.ID)
		log.Printf("Websocket connection removed: %v", connection.ID)
		return nil
	})

	sph.readLoop(ws, connection)
}

// readLoop drains inbound frames until the peer goes away. Viewers never send
// meaningful messages; the loop only exists for disconnect detection.
func (sph *SocketPixelHandler) readLoop(ws *websocket.Conn, connection *socketModels.Connection) {
	defer func() {
		sph.hub.Unregister(connection.ID)
		if err := ws.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("readLoop / Error reading message: %v", err)
			}
			return
		}
	}
}

func (sph *SocketPixelHandler) HandleRedisMessages() {
	ch := sph.SubscribeToChannel(sph.redis, redisModels.REDIS_CHANNEL_PIXELS)
	for msg := range ch {
		var published redisModels.RedisPublishedPixel
		if err := json.Unmarshal([]byte(msg.Payload), &published); err != nil {
			log.Printf("Error unmarshalling message: %v", err)
			continue
		}
		sph.SendToConnections(published)
	}
}

// SendToConnections delivers one placement to every local connection, with
// the actor's discord id attached only for moderator viewers. Sends happen on
// a snapshot of the hub so a slow peer cannot block the set, and a failed
// send keeps the connection registered; only its own read loop removes it.
func (sph *SocketPixelHandler) SendToConnections(published redisModels.RedisPublishedPixel) {
	for _, connection := range sph.hub.Snapshot() {
		message := socketModels.PixelUpdateMessage{
			Op: enums.SOCKET_OP_PIXEL_UPDATE,
			Pixel: socketModels.PixelUpdatePayload{
				X:     published.X,
				Y:     published.Y,
				Color: published.Color,
			},
		}
		if connection.IsModerator {
			message.DiscordUser = published.DiscordUser
		}
		if err := connection.Conn.WriteJSON(message); err != nil {
			log.Printf("Error writing json to %v: %v", connection.ID, err)
		}
	}
}

func (sph *SocketPixelHandler) PublishMessage(redis *redis.Client, channel string, message []byte) error {
	return redis.Publish(sph.ctx, channel, message).Err()
}

func (sph *SocketPixelHandler) SubscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(sph.ctx, channel)
	_, err := pubsub.Receive(sph.ctx)
	if err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}
