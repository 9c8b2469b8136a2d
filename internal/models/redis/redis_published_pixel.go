package models

const REDIS_CHANNEL_PIXELS = "pixels_channel"

// RedisPublishedPixel is the cross-instance form of a committed placement.
// Every instance subscribes to the channel and shapes the final websocket
// message per local connection.
type RedisPublishedPixel struct {
	EventID     uint   `json:"event_id"`
	CanvasID    uint   `json:"canvas_id"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Color       int    `json:"color"`
	DiscordUser string `json:"discord_user"`
}
