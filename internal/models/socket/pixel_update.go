package socket

// PixelUpdatePayload is the pixel portion of a fan-out message.
type PixelUpdatePayload struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Color int `json:"color"`
}

// PixelUpdateMessage is what every viewer receives after a committed
// placement. DiscordUser is only filled for moderator connections; it is a
// string because discord snowflakes overflow the JSON safe integer range.
type PixelUpdateMessage struct {
	Op          string             `json:"op"`
	Pixel       PixelUpdatePayload `json:"pixel"`
	DiscordUser string             `json:"discordUser,omitempty"`
}
