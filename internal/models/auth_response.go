package models

type AuthResponse struct {
	DiscordID   string `json:"discord_id"`
	IsModerator bool   `json:"is_moderator"`
	AccessToken string `json:"access_token"`
	ExpireTime  int64  `json:"expire_time"`
}
