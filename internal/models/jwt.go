package models

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID    uint   `json:"user_id"`
	DiscordID string `json:"discord_id"`
	Moderator bool   `json:"moderator"`
	jwt.RegisteredClaims
}
