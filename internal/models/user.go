package models

import (
	"gorm.io/gorm"
)

// User represents a Discord-authenticated participant. Accounts are created on
// first login; banned users keep their rows so their history stays queryable.
type User struct {
	gorm.Model
	DiscordID string `gorm:"unique;not null" json:"discord_id"`
	Banned    bool   `gorm:"default:false" json:"banned"`
	Moderator bool   `gorm:"default:false" json:"moderator"`
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		DiscordID:    user.DiscordID,
		Banned:       user.Banned,
		Moderator:    user.Moderator,
		DateRegister: user.CreatedAt.Unix(),
	}
}

type UserResponse struct {
	ID           uint   `json:"id"`
	DiscordID    string `json:"discord_id"`
	Banned       bool   `json:"banned"`
	Moderator    bool   `json:"moderator"`
	DateRegister int64  `json:"date_register"`
}
