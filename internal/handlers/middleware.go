package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/msgs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/utils"
)

func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		if strings.Contains(jwtToken, "Bearer") {
			jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
		}

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		claims, err := utils.VerifyToken(jwtToken, []byte(rh.config.Viper.GetString("jwt.secret")))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrInvalidToken},
			})
			return
		}

		ctx.Set("user_id", claims.UserID)
		ctx.Set("discord_id", claims.DiscordID)
		ctx.Set("moderator", claims.Moderator)
		ctx.Set("authenticated", true)
		ctx.Next()
	}
}
