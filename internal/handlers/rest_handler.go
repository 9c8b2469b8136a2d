package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yazilimcilarinmolayeri/pixels-clone/configs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/codec"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/msgs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/reconstruction"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/services"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/utils"
)

type RestHandler struct {
	authService    *services.AuthService
	canvasService  *services.CanvasService
	pixelService   *services.PixelService
	userService    *services.UserService
	archiveService *services.ArchiveService
	config         *configs.Config
}

func NewRestHandler(
	authService *services.AuthService,
	canvasService *services.CanvasService,
	pixelService *services.PixelService,
	userService *services.UserService,
	archiveService *services.ArchiveService,
	config *configs.Config,
) *RestHandler {
	return &RestHandler{
		authService:    authService,
		canvasService:  canvasService,
		pixelService:   pixelService,
		userService:    userService,
		archiveService: archiveService,
		config:         config,
	}
}

func statusForError(err error) int {
	switch err {
	case errs.ErrCanvasNotFound, errs.ErrNoActiveCanvas, errs.ErrUserNotFound:
		return http.StatusNotFound
	case errs.ErrUnauthorized, errs.ErrInvalidToken, errs.ErrUserBanned:
		return http.StatusUnauthorized
	case errs.ErrNotModerator, errs.ErrCannotBanSelf:
		return http.StatusForbidden
	case errs.ErrRateLimited:
		return http.StatusTooManyRequests
	case errs.ErrDuplicateConnection:
		return http.StatusInsufficientStorage
	case errs.ErrCanvasTooSmall, errs.ErrExpiryTooSoon, errs.ErrInvalidTimeRange,
		errs.ErrInvalidHexColor, errs.ErrPixelOutOfBounds, errs.ErrInvalidRequestBody,
		errs.ErrInvalidParams, errs.ErrInvalidPageOrSize, errs.ErrCanvasClosed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (rh *RestHandler) abortWithErrors(ctx *gin.Context, errors []error) {
	status := http.StatusInternalServerError
	if len(errors) > 0 {
		status = statusForError(errors[0])
	}
	ctx.AbortWithStatusJSON(status, models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  errors,
	})
}

// mustBeModerator resolves the caller's moderator flag from storage, not the
// token, so a demotion takes effect before the token expires.
func (rh *RestHandler) mustBeModerator(ctx *gin.Context) bool {
	discordID := ctx.GetString("discord_id")
	moderator, errors := rh.userService.IsModerator(discordID)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return false
	}
	if !moderator {
		rh.abortWithErrors(ctx, []error{errs.ErrNotModerator})
		return false
	}
	return true
}

func (rh *RestHandler) renderImage(ctx *gin.Context, buffer *reconstruction.Buffer) {
	encoded, err := codec.EncodePNG(buffer)
	if err != nil {
		rh.abortWithErrors(ctx, []error{err})
		return
	}
	ctx.Data(http.StatusOK, codec.ContentType, encoded)
}

// Login godoc
// @Summary      Start Discord login
// @Description  Redirects the browser to Discord's OAuth authorize page
// @Tags         auth
// @Router       /api/auth/login [get]
func (rh *RestHandler) Login(ctx *gin.Context) {
	ctx.Redirect(http.StatusTemporaryRedirect, rh.authService.LoginURL())
}

// DiscordCallback godoc
// @Summary      Finish Discord login
// @Description  Exchanges the OAuth code and returns the service JWT
// @Tags         auth
// @Produce      json
// @Param        code  query     string  true  "OAuth authorization code"
// @Success      200  {object}  models.Response
// @Failure      401  {object}  models.Response
// @Router       /api/auth/discord/callback [get]
func (rh *RestHandler) DiscordCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	authResponse, errors := rh.authService.Authenticate(code)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    authResponse,
	})
}

// GetCanvas serves the current (or requested) canvas. With an
// "Accept: application/json" header it returns the canvas metadata; otherwise
// it streams the rendered image.
func (rh *RestHandler) GetCanvas(ctx *gin.Context) {
	var canvas *models.Canvas
	var errors []error

	if canvasIdStr := ctx.Param("canvasId"); canvasIdStr != "" {
		canvasId, err := strconv.Atoi(canvasIdStr)
		if err != nil {
			rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
			return
		}
		canvas, errors = rh.canvasService.GetByID(uint(canvasId))
	} else {
		canvas, errors = rh.canvasService.GetCurrent()
	}
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	if ctx.GetHeader("Accept") == "application/json" {
		ctx.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: msgs.MsgOperationSuccessful,
			Data:    canvas.ToCanvasResponse(),
		})
		return
	}

	buffer, errors := rh.canvasService.RenderCurrent(canvas)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}
	rh.renderImage(ctx, buffer)
}

// GetSnapshot godoc
// @Summary      Canvas snapshot image
// @Description  Renders the canvas as it stood at the given unix timestamp
// @Tags         canvas
// @Produce      png
// @Param        canvasId        path  int  true  "Canvas id"
// @Param        untilTimestamp  path  int  true  "UTC unix timestamp"
// @Success      200  {file}    binary
// @Failure      404  {object}  models.Response
// @Router       /api/canvas/{canvasId}/snapshot/{untilTimestamp} [get]
func (rh *RestHandler) GetSnapshot(ctx *gin.Context) {
	canvasId, err := strconv.Atoi(ctx.Param("canvasId"))
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}
	untilTimestamp, err := strconv.ParseInt(ctx.Param("untilTimestamp"), 10, 64)
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	canvas, errors := rh.canvasService.GetByID(uint(canvasId))
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	buffer, errors := rh.canvasService.RenderSnapshot(canvas, utils.UnixToTime(untilTimestamp))
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}
	rh.renderImage(ctx, buffer)
}

// GetHeatmap renders where placements happened between fromTimestamp and
// toTimestamp (defaulting to now), stamped with actionColor.
func (rh *RestHandler) GetHeatmap(ctx *gin.Context) {
	canvasId, err := strconv.Atoi(ctx.Param("canvasId"))
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}
	fromTimestamp, err := strconv.ParseInt(ctx.Query("fromTimestamp"), 10, 64)
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}
	toTimestamp := time.Now().Unix()
	if toStr := ctx.Query("toTimestamp"); toStr != "" {
		toTimestamp, err = strconv.ParseInt(toStr, 10, 64)
		if err != nil {
			rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
			return
		}
	}

	actionColor := models.DefaultHeatmapColor
	if colorStr := ctx.Query("actionColor"); colorStr != "" {
		actionColor, err = utils.HexToColor(colorStr)
		if err != nil {
			rh.abortWithErrors(ctx, []error{err})
			return
		}
	}

	canvas, errors := rh.canvasService.GetByID(uint(canvasId))
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	buffer, errors := rh.canvasService.RenderHeatmap(
		canvas,
		utils.UnixToTime(fromTimestamp),
		utils.UnixToTime(toTimestamp),
		actionColor,
	)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}
	rh.renderImage(ctx, buffer)
}

// CreateCanvas godoc
// @Summary      Create a canvas
// @Description  Moderator only; width and height must be at least 300px
// @Tags         canvas
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Router       /api/canvas [put]
func (rh *RestHandler) CreateCanvas(ctx *gin.Context) {
	if !rh.mustBeModerator(ctx) {
		return
	}

	var body models.CreateCanvasRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		log.Println("Error canvas data json binding:", err)
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	canvas, errors := rh.canvasService.Create(&body)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgCanvasCreated,
		Data:    canvas.ToCanvasResponse(),
	})
}

func (rh *RestHandler) UpdateCanvas(ctx *gin.Context) {
	if !rh.mustBeModerator(ctx) {
		return
	}

	canvasId, err := strconv.Atoi(ctx.Param("canvasId"))
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	var body models.UpdateCanvasRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		log.Println("Error canvas data json binding:", err)
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	canvas, errors := rh.canvasService.Update(uint(canvasId), &body)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgCanvasUpdated,
		Data:    canvas.ToCanvasResponse(),
	})
}

func (rh *RestHandler) CloseCanvas(ctx *gin.Context) {
	if !rh.mustBeModerator(ctx) {
		return
	}

	canvasId, err := strconv.Atoi(ctx.Param("canvasId"))
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	canvas, errors := rh.canvasService.Close(uint(canvasId))
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgCanvasClosed,
		Data:    canvas.ToCanvasResponse(),
	})
}

func (rh *RestHandler) ArchiveCanvas(ctx *gin.Context) {
	if !rh.mustBeModerator(ctx) {
		return
	}

	canvasId, err := strconv.Atoi(ctx.Param("canvasId"))
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	url, errors := rh.archiveService.ArchiveCanvas(uint(canvasId))
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgCanvasArchived,
		Data:    gin.H{"url": url},
	})
}

// GetPixel returns the current color of one cell, white if never written.
func (rh *RestHandler) GetPixel(ctx *gin.Context) {
	x, errX := strconv.Atoi(ctx.Param("x"))
	y, errY := strconv.Atoi(ctx.Param("y"))
	if errX != nil || errY != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	pixel, errors := rh.pixelService.GetPixel(x, y)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    pixel,
	})
}

// SetPixel godoc
// @Summary      Place a pixel
// @Description  Places one pixel on the current canvas, subject to the
// @Description  per-user cooldown (moderators bypass it)
// @Tags         pixel
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      401  {object}  models.Response
// @Failure      429  {object}  models.Response
// @Router       /api/pixel [put]
func (rh *RestHandler) SetPixel(ctx *gin.Context) {
	var body models.SetPixelRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		log.Println("Error pixel data json binding:", err)
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	userID := ctx.GetUint("user_id")
	event, retryAfter, errors := rh.pixelService.PlacePixel(userID, &body)
	if len(errors) > 0 {
		if errors[0] == errs.ErrRateLimited {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, models.Response{
				Success: false,
				Message: msgs.MsgSlowDown,
				Errors:  errors,
				Data:    gin.H{"retry_after": int64(retryAfter.Seconds())},
			})
			return
		}
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgPixelPlaced,
		Data: models.PixelResponse{
			X:     event.X,
			Y:     event.Y,
			Color: utils.ColorToHex(event.Color),
		},
	})
}

func (rh *RestHandler) BanUser(ctx *gin.Context) {
	sourceDiscordID := ctx.GetString("discord_id")
	targetDiscordID := ctx.Param("discordId")

	alreadyBanned, errors := rh.userService.BanUser(sourceDiscordID, targetDiscordID)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	message := msgs.MsgUserBanned
	if alreadyBanned {
		message = msgs.MsgUserAlreadyBanned
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
	})
}

func (rh *RestHandler) UnbanUser(ctx *gin.Context) {
	sourceDiscordID := ctx.GetString("discord_id")
	targetDiscordID := ctx.Param("discordId")

	if errors := rh.userService.UnbanUser(sourceDiscordID, targetDiscordID); len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserUnbanned,
	})
}

func (rh *RestHandler) GetUsers(ctx *gin.Context) {
	if !rh.mustBeModerator(ctx) {
		return
	}

	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidPageOrSize})
		return
	}
	size, err := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidPageOrSize})
		return
	}

	users, errors := rh.userService.GetAllUsersWithPagination(page, size)
	if len(errors) > 0 {
		rh.abortWithErrors(ctx, errors)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    users,
	})
}
