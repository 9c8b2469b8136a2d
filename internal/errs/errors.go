package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody  = Error("invalid request body")
	ErrInvalidParams       = Error("invalid params")
	ErrInvalidPageOrSize   = Error("invalid page or size")
	ErrCanvasTooSmall      = Error("canvas width or height cannot be lower than 300px")
	ErrExpiryTooSoon       = Error("expire date cannot be sooner than 30 minutes later")
	ErrInvalidTimeRange    = Error("'fromTimestamp' cannot be bigger or equal to 'toTimestamp'")
	ErrInvalidHexColor     = Error("cannot parse hex color value")
	ErrPixelOutOfBounds    = Error("pixel is outside of the canvas bounds")
	ErrCanvasNotFound      = Error("canvas not found")
	ErrNoActiveCanvas      = Error("no active canvas found, try again later")
	ErrPixelNotFound       = Error("pixel not found")
	ErrUserNotFound        = Error("user not found")
	ErrUnauthorized        = Error("unauthorized")
	ErrInvalidToken        = Error("invalid token")
	ErrNotModerator        = Error("you do not have the moderator privilege for this action")
	ErrUserBanned          = Error("you are banned from the pixels api")
	ErrCannotBanSelf       = Error("you cannot ban yourself")
	ErrRateLimited         = Error("it has not been 1 minute since your last placement")
	ErrDuplicateConnection = Error("connection id is already registered")
	ErrCanvasClosed        = Error("canvas is already closed")
)
