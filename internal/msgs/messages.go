package msgs

const (
	MsgOperationSuccessful = "operation successful"
	MsgOperationFailed     = "operation failed"
	MsgYouMustLoginFirst   = "you must login first"
	MsgCanvasCreated       = "canvas created successfully"
	MsgCanvasUpdated       = "canvas updated successfully"
	MsgCanvasClosed        = "canvas closed successfully"
	MsgCanvasArchived      = "canvas archived successfully"
	MsgPixelPlaced         = "pixel placed successfully"
	MsgUserBanned          = "user banned"
	MsgUserAlreadyBanned   = "user already banned"
	MsgUserUnbanned        = "user unbanned"
	MsgSlowDown            = "slow down"
)
