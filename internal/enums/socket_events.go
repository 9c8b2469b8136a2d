package enums

const (
	SOCKET_OP_PIXEL_UPDATE = "pixel_update"
)
